package gen

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/loomgen/loom/errors"
)

// OutputWriter persists one rendered output file. Writing is the build
// orchestration layer's concern; the core never touches the disk itself.
type OutputWriter interface {
	Write(path string, data []byte) error
}

// DiskWriter writes outputs under a root directory, creating intermediate
// directories as needed.
type DiskWriter struct {
	Root string
}

func (w *DiskWriter) Write(path string, data []byte) error {
	full := filepath.Join(w.Root, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory for %s", path)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", full)
	}
	return nil
}

// MemWriter collects outputs in memory. Used in tests and dry runs.
type MemWriter struct {
	mu    sync.Mutex
	files map[string][]byte
}

func (w *MemWriter) Write(path string, data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.files == nil {
		w.files = make(map[string][]byte)
	}
	w.files[path] = data
	return nil
}

// File returns the bytes written for a path.
func (w *MemWriter) File(path string) ([]byte, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	data, ok := w.files[path]
	return data, ok
}

// Paths returns the sorted list of written paths.
func (w *MemWriter) Paths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	paths := make([]string, 0, len(w.files))
	for p := range w.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
