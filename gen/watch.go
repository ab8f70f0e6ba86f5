package gen

import (
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/loomgen/loom/errors"
	"github.com/loomgen/loom/logger"
)

// Watcher watches unit description files and triggers regeneration on
// change. Rapid successive writes (editor save storms) are debounced into
// one callback.
type Watcher struct {
	watcher  *fsnotify.Watcher
	callback func(path string)

	mu       sync.Mutex
	debounce time.Duration
	timers   map[string]*time.Timer

	done chan struct{}
}

// NewWatcher creates a watcher over the given unit files. The callback
// receives the changed path after the debounce period elapses.
func NewWatcher(paths []string, debounce time.Duration, callback func(path string)) (*Watcher, error) {
	if callback == nil {
		return nil, errors.New("watcher needs a callback")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	for _, p := range paths {
		if err := fsw.Add(p); err != nil {
			_ = fsw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", p)
		}
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &Watcher{
		watcher:  fsw,
		callback: callback,
		debounce: debounce,
		timers:   make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go w.loop()
}

// Close stops watching. Pending debounce timers are dropped.
func (w *Watcher) Close() error {
	close(w.done)
	w.mu.Lock()
	for _, t := range w.timers {
		t.Stop()
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	log := logger.Named("watcher")
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Editor backup files are noise.
			if strings.HasSuffix(event.Name, "~") || strings.HasSuffix(event.Name, ".swp") {
				continue
			}
			w.schedule(event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warnw("watch error", logger.FieldError, err)
		}
	}
}

// schedule arms (or re-arms) the debounce timer for one path.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.done:
			return
		default:
		}
		w.callback(path)
	})
}
