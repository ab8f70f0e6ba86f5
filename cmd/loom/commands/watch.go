package commands

import (
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/loomgen/loom/gen"
	"github.com/loomgen/loom/logger"
)

// WatchCmd represents the watch command
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate on unit file changes",
	Long: `Watch the unit file directories and regenerate whenever a unit changes.

Runs one full generation pass up front, then keeps regenerating as unit
files are written. Rapid successive saves are debounced into a single
pass. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	WatchCmd.Flags().StringVarP(&generateConfigPath, "config", "c", "", "Config file (default: loom.toml in the working directory)")
	WatchCmd.Flags().StringVarP(&generateOutputDir, "output", "o", "", "Output root (default: from config)")
	WatchCmd.Flags().StringSliceVarP(&generateOnly, "generator", "g", nil, "Generators to run (default: from config, else all)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.Named("watch")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initial pass so the outputs exist before the first change.
	report, err := generateOnce(ctx, cfg)
	if err != nil {
		return err
	}
	printReport(report)

	watcher, err := gen.NewWatcher(watchRoots(cfg.Units),
		time.Duration(cfg.Watch.DebounceMS)*time.Millisecond,
		func(path string) {
			log.Infow("unit changed", logger.FieldUnit, path)
			report, err := generateOnce(ctx, cfg)
			if err != nil {
				pterm.Error.Printf("Regeneration failed: %v\n", err)
				return
			}
			printReport(report)
		})
	if err != nil {
		return err
	}
	defer watcher.Close()
	watcher.Start()

	pterm.Info.Println("Watching for unit changes (Ctrl-C to stop)")
	<-ctx.Done()
	pterm.Println()
	pterm.Info.Println("Stopped watching")
	return nil
}

// watchRoots maps the configured unit globs to the directories to watch.
// fsnotify watches directories, not glob patterns.
func watchRoots(patterns []string) []string {
	seen := make(map[string]struct{}, len(patterns))
	var roots []string
	for _, pattern := range patterns {
		dir := filepath.Dir(pattern)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		roots = append(roots, dir)
	}
	sort.Strings(roots)
	return roots
}
