package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/lhtran/go-attendance-monitor/internal/analyzer"
	"github.com/lhtran/go-attendance-monitor/internal/util"
)

// debounceDelay coalesces the bursts of events editors emit on save.
const debounceDelay = 200 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-analyze the attendance log whenever it changes",
	Long: `watch runs the full analysis pipeline once, then re-runs it from scratch
every time the log file is written, keeping the report and today's projected
leave time current.

Examples:
  go-attendance-monitor watch attendance.log
  go-attendance-monitor watch attendance.log -o summary`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if args[0] == "-" {
		return fmt.Errorf("watch requires a file path, stdin cannot be watched")
	}

	cfg, err := setup(args)
	if err != nil {
		return err
	}

	info, err := os.Stat(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", cfg.InputPath, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("cannot watch %s: not a regular file", cfg.InputPath)
	}

	a, err := analyzer.New(cfg)
	if err != nil {
		return err
	}

	if err := a.Run(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save and
	// a watch on the old inode would go stale.
	dir := filepath.Dir(cfg.InputPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	util.LogInfof("Watching %s for changes", cfg.InputPath)

	var debounce *time.Timer
	rerun := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != cfg.InputPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case rerun <- struct{}{}:
				default:
				}
			})

		case <-rerun:
			fmt.Printf("\n--- %s ---\n", time.Now().Format("15:04:05"))
			if err := a.Run(); err != nil {
				util.LogErrorf("Re-analysis failed: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			util.LogWarnf("Watcher error: %v", err)
		}
	}
}
