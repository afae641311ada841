package commands

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/edgewise-labs/rulewizard/internal/config"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// debounceDelay coalesces bursts of write events from editors that save in
// multiple steps.
const debounceDelay = 100 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dir|file]",
		Short: "Recompile wizard rule definitions on change",
		Long: `Watch a directory (or single file) of wizard state JSON files and print
fresh SQL whenever one changes. Without an argument the configured rules
directory is watched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())

			target := cfg.RulesDir
			if len(args) > 0 {
				target = args[0]
			}
			if _, err := os.Stat(target); err != nil {
				return fmt.Errorf("cannot watch %s: %w", target, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return watch(ctx, cmd, target)
		},
	}
}

func watch(ctx context.Context, cmd *cobra.Command, target string) error {
	logger := config.GetLogger(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	if info.IsDir() {
		if err := watchDirRecursive(watcher, target); err != nil {
			return err
		}
	} else {
		if err := watcher.Add(target); err != nil {
			return err
		}
	}

	logger.Info("watching for changes", "path", target)

	// Per-file debounce timers
	timers := make(map[string]*time.Timer)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Ext(event.Name) != ".json" {
				continue
			}

			name := event.Name
			if timer, ok := timers[name]; ok {
				timer.Stop()
			}
			timers[name] = time.AfterFunc(debounceDelay, func() {
				recompile(cmd, logger, name)
			})

		case err := <-watcher.Errors:
			logger.Error("watcher error", "error", err)
		}
	}
}

func recompile(cmd *cobra.Command, logger *slog.Logger, path string) {
	result, err := compileFile(path)
	if err != nil {
		logger.Error("compile failed", "file", path, "error", err)
		return
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "-- %s\n", path)
	fmt.Fprintln(out, result.SQL)
	for _, warning := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", path, warning)
	}
	fmt.Fprintln(out, strings.Repeat("-", 40))
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
