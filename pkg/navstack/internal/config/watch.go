package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDelay = 100 * time.Millisecond

// Watch reloads path whenever it changes and delivers each valid config on the
// returned channel until ctx is done. The channel holds only the newest
// config; a reader that falls behind skips straight to it. Files that fail to
// parse are logged and skipped, so the last good config stays in effect.
//
// The parent directory is watched rather than the file because editors
// commonly replace files with a rename.
func Watch(ctx context.Context, path string, logger *slog.Logger) (<-chan Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config watch: resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watch: create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("config watch: watch %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan Config, 1)

	go func() {
		defer close(out)
		defer watcher.Close()

		// stopped timer, armed on the first relevant event
		timer := time.NewTimer(time.Hour)
		timer.Stop()
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "path", abs, "error", err)

			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != abs {
					continue
				}
				if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) && !evt.Has(fsnotify.Rename) {
					continue
				}
				// coalesce the burst of events a single save produces
				timer.Reset(reloadDelay)

			case <-timer.C:
				cfg, err := Load(abs)
				if err != nil {
					logger.Warn("config reload rejected", "path", abs, "error", err)
					continue
				}
				logger.Debug("config reloaded", "path", abs)
				publish(out, cfg)
			}
		}
	}()

	return out, nil
}

// publish replaces whatever is buffered in out with cfg. Only the watcher
// goroutine sends, so the second send cannot block.
func publish(out chan Config, cfg Config) {
	select {
	case out <- cfg:
	default:
		select {
		case <-out:
		default:
		}
		out <- cfg
	}
}
