// Package watch reports changes to the data directory so a long-running view
// can reload members saved by another process.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDelay batches the burst of events one save produces (temp file,
// rename, checksum sidecar) into a single callback.
const DefaultDelay = 200 * time.Millisecond

// ignoredSuffixes are files touched by reads as well as writes. Reacting to
// them would make every reload trigger the next one.
var ignoredSuffixes = []string{".lock", "-shm", ".tmp"}

// Config describes what to watch.
type Config struct {
	// Dir is the data directory. Only its direct entries are watched.
	Dir string
	// Delay is the quiet period before OnChange fires. Defaults to DefaultDelay.
	Delay time.Duration
	// OnChange runs on the goroutine that called Run.
	OnChange func()
}

// Run blocks until ctx is done, calling cfg.OnChange once per burst of
// relevant changes in cfg.Dir.
func Run(ctx context.Context, cfg Config) error {
	if cfg.OnChange == nil {
		return fmt.Errorf("watch: OnChange is required")
	}
	delay := cfg.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(cfg.Dir); err != nil {
		return fmt.Errorf("watch %s: %w", cfg.Dir, err)
	}
	slog.Debug("watching data directory", "dir", cfg.Dir)

	timer := time.NewTimer(delay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !Relevant(event) {
				continue
			}
			slog.Debug("data changed", "file", filepath.Base(event.Name), "op", event.Op.String())
			timer.Reset(delay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)

		case <-timer.C:
			cfg.OnChange()
		}
	}
}

// Relevant reports whether event can change the saved members.
func Relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	name := filepath.Base(event.Name)
	for _, suffix := range ignoredSuffixes {
		if strings.HasSuffix(name, suffix) {
			return false
		}
	}
	return true
}
