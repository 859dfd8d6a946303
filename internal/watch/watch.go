// Package watch re-runs site generation when HTML sources change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a site tree and invokes a callback after bursts of HTML
// changes settle.
type Watcher struct {
	root     string
	skipDirs map[string]struct{}
	watcher  *fsnotify.Watcher
	// Debounce interval for coalescing rapid editor save bursts.
	debounce time.Duration
}

// New creates a watcher over root, excluding hidden and skipped directories.
func New(root string, skipDirs map[string]struct{}) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		root:     absRoot,
		skipDirs: skipDirs,
		watcher:  fsw,
		debounce: 500 * time.Millisecond,
	}
	if err := w.addTree(absRoot); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// Close releases the underlying file system watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// addTree registers every watchable directory under dir.
func (w *Watcher) addTree(dir string) error {
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable subtrees are skipped, same as the scanner.
		slog.Debug("Skipping unwatchable directory", "path", dir, "error", err)
		return nil
	}
	for _, entry := range entries {
		if !entry.IsDir() || w.skippable(entry.Name()) {
			continue
		}
		if err := w.addTree(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (w *Watcher) skippable(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	_, skip := w.skipDirs[name]
	return skip
}

// relevant reports whether an event should schedule a regeneration. Only
// HTML sources count; generated artifacts (sitemap.xml, robots.txt,
// rss.xml) must not re-trigger the loop.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return strings.EqualFold(filepath.Ext(ev.Name), ".html")
}

// Run blocks, invoking onChange after each debounced burst of HTML changes,
// until the context is cancelled. Newly created directories are added to the
// watch set. Callback errors are logged, not fatal: the loop keeps serving
// subsequent changes.
func (w *Watcher) Run(ctx context.Context, onChange func() error) error {
	slog.Info("Watching for changes", "root", w.root, "debounce", w.debounce)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if !w.skippable(filepath.Base(ev.Name)) {
						if err := w.addTree(ev.Name); err != nil {
							slog.Warn("Failed to watch new directory", "path", ev.Name, "error", err)
						}
					}
					continue
				}
			}
			if !w.relevant(ev) {
				continue
			}
			slog.Debug("Change detected", "path", ev.Name, "op", ev.Op.String())
			if pending {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
			}
			timer.Reset(w.debounce)
			pending = true

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("File watcher error", "error", err)

		case <-timer.C:
			pending = false
			if err := onChange(); err != nil {
				slog.Error("Regeneration failed", "error", err)
			}
		}
	}
}
