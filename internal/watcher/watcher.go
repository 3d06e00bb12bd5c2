package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	logger "github.com/sirupsen/logrus"
)

// relevantOps are the event kinds that indicate repository content changed.
// Chmod-only events are ignored.
const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Watcher monitors a repository tree for changes and coalesces bursts of
// file events into single triggers. Triggers holds at most one pending
// trigger; if one is already queued while a pipeline run is in flight,
// further triggers are dropped so that runs never overlap.
type Watcher struct {
	repoPath string
	debounce time.Duration
	fsw      *fsnotify.Watcher

	// Triggers receives one value per coalesced batch of events.
	Triggers chan struct{}
}

// New creates a Watcher over repoPath and all its subdirectories,
// skipping the .git directory.
func New(repoPath string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		repoPath: repoPath,
		debounce: debounce,
		fsw:      fsw,
		Triggers: make(chan struct{}, 1),
	}

	if err := w.addRecursive(repoPath); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return w, nil
}

// Run consumes filesystem events until ctx is cancelled. It owns the
// debounce timer: each qualifying event resets it, and only when the timer
// fires is a trigger offered on Triggers. Run blocks and is meant to be
// started in its own goroutine.
func (w *Watcher) Run(ctx context.Context) {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case ev := <-w.fsw.Events:
			if ev.Op&relevantOps == 0 || ignored(ev.Name) {
				continue
			}
			// Watch directories created after startup
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.addRecursive(ev.Name); err != nil {
						logger.Warnf("Failed to watch new directory %s: %v", ev.Name, err)
					}
				}
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
		case <-timerC:
			timer = nil
			timerC = nil
			select {
			case w.Triggers <- struct{}{}:
			default:
				// A trigger is already queued; this batch rides along with it
			}
		case err := <-w.fsw.Errors:
			if err != nil {
				logger.Warnf("Watch error: %v", err)
			}
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			_ = w.fsw.Close()
			return
		}
	}
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// The entry may have vanished between listing and visiting
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

// ignored reports whether a path lives inside the .git directory.
func ignored(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".git" {
			return true
		}
	}
	return false
}
