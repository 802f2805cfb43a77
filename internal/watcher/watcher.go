// Package watcher reports changes to a single deck file.
//
// The parent directory is watched rather than the file itself so that
// editors which save by renaming a temp file over the original are still
// seen, and so a deck that does not exist yet is picked up once created.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// relevant lists the operations that can change a file's contents.
const relevant = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Watcher calls OnChange, debounced, whenever the watched file changes.
type Watcher struct {
	path     string
	onChange func()
	debounce *Debouncer
	log      *log.Logger
}

// New returns a Watcher for path. A nil logger discards log output.
func New(path string, onChange func(), debounce *Debouncer, logger *log.Logger) (*Watcher, error) {
	if onChange == nil {
		return nil, errors.New("watcher: onChange is nil")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}
	if debounce == nil {
		debounce = NewDebouncer(0)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Watcher{path: abs, onChange: onChange, debounce: debounce, log: logger}, nil
}

// Run watches until ctx is cancelled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	defer w.debounce.Cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.matches(ev) {
				continue
			}
			w.log.Debug("deck changed", "path", ev.Name, "op", ev.Op.String())
			w.debounce.Trigger(w.onChange)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "err", err)
		}
	}
}

func (w *Watcher) matches(ev fsnotify.Event) bool {
	if ev.Op&relevant == 0 {
		return false
	}
	return filepath.Clean(ev.Name) == w.path
}
