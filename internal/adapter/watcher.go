package adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	m "github.com/dystudio/try/internal/model"
)

// DefaultDebounce coalesces bursts of filesystem events.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reports changes to files in the directories of the watched paths.
type Watcher interface {
	// Watch blocks until ctx is done, calling onChange with the set of
	// paths changed during each quiet period.
	Watch(ctx context.Context, paths []m.Path, onChange func(changed []m.Path)) error
}

// FSNotifyWatcher implements Watcher using fsnotify.
type FSNotifyWatcher struct {
	debounce time.Duration
}

// NewWatcher constructs a FSNotifyWatcher. A non-positive debounce selects
// DefaultDebounce.
func NewWatcher(debounce time.Duration) *FSNotifyWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &FSNotifyWatcher{debounce: debounce}
}

// Watch implements Watcher.
func (w *FSNotifyWatcher) Watch(ctx context.Context, paths []m.Path, onChange func(changed []m.Path)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	defer func() {
		_ = fsw.Close()
	}()

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(string(p))
		if err != nil {
			return err
		}

		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for _, dir := range sortedKeys(dirs) {
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			pending[event.Name] = struct{}{}

			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}

			return fmt.Errorf("watch: %w", err)

		case <-timer.C:
			changed := make([]m.Path, 0, len(pending))
			for name := range pending {
				changed = append(changed, m.Path(name))
			}

			sort.Slice(changed, func(i, j int) bool { return changed[i] < changed[j] })
			clear(pending)

			onChange(changed)
		}
	}
}
