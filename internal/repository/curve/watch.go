package curve

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/oshokin/shocker-link/internal/domain/editor"
	"github.com/oshokin/shocker-link/internal/logger"
)

// DefaultDebounce is how long the file must stay quiet before it is reloaded.
const DefaultDebounce = 250 * time.Millisecond

// ChangeFunc receives the state decoded from an external edit.
type ChangeFunc func(ctx context.Context, state editor.State)

// Watch reports external edits of the state file until ctx is done.
// The parent directory is watched so editors that replace the file are seen.
// Writes made by Save and files that fail to decode are skipped.
func (r *FileRepository) Watch(ctx context.Context, debounce time.Duration, onChange ChangeFunc) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}

	defer func() {
		_ = watcher.Close()
	}()

	absPath, err := filepath.Abs(r.path)
	if err != nil {
		return fmt.Errorf("resolve curve state path: %w", err)
	}

	if err = watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	ctx = logger.WithKV(logger.WithName(ctx, "curve-watcher"), "path", absPath)
	logger.DebugKV(ctx, "Watching curve state file")

	// The timer is armed by the first relevant event.
	timer := time.NewTimer(debounce)
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

			if filepath.Clean(event.Name) != absPath || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.WarnKV(ctx, "File watcher error", "error", err)
		case <-timer.C:
			r.reload(ctx, onChange)
		}
	}
}

func (r *FileRepository) reload(ctx context.Context, onChange ChangeFunc) {
	r.mu.Lock()
	state, contents, err := r.read()
	own := err == nil && r.isOwnWrite(contents)
	r.mu.Unlock()

	switch {
	case errors.Is(err, ErrNotFound):
		return
	case err != nil:
		logger.WarnKV(ctx, "Ignoring unreadable curve state file", "error", err)

		return
	case own:
		return
	}

	logger.InfoKV(ctx, "Curve state file changed externally")
	onChange(ctx, state)
}
