package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"qgcalc/internal/logger"
)

// Watch sends on the returned channel whenever the file backing key is
// written, renamed into place or removed. The channel is closed when ctx is
// done. Bursts are coalesced: at most one notification is pending.
//
// The parent directory is watched rather than the file itself because
// writeFile replaces the file by rename.
func (s *FileStore) Watch(ctx context.Context, key string) (<-chan struct{}, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(s.dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", s.dir, err)
	}

	target := filepath.Clean(s.Path(key))
	out := make(chan struct{}, 1)
	log := logger.Global().WithPrefix("store")

	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
					continue
				}
				select {
				case out <- struct{}{}:
				default:
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Error("watcher error: %v", err)
			}
		}
	}()
	return out, nil
}
