package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 250 * time.Millisecond

// Store holds the page currently being served. Readers always see a
// complete, validated Page.
type Store struct {
	path    string
	current atomic.Pointer[Page]
}

func NewStore(path string) (*Store, error) {
	page, err := Load(path)
	if err != nil {
		return nil, err
	}
	s := &Store{path: path}
	s.current.Store(page)
	return s, nil
}

// StaticStore serves a fixed page and never reloads.
func StaticStore(page *Page) *Store {
	s := &Store{}
	s.current.Store(page)
	return s
}

func (s *Store) Page() *Page {
	return s.current.Load()
}

// Reload re-reads the content file. On failure the previous page stays in
// place and the error is returned.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	page, err := Load(s.path)
	if err != nil {
		return err
	}
	s.current.Store(page)
	return nil
}

// Watch reloads the content file whenever it changes until ctx is done.
// The parent directory is watched rather than the file so that editors
// which replace the file on save keep triggering reloads.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create content watcher: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(s.path)
	go func() {
		defer func() { _ = watcher.Close() }()

		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadDebounce, func() {
					if err := s.Reload(); err != nil {
						slog.Error("content reload failed, keeping previous page", "path", s.path, "error", err)
						return
					}
					slog.Info("content reloaded", "path", s.path)
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("content watcher error", "error", err)
			}
		}
	}()
	return nil
}
