package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the settings file at path each time it is written or
// replaced and passes the result to fn. A file that fails to load is
// reported through fn's error and the previous settings stay in effect
// for the caller.
//
// The directory is watched rather than the file so editors that save by
// renaming a temporary file are seen. Watch blocks until ctx is done and
// then returns ctx.Err(). fn runs on the watching goroutine.
func Watch(ctx context.Context, path string, fn func(Settings, error)) error {
	if _, err := FormatOf(path); err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return ctx.Err()
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			fn(Load(abs))
		case err, ok := <-w.Errors:
			if !ok {
				return ctx.Err()
			}
			fn(Settings{}, fmt.Errorf("config: watch %s: %w", path, err))
		}
	}
}
