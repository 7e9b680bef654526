package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const (
	watchDebounce = 100 * time.Millisecond
	clearScreen   = "\x1b[H\x1b[2J"
)

// watchFile renders path once, then again after every write settles, until ctx
// is cancelled. The parent directory is watched so editors that replace the
// file on save are still followed.
func watchFile(ctx context.Context, path string, logger zerolog.Logger, render func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	rerender := func() {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprint(os.Stdout, clearScreen)
		}
		if err := render(); err != nil {
			logger.Error().Err(err).Str("path", path).Msg("render failed")
		}
	}
	rerender()

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isWatchedChange(event, path) {
				continue
			}
			logger.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("change detected")
			settle = time.After(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watcher error")
		case <-settle:
			settle = nil
			rerender()
		}
	}
}

func isWatchedChange(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
