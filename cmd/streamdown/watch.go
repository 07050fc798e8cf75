package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/rgonek/streamdown/renderer"
)

// watchAndRender renders the file once, then re-renders on every write.
// The parent directory is watched rather than the file itself so that
// editors replacing the file atomically keep triggering events.
func watchAndRender(r *renderer.Renderer, file string) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve file path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	if err := renderFile(r, absPath); err != nil {
		return err
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("File changed", "file", event.Name, "op", event.Op.String())
			if err := renderFile(r, absPath); err != nil {
				slog.Error("Render failed", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Watcher error", "error", err)
		}
	}
}

func renderFile(r *renderer.Renderer, path string) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}
	return renderOnce(r, string(data), os.Stdout)
}
