package cms

import (
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// WatchContentDir invalidates the query cache whenever a local fallback page
// changes, so edits show up without waiting for the TTL. Returns a stop
// function; a missing content directory is not an error, watching is simply
// skipped.
func (c *Client) WatchContentDir() (stop func(), err error) {
	dir := c.pagesDir()
	if dir == "" {
		return func() {}, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		// Directory may legitimately not exist yet.
		slog.Warn("content_watch_skipped", "dir", dir, "error", err.Error())
		return func() {}, nil
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					slog.Info("content_changed", "file", event.Name)
					c.InvalidateAll()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("content_watch_error", "error", err.Error())
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
