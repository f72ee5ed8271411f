package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config whenever the file changes and delivers the result
// on the returned channel. The watcher observes the directory rather than
// the file because editors typically replace the file on save. The caller
// drains the channel from the frame loop and calls stop on shutdown.
func Watch(path string) (<-chan Config, func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, nil, err
	}

	name := filepath.Base(path)
	out := make(chan Config, 1)
	go func() {
		defer close(out)
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != name {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load(path)
				if err != nil {
					continue
				}
				// Keep only the newest config if the loop is behind.
				select {
				case out <- cfg:
				default:
					select {
					case <-out:
					default:
					}
					out <- cfg
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return out, func() { w.Close() }, nil
}
