package jsonmap

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/huyiGithub/tiled"
)

// Reload is one hot-reload result: the path that changed and either the
// freshly converted map or the conversion error.
type Reload struct {
	Path string
	Map  *tiled.Map
	Err  error
}

// Watcher re-converts map documents whenever their files change.
type Watcher struct {
	watcher *fsnotify.Watcher
	opts    []Option

	Reloads chan Reload

	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching the given files or directories for map-file
// changes. Conversion options apply to every reload.
func Watch(paths []string, opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, p := range paths {
		if err := fw.Add(p); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		opts:    opts,
		Reloads: make(chan Reload, 16),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher and closes its channels.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		close(w.Reloads)
	})
	return err
}

func (w *Watcher) run() {
	// Editors fire bursts of events per save; drop repeats within the
	// debounce window.
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isMapFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now

			m, err := ReadFile(event.Name, w.opts...)
			select {
			case w.Reloads <- Reload{Path: event.Name, Map: m, Err: err}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Reloads <- Reload{Err: err}:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

func isMapFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".json" || ext == ".tmj"
}
