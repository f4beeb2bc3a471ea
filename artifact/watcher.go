package artifact

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"cardioscreen/logger"
)

// Watcher observes the artifact directory and logs a warning when an artifact
// file changes on disk. Loaded artifacts are never swapped within a process
// lifetime; the warning tells the operator a restart is needed to pick the
// change up.
type Watcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

func NewWatcher(dir string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, err
	}
	// The models subdirectory may not exist when every model failed to load.
	if err := fsWatcher.Add(filepath.Join(dir, "models")); err != nil {
		logger.S().Debugw("model directory not watched", "error", err)
	}

	w := &Watcher{watcher: fsWatcher, done: make(chan struct{})}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				logger.S().Warnw("artifact changed on disk, restart required to reload",
					"path", event.Name, "op", event.Op.String())
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.S().Warnw("artifact watcher error", "error", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
