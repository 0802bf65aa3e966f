package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// debounce drops repeated events for the same file inside this window.
const debounce = 100 * time.Millisecond

// Watcher reports changes to a single config file.
// The parent directory is watched so that editors that replace the file on
// save are still seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Close stops the watcher. Events and Errors are closed once the watch loop
// has exited.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < debounce {
				continue
			}
			last = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// Configs loads the watched file after every change and delivers the result.
// adjust, if set, is applied to each loaded config (difficulty presets).
// Files that fail to load are logged and skipped. The channel closes with
// the watcher.
func (w *Watcher) Configs(adjust func(*PyramidConfig), logger *log.Logger) <-chan PyramidConfig {
	if logger == nil {
		logger = log.Default()
	}
	out := make(chan PyramidConfig, 1)

	go func() {
		defer close(out)
		for {
			select {
			case path, ok := <-w.Events:
				if !ok {
					return
				}
				cfg, err := LoadPyramid(path)
				if err != nil {
					logger.Warn("config reload failed", "path", path, "error", err)
					continue
				}
				if adjust != nil {
					adjust(&cfg)
				}
				logger.Info("config changed", "path", path)
				select {
				case out <- cfg:
				case <-w.closeCh:
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("config watch error", "error", err)
			}
		}
	}()
	return out
}
