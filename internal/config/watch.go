package config

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pamburus/slogx"
)

// ReloadFunc observes each reload attempt. cfg is nil when err is not.
type ReloadFunc func(cfg *Config, err error)

// Watcher reloads a configuration file when it changes on disk and applies
// the result to a Runtime.
type Watcher struct {
	path     string
	rt       *Runtime
	fsw      *fsnotify.Watcher
	logger   *slogx.Logger
	onReload ReloadFunc

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithReloadFunc sets a callback run after every reload attempt.
func WithReloadFunc(fn ReloadFunc) WatchOption {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// WithWatchLogger sets where reload outcomes are logged. The default is the
// runtime's logger, or slogx.Default() when tracing is off.
func WithWatchLogger(logger *slogx.Logger) WatchOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// Watch starts watching path and applies every successful reload to rt.
// The parent directory is watched so that editors which replace the file by
// renaming are seen too.
func Watch(path string, rt *Runtime, opts ...WatchOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:   abs,
		rt:     rt,
		fsw:    fsw,
		logger: rt.Logger,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = slogx.Default()
	}
	w.logger = w.logger.WithGroup("config")

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", slog.Any("error", err))
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		// Keep the settings in effect; a half-written file is reported here
		// and picked up again on the next write.
		w.logger.Warn("reload failed", slog.String("path", w.path), slog.Any("error", err))
		w.notify(nil, err)
		return
	}

	if rebuild := w.rt.Apply(cfg); len(rebuild) > 0 {
		w.logger.Warn("settings need a new runtime", slog.Any("settings", rebuild))
	}
	w.logger.Info("reloaded", slog.String("path", w.path))
	w.notify(cfg, nil)
}

func (w *Watcher) notify(cfg *Config, err error) {
	if w.onReload != nil {
		w.onReload(cfg, err)
	}
}
