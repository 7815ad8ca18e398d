package config

import (
	"errors"

	"github.com/dshills/keyedit/internal/config/watcher"
)

// ReloadFunc receives the outcome of a reload: a freshly built Config, or
// the error that prevented building one. The previous Config stays valid
// on error.
type ReloadFunc func(cfg *Config, err error)

// Reloader rebuilds a Config whenever its source file changes.
type Reloader struct {
	source Source
	build  func(Source) (*Config, error)
	w      *watcher.Watcher
}

// NewReloader watches s.Path and calls fn with a Config produced by build
// after every change. A nil build uses LoadSettings.
func NewReloader(s Source, build func(Source) (*Config, error), fn ReloadFunc, opts ...watcher.Option) (*Reloader, error) {
	if s.Path == "" {
		return nil, errors.New("reloader requires a config file path")
	}
	if build == nil {
		build = LoadSettings
	}

	w, err := watcher.New(opts...)
	if err != nil {
		return nil, err
	}

	r := &Reloader{source: s, build: build, w: w}
	w.OnChange(func(ev watcher.Event) {
		if ev.Op == watcher.OpRemove || ev.Op == watcher.OpRename {
			return
		}
		fn(r.build(r.source))
	})
	w.OnError(func(err error) {
		fn(nil, err)
	})

	if err := w.Watch(s.Path); err != nil {
		_ = w.Close()
		return nil, err
	}
	return r, nil
}

// Path returns the watched file.
func (r *Reloader) Path() string {
	return r.source.Path
}

// Close stops watching.
func (r *Reloader) Close() error {
	return r.w.Close()
}
