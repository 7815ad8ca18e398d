package config

import (
	"fmt"

	"github.com/dshills/keyedit/internal/config/loader"
	"github.com/dshills/keyedit/internal/engine/buffer"
)

// Source describes where configuration data comes from.
type Source struct {
	// Path is a .toml, .yaml or .yml file. Empty means no file.
	Path string
	// FS reads Path. Defaults to the OS file system.
	FS loader.FileSystem
	// Env supplies KEYEDIT_ overrides. Defaults to the process environment.
	Env loader.Loader
}

// Load reads the file (if any) and layers environment overrides on top.
// A missing file is not an error.
func (s Source) Load() (map[string]any, error) {
	fsys := s.FS
	if fsys == nil {
		fsys = loader.DefaultFS()
	}
	env := s.Env
	if env == nil {
		env = loader.NewEnvLoader(loader.DefaultEnvPrefix)
	}

	var data map[string]any
	if s.Path != "" {
		l, err := loader.ForPath(fsys, s.Path)
		if err != nil {
			return nil, err
		}
		if data, err = l.Load(); err != nil {
			return nil, err
		}
	}

	overrides, err := env.Load()
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	return loader.DeepMerge(data, overrides), nil
}

// LoadConfig loads a source and builds a Config bound to a resolved target.
func LoadConfig(s Source, res buffer.Resolver) (*Config, error) {
	data, err := s.Load()
	if err != nil {
		return nil, err
	}
	in, err := ParseInput(data)
	if err != nil {
		return nil, err
	}
	return Build(in, res)
}

// LoadSettings loads a source without requiring a target. An empty source
// yields the default settings.
func LoadSettings(s Source) (*Config, error) {
	data, err := s.Load()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return Default(), nil
	}
	in, err := ParseInput(data)
	if err != nil {
		return nil, err
	}
	switch v := in.(type) {
	case Options:
		return FromOptions(v)
	case Target:
		return FromOptions(Options{Target: string(v)})
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedArgumentType, in)
	}
}
