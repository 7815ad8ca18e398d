// Package config provides validated, immutable settings for the edit engine.
//
// A Config carries the indent width, the ordered table of paired delimiters
// and, when built for a host, the resolved buffer surface. Configuration
// arrives either as a bare target identifier or as a structured options
// record; both are members of the Input union:
//
//	cfg, err := config.Build(config.Target("#editor"), registry)
//
//	cfg, err := config.Build(config.Options{
//		Target:      "#editor",
//		IndentWidth: 4,
//	}, registry)
//
// Untyped data (decoded TOML or YAML, Lua tables) is converted to an Input by
// ParseInput, which is the only place that inspects dynamic types.
//
// # Sub-packages
//
//   - loader: configuration file loading (TOML, YAML, environment variables)
//   - watcher: live reload of a configuration file
//
// All validation happens at build time; a Config never fails at keystroke
// time. Config values are immutable and safe for concurrent use.
package config
