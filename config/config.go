// Package config loads engine settings with viper.
//
// Sources merge in precedence order (lowest to highest): built-in defaults,
// user ~/.haystack/haystack.toml, project haystack.toml (found by walking up
// from the working directory), an explicit --config file, HAYSTACK_* env vars.
package config

import (
	"time"

	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/namespace"
)

// Config is the engine configuration.
type Config struct {
	Defs         DefsConfig         `mapstructure:"defs" toml:"defs" yaml:"defs" json:"defs"`
	Reflect      ReflectConfig      `mapstructure:"reflect" toml:"reflect" yaml:"reflect" json:"reflect"`
	Relationship RelationshipConfig `mapstructure:"relationship" toml:"relationship" yaml:"relationship" json:"relationship"`
	Log          LogConfig          `mapstructure:"log" toml:"log" yaml:"log" json:"log"`
}

// DefsConfig selects def sources.
type DefsConfig struct {
	// Paths lists def files or directories. Empty means the bundled ontology only.
	Paths []string `mapstructure:"paths" toml:"paths" yaml:"paths" json:"paths"`
	// Bundled loads the bundled ontology underneath Paths.
	Bundled bool `mapstructure:"bundled" toml:"bundled" yaml:"bundled" json:"bundled"`
	// Watch rebuilds the namespace when a def file changes.
	Watch      bool `mapstructure:"watch" toml:"watch" yaml:"watch" json:"watch"`
	DebounceMS int  `mapstructure:"debounce_ms" toml:"debounce_ms" yaml:"debounce_ms" json:"debounce_ms"`
}

// ReflectConfig tunes reflection.
type ReflectConfig struct {
	TypeTieBreak string `mapstructure:"type_tie_break" toml:"type_tie_break" yaml:"type_tie_break" json:"type_tie_break"` // specific, discovery
}

// RelationshipConfig tunes relationship resolution.
type RelationshipConfig struct {
	MaxDepth int `mapstructure:"max_depth" toml:"max_depth" yaml:"max_depth" json:"max_depth"`
}

// LogConfig configures the global logger.
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json" yaml:"json" json:"json"`
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity" yaml:"verbosity" json:"verbosity"` // 0..4
}

// Debounce returns the watcher quiet period.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Defs.DebounceMS) * time.Millisecond
}

// NamespaceOptions maps the settings onto namespace build options.
func (c *Config) NamespaceOptions() ([]namespace.Option, error) {
	tb, ok := namespace.TieBreakByName(c.Reflect.TypeTieBreak)
	if !ok {
		return nil, errors.Newf("reflect.type_tie_break: unknown tie-break %q", c.Reflect.TypeTieBreak)
	}
	return []namespace.Option{
		namespace.WithTypeTieBreak(tb),
		namespace.WithMaxRelationshipDepth(c.Relationship.MaxDepth),
	}, nil
}
