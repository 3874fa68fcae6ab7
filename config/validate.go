package config

import (
	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/namespace"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Debounce: 0 = rebuild immediately, negative = invalid
	if c.Defs.DebounceMS < 0 {
		return errors.Newf("defs.debounce_ms must be >= 0, got %d", c.Defs.DebounceMS)
	}

	if c.Defs.Watch && len(c.Defs.Paths) == 0 {
		return errors.New("defs.watch needs at least one entry in defs.paths")
	}

	if _, ok := namespace.TieBreakByName(c.Reflect.TypeTieBreak); !ok {
		return errors.WithHintf(
			errors.Newf("reflect.type_tie_break: unknown tie-break %q", c.Reflect.TypeTieBreak),
			"use %q or %q", namespace.TieBreakSpecific, namespace.TieBreakDiscovery)
	}

	// Depth: 0 = use the built-in bound, negative = invalid
	if c.Relationship.MaxDepth < 0 {
		return errors.Newf("relationship.max_depth must be >= 0, got %d", c.Relationship.MaxDepth)
	}

	if c.Log.Verbosity < 0 || c.Log.Verbosity > 4 {
		return errors.Newf("log.verbosity must be between 0 and 4, got %d", c.Log.Verbosity)
	}

	return nil
}
