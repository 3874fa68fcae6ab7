package config

import (
	"github.com/j2inn/haystack-core-sub001/namespace"
	"github.com/spf13/viper"
)

// File and directory names.
const (
	ConfigFileName        = "haystack.toml"
	UserConfigDirName     = ".haystack"
	EnvPrefix             = "HAYSTACK"
	DefaultDirPermissions = 0750
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("defs.paths", []string{})
	v.SetDefault("defs.bundled", true)
	v.SetDefault("defs.watch", false)
	v.SetDefault("defs.debounce_ms", 250)

	v.SetDefault("reflect.type_tie_break", namespace.TieBreakSpecific)

	v.SetDefault("relationship.max_depth", namespace.DefaultMaxRelationshipDepth)

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}
