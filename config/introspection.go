package config

import (
	"os"
	"sort"
	"strings"
)

// ConfigSource represents where a configuration value came from
type ConfigSource string

const (
	SourceDefault     ConfigSource = "default"
	SourceUser        ConfigSource = "user"        // ~/.haystack/haystack.toml
	SourceProject     ConfigSource = "project"     // haystack.toml found upward from cwd
	SourceExplicit    ConfigSource = "explicit"    // --config
	SourceEnvironment ConfigSource = "environment" // HAYSTACK_* env vars
)

// SourceInfo tracks where a configuration value originated
type SourceInfo struct {
	Source ConfigSource
	Path   string // file path or env var name
}

// SettingInfo is one effective setting and its origin.
type SettingInfo struct {
	Key        string       `json:"key" yaml:"key"`
	Value      any          `json:"value" yaml:"value"`
	Source     ConfigSource `json:"source" yaml:"source"`
	SourcePath string       `json:"source_path,omitempty" yaml:"source_path,omitempty"`
}

// Introspect lists every effective setting of the most recent Load with its source.
func Introspect() []SettingInfo {
	return introspect(GetViper().AllSettings(), ConfigSources)
}

func introspect(all map[string]any, sources map[string]SourceInfo) []SettingInfo {
	var settings []SettingInfo
	for _, key := range flattenKeys(all, "") {
		info := SourceInfo{Source: SourceDefault, Path: "built-in default"}
		if si, ok := sources[key]; ok {
			info = si
		}

		envKey := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if os.Getenv(envKey) != "" {
			info = SourceInfo{Source: SourceEnvironment, Path: envKey}
		}

		settings = append(settings, SettingInfo{
			Key:        key,
			Value:      lookup(all, key),
			Source:     info.Source,
			SourcePath: info.Path,
		})
	}
	return settings
}

// flattenKeys returns the dotted leaf keys of a nested settings map, sorted.
func flattenKeys(settings map[string]any, prefix string) []string {
	var keys []string
	for k, v := range settings {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			keys = append(keys, flattenKeys(nested, full)...)
			continue
		}
		keys = append(keys, full)
	}
	sort.Strings(keys)
	return keys
}

func lookup(settings map[string]any, key string) any {
	head, rest, nested := strings.Cut(key, ".")
	v := settings[head]
	if !nested {
		return v
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return lookup(m, rest)
}
