package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/logger"
	"github.com/spf13/viper"
)

// ConfigSources records which file last set each key during the most recent Load.
var ConfigSources = make(map[string]SourceInfo)

var viperInstance *viper.Viper

// Load reads the configuration from every source. explicitPath, when set,
// names a config file merged above the project file.
func Load(explicitPath string) (*Config, error) {
	v, err := initViper(explicitPath)
	if err != nil {
		return nil, err
	}
	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// GetViper returns the viper instance of the most recent Load, or a fresh
// instance holding only defaults and env bindings.
func GetViper() *viper.Viper {
	if viperInstance == nil {
		v := viper.New()
		bindEnv(v)
		SetDefaults(v)
		return v
	}
	return viperInstance
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path over the defaults.
// Env vars and other files are ignored.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}
	return LoadWithViper(v)
}

// Reset clears the cached viper instance and tracked sources (useful for testing)
func Reset() {
	viperInstance = nil
	ConfigSources = make(map[string]SourceInfo)
}

func initViper(explicitPath string) (*viper.Viper, error) {
	Reset()

	v := viper.New()
	bindEnv(v)
	SetDefaults(v)

	homeDir, _ := os.UserHomeDir()
	files := []struct {
		path   string
		source ConfigSource
	}{
		{filepath.Join(homeDir, UserConfigDirName, ConfigFileName), SourceUser},
		{findProjectConfig(), SourceProject},
	}
	for _, f := range files {
		if f.path == "" {
			continue
		}
		if _, err := os.Stat(f.path); err != nil {
			continue
		}
		if err := mergeConfigFile(v, f.path, f.source); err != nil {
			// Optional files that fail to parse are skipped.
			logger.Warnw("Skipping unreadable config file", logger.FieldFile, f.path, logger.FieldError, err)
		}
	}

	if explicitPath != "" {
		if err := mergeConfigFile(v, explicitPath, SourceExplicit); err != nil {
			return nil, err
		}
	}

	viperInstance = v
	return v, nil
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// mergeConfigFile merges one TOML file into v's config layer, below env vars,
// and records the file as the source of each key it sets.
func mergeConfigFile(v *viper.Viper, path string, source ConfigSource) error {
	tmp := viper.New()
	tmp.SetConfigFile(path)
	tmp.SetConfigType("toml")
	if err := tmp.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}

	settings := tmp.AllSettings()
	if err := v.MergeConfigMap(settings); err != nil {
		return errors.Wrapf(err, "failed to merge config file %s", path)
	}
	for _, key := range flattenKeys(settings, "") {
		ConfigSources[key] = SourceInfo{Source: source, Path: path}
	}
	logger.Debugw("Merged config file", logger.FieldFile, path, "source", string(source))
	return nil
}

// findProjectConfig searches for haystack.toml by walking up the directory tree
// Returns the path to the first config file found, or empty string if none found
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// UserConfigPath returns ~/.haystack/haystack.toml.
func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "could not determine home directory")
	}
	return filepath.Join(home, UserConfigDirName, ConfigFileName), nil
}
