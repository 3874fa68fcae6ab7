package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const backupCount = 3

// createBackup creates rotating backups (.back1, .back2, .back3) before modifying config
func createBackup(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil
	}

	for i := backupCount; i > 1; i-- {
		older := configPath + ".back" + strconv.Itoa(i)
		newer := configPath + ".back" + strconv.Itoa(i-1)
		if _, err := os.Stat(newer); err != nil {
			continue
		}
		if err := os.Rename(newer, older); err != nil {
			return errors.Wrapf(err, "failed to rotate %s", newer)
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}
	if err := os.WriteFile(configPath+".back1", content, 0644); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}
	return nil
}

// SaveKey sets one dotted key in a TOML config file, creating the file and
// its directory when missing. The previous file is kept as a backup.
func SaveKey(configPath, key string, value any) error {
	if key == "" {
		return errors.Wrap(errors.ErrInvalidArgument, "empty config key")
	}
	if err := os.MkdirAll(filepath.Dir(configPath), DefaultDirPermissions); err != nil {
		return errors.Wrapf(err, "failed to create %s", filepath.Dir(configPath))
	}

	doc := make(map[string]any)
	if data, err := os.ReadFile(configPath); err == nil {
		if err := toml.Unmarshal(data, &doc); err != nil {
			return errors.Wrapf(err, "failed to parse %s", configPath)
		}
	}

	parts := strings.Split(key, ".")
	section := doc
	for _, part := range parts[:len(parts)-1] {
		next, ok := section[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			section[part] = next
		}
		section = next
	}
	section[parts[len(parts)-1]] = value

	data, err := toml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := createBackup(configPath); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", configPath)
	}
	return nil
}

// ParseValue converts a command line string to the type of key's default.
func ParseValue(key, raw string) (any, error) {
	v := viper.New()
	SetDefaults(v)
	if !v.IsSet(key) {
		return nil, errors.WithHint(
			errors.Newf("unknown config key %q", key),
			"run 'haystack config show' to list keys")
	}

	switch v.Get(key).(type) {
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "%s expects a bool", key)
		}
		return b, nil
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "%s expects an integer", key)
		}
		return n, nil
	case []string:
		if raw == "" {
			return []string{}, nil
		}
		items := strings.Split(raw, ",")
		for i := range items {
			items[i] = strings.TrimSpace(items[i])
		}
		return items, nil
	}
	return raw, nil
}
