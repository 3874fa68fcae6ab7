package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFileName)

	require.NoError(t, SaveKey(path, "relationship.max_depth", 6))
	require.NoError(t, SaveKey(path, "defs.paths", []string{"defs"}))
	require.NoError(t, SaveKey(path, "defs.bundled", false))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Relationship.MaxDepth)
	assert.Equal(t, []string{"defs"}, cfg.Defs.Paths)
	assert.False(t, cfg.Defs.Bundled)
}

func TestSaveKeyRotatesBackups(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	for depth := 1; depth <= 5; depth++ {
		require.NoError(t, SaveKey(path, "relationship.max_depth", depth))
	}

	for i := 1; i <= backupCount; i++ {
		_, err := os.Stat(path + ".back" + strconv.Itoa(i))
		assert.NoError(t, err, "backup %d", i)
	}
	_, err := os.Stat(path + ".back4")
	assert.True(t, os.IsNotExist(err))

	newest, err := LoadFromFile(path + ".back1")
	require.NoError(t, err)
	assert.Equal(t, 4, newest.Relationship.MaxDepth)
}

func TestSaveKeyErrors(t *testing.T) {
	dir := t.TempDir()

	err := SaveKey(filepath.Join(dir, ConfigFileName), "", 1)
	assert.True(t, errors.IsInvalidArgumentError(err))

	bad := filepath.Join(dir, "bad.toml")
	writeFile(t, bad, "[broken")
	assert.Error(t, SaveKey(bad, "log.json", true))
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue("defs.watch", "true")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = ParseValue("relationship.max_depth", "12")
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	v, err = ParseValue("defs.paths", "a.yaml, dir")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.yaml", "dir"}, v)

	v, err = ParseValue("reflect.type_tie_break", "discovery")
	require.NoError(t, err)
	assert.Equal(t, "discovery", v)

	_, err = ParseValue("relationship.max_depth", "deep")
	assert.Error(t, err)

	_, err = ParseValue("defs.nope", "x")
	assert.Error(t, err)
}
