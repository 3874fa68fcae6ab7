package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/namespace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDefs(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defs.yaml")
	writeDefs(t, path, "- def: \"y:marker\"\n")

	holder := namespace.NewHolder(nil)
	w, err := NewWatcher(holder, []string{path})
	require.NoError(t, err)
	defer w.Stop()

	var seen int
	w.OnReload(func(ns *namespace.Namespace) error {
		seen = ns.Len()
		return errors.New("callback errors are logged, not returned")
	})

	ns, err := w.Reload()
	require.NoError(t, err)
	assert.Equal(t, 1, ns.Len())
	assert.Same(t, ns, holder.Load())
	assert.Equal(t, 1, seen)

	writeDefs(t, path, "- def: [broken")
	_, err = w.Reload()
	require.Error(t, err)
	assert.Same(t, ns, holder.Load(), "failed reload keeps the previous namespace")
}

func TestWatcherDetectsChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defs.yaml")
	writeDefs(t, path, "- def: \"y:marker\"\n")

	holder := namespace.NewHolder(nil)
	w, err := NewWatcher(holder, []string{path}, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer w.Stop()

	reloaded := make(chan *namespace.Namespace, 4)
	w.OnReload(func(ns *namespace.Namespace) error {
		reloaded <- ns
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	writeDefs(t, path, "- def: \"y:marker\"\n- def: \"y:site\"\n  is: [\"y:marker\"]\n")

	select {
	case ns := <-reloaded:
		assert.True(t, ns.Has("site"))
		assert.True(t, holder.Load().Has("site"))
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherTracks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defs.yaml")
	writeDefs(t, path, "[]")

	w, err := NewWatcher(namespace.NewHolder(nil), []string{path, dir})
	require.NoError(t, err)
	defer w.Stop()

	assert.True(t, w.tracks(path))
	assert.True(t, w.tracks(filepath.Join(dir, "other.toml")), "directory members with def extensions")
	assert.False(t, w.tracks(filepath.Join(dir, "notes.txt")))
	assert.False(t, w.tracks("/elsewhere/defs.yaml"))
}

func TestNewWatcherErrors(t *testing.T) {
	_, err := NewWatcher(nil, nil)
	assert.True(t, errors.IsInvalidArgumentError(err))

	_, err = NewWatcher(namespace.NewHolder(nil), []string{filepath.Join(t.TempDir(), "missing", "defs.yaml")})
	assert.Error(t, err)
}
