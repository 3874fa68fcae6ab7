// Package source loads def records from files and keeps a namespace holder
// current as those files change.
package source

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/hval"
	"github.com/j2inn/haystack-core-sub001/logger"
	"github.com/j2inn/haystack-core-sub001/namespace"
)

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.Wrapf(errors.ErrInvalidArgument, "%s: unsupported def file extension", path)
}

// LoadFile decodes the def rows of one file.
func LoadFile(path string) (*hval.Grid, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read def file %s", path)
	}
	g, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}
	logger.Debugw("Loaded def file",
		logger.FieldFile, path,
		logger.FieldRows, g.Len())
	return g, nil
}

// Expand resolves paths to def files. Directories contribute their supported
// files in name order; files are kept as given.
func Expand(paths ...string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, errors.Wrapf(err, "def path %s", p)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read def directory %s", p)
		}
		var names []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if _, err := FormatOf(e.Name()); err == nil {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)
		for _, name := range names {
			files = append(files, filepath.Join(p, name))
		}
	}
	return files, nil
}

// LoadFiles loads every def file under paths, in order.
func LoadFiles(paths ...string) (*hval.Grid, error) {
	files, err := Expand(paths...)
	if err != nil {
		return nil, err
	}
	grids := make([]*hval.Grid, 0, len(files))
	for _, f := range files {
		g, err := LoadFile(f)
		if err != nil {
			return nil, err
		}
		grids = append(grids, g)
	}
	return Merge(grids...), nil
}

// Merge concatenates grids. A later row with the same def name overrides an
// earlier one when the namespace is built.
func Merge(grids ...*hval.Grid) *hval.Grid {
	out := hval.NewGrid()
	for _, g := range grids {
		for _, row := range g.Rows() {
			out.Add(row)
		}
	}
	return out
}

// Build loads paths on top of base and builds a namespace.
func Build(base *hval.Grid, paths []string, opts ...namespace.Option) (*namespace.Namespace, error) {
	g := base
	if len(paths) > 0 {
		loaded, err := LoadFiles(paths...)
		if err != nil {
			return nil, err
		}
		g = Merge(base, loaded)
	}
	return namespace.New(g, opts...), nil
}
