// Package ontology bundles a starter def set so the engine works without any
// def files on disk.
package ontology

import (
	_ "embed"
	"sync"

	"github.com/j2inn/haystack-core-sub001/hval"
	"github.com/j2inn/haystack-core-sub001/namespace"
	"github.com/j2inn/haystack-core-sub001/source"
)

//go:embed defs.yaml
var defsYAML []byte

var (
	once sync.Once
	grid *hval.Grid
	ns   *namespace.Namespace
)

func load() {
	g, err := source.Decode(defsYAML, source.FormatYAML)
	if err != nil {
		// The file is embedded at build time; a decode failure is a broken build.
		panic("ontology: bundled defs do not decode: " + err.Error())
	}
	grid = g
	ns = namespace.New(g)
}

// Grid returns the bundled def rows. Callers must not modify the rows.
func Grid() *hval.Grid {
	once.Do(load)
	return grid
}

// Namespace returns a namespace built from the bundled defs with default options.
func Namespace() *namespace.Namespace {
	once.Do(load)
	return ns
}

// Build builds a namespace from the bundled defs with the given options.
func Build(opts ...namespace.Option) *namespace.Namespace {
	return namespace.New(Grid(), opts...)
}
