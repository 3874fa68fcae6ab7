// Package namespace is the def graph and semantic reflection engine.
//
// A Namespace is built once from a grid of def records and is never mutated
// afterwards, so it is safe for concurrent readers. Refreshing the ontology
// means building a new Namespace and swapping it into a Holder.
//
// Query functions fall into two groups:
//   - total queries (Fits, SubTypesOf, Inheritance, HasRelationship, IsValid, ...)
//     never fail; unknown names degrade to false or empty results
//   - strict queries (ByAllNames, ConjunctDefs, Implementation, Validate, ...)
//     fail fast with one of the structured errors in errors.go
package namespace

import (
	"time"

	"github.com/j2inn/haystack-core-sub001/hval"
	"github.com/j2inn/haystack-core-sub001/logger"
	"go.uber.org/zap"
)

// DefaultMaxRelationshipDepth bounds transitive relationship walks.
const DefaultMaxRelationshipDepth = 32

// Namespace is an immutable, queryable graph of defs.
type Namespace struct {
	defs  map[string]*Def
	order []*Def

	subTypes   map[string][]*Def // super name -> direct subtypes in table order
	tagsOf     map[string][]*Def // entity name -> defs declaring tagOn it
	choices    map[string][]*Def // choice group -> members
	choiceKeys []string
	features   map[string][]*Def // feature prefix -> defs
	featureKey []string
	conjuncts  []*Def
	compulsory []*Def
	names      []string

	tieBreak    TypeTieBreak
	maxRelDepth int
	logger      *zap.SugaredLogger
}

// Option configures a Namespace at build time.
type Option func(*Namespace)

// WithLogger sets the component logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(ns *Namespace) {
		if l != nil {
			ns.logger = l
		}
	}
}

// WithTypeTieBreak sets the comparator used by Reflection.Type when several
// maximally specific entity types remain.
func WithTypeTieBreak(tb TypeTieBreak) Option {
	return func(ns *Namespace) {
		if tb != nil {
			ns.tieBreak = tb
		}
	}
}

// WithMaxRelationshipDepth bounds transitive relationship walks. Values <= 0 keep the default.
func WithMaxRelationshipDepth(depth int) Option {
	return func(ns *Namespace) {
		if depth > 0 {
			ns.maxRelDepth = depth
		}
	}
}

// New builds a Namespace from a grid of def records.
//
// Rows without a def name are skipped. Duplicate names resolve last-write-wins,
// keeping the position of the first occurrence. References to unknown defs
// (in is, tagOn, choice, ...) are not checked here; they surface when a query
// tries to resolve them.
func New(grid *hval.Grid, opts ...Option) *Namespace {
	start := time.Now()
	ns := &Namespace{
		defs:        make(map[string]*Def),
		subTypes:    make(map[string][]*Def),
		tagsOf:      make(map[string][]*Def),
		choices:     make(map[string][]*Def),
		features:    make(map[string][]*Def),
		tieBreak:    PreferSpecific,
		maxRelDepth: DefaultMaxRelationshipDepth,
		logger:      logger.ComponentLogger("namespace"),
	}
	for _, opt := range opts {
		opt(ns)
	}

	skipped, duplicates := 0, 0
	position := make(map[string]int)
	for _, row := range grid.Rows() {
		def, ok := newDef(row)
		if !ok {
			skipped++
			ns.logger.Debugw("Skipping def row without name", "row", row.String())
			continue
		}
		if i, seen := position[def.name]; seen {
			duplicates++
			ns.order[i] = def
		} else {
			position[def.name] = len(ns.order)
			ns.order = append(ns.order, def)
		}
		ns.defs[def.name] = def
	}

	ns.index()

	ns.logger.Debugw("Namespace built",
		logger.FieldRows, grid.Len(),
		logger.FieldCount, len(ns.order),
		logger.FieldConjuncts, len(ns.conjuncts),
		"skipped", skipped,
		"duplicates", duplicates,
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return ns
}

// index builds the adjacency and association indices from the final def list.
func (ns *Namespace) index() {
	for _, def := range ns.order {
		ns.names = append(ns.names, def.name)

		for _, super := range uniqueNames(def.meta.Is) {
			ns.subTypes[super] = append(ns.subTypes[super], def)
		}

		for _, target := range uniqueNames(def.meta.TagOn) {
			ns.tagsOf[target] = append(ns.tagsOf[target], def)
		}

		if group := def.meta.Choice; group != "" {
			if _, ok := ns.choices[group]; !ok {
				ns.choiceKeys = append(ns.choiceKeys, group)
			}
			ns.choices[group] = append(ns.choices[group], def)
		}

		if prefix := FeatureOf(def.name); prefix != "" {
			if _, ok := ns.features[prefix]; !ok {
				ns.featureKey = append(ns.featureKey, prefix)
			}
			ns.features[prefix] = append(ns.features[prefix], def)
		}

		if def.IsConjunct() {
			ns.conjuncts = append(ns.conjuncts, def)
		}

		if def.Compulsory() {
			ns.compulsory = append(ns.compulsory, def)
		}
	}
}

// Len returns the number of defs.
func (ns *Namespace) Len() int { return len(ns.order) }

// ByName returns the def with the given name.
func (ns *Namespace) ByName(name string) (*Def, bool) {
	def, ok := ns.defs[name]
	return def, ok
}

// Has reports whether a def with the given name exists.
func (ns *Namespace) Has(name string) bool {
	_, ok := ns.defs[name]
	return ok
}

// ByAllNames resolves every name, failing on the first unknown one.
func (ns *Namespace) ByAllNames(names ...string) ([]*Def, error) {
	defs := make([]*Def, 0, len(names))
	for _, name := range names {
		def, ok := ns.defs[name]
		if !ok {
			return nil, ns.notFound(name, "")
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// AllDefs returns every def in table order.
func (ns *Namespace) AllDefs() []*Def {
	return append([]*Def(nil), ns.order...)
}

// Names returns every def name in table order.
func (ns *Namespace) Names() []string {
	return append([]string(nil), ns.names...)
}

// ToGrid renders every def record as a grid row.
func (ns *Namespace) ToGrid() *hval.Grid {
	return defsToGrid(ns.order)
}

// Compulsory returns the defs flagged compulsory.
func (ns *Namespace) Compulsory() []*Def {
	return append([]*Def(nil), ns.compulsory...)
}

func (ns *Namespace) resolveAll(names []string) []*Def {
	defs := make([]*Def, 0, len(names))
	for _, name := range names {
		if def, ok := ns.defs[name]; ok {
			defs = append(defs, def)
		}
	}
	return defs
}

func defsToGrid(defs []*Def) *hval.Grid {
	g := hval.NewGrid()
	for _, def := range defs {
		g.Add(def.rec)
	}
	return g
}

func uniqueNames(names []string) []string {
	if len(names) < 2 {
		return names
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
