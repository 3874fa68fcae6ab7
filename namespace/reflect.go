package namespace

import (
	"sort"

	"github.com/j2inn/haystack-core-sub001/hval"
	"github.com/j2inn/haystack-core-sub001/logger"
)

// Tags is the read side of a record. *hval.Dict implements it.
type Tags interface {
	Names() []string
	Get(name string) (hval.Value, bool)
}

// TypeTieBreak orders two equally specific entity types. A negative result
// puts a first.
type TypeTieBreak func(ns *Namespace, a, b *Def) int

// PreferSpecific ranks conjuncts first, then defs with the longer inheritance.
// Remaining ties keep discovery order.
func PreferSpecific(ns *Namespace, a, b *Def) int {
	if ac, bc := a.IsConjunct(), b.IsConjunct(); ac != bc {
		if ac {
			return -1
		}
		return 1
	}
	return len(ns.Inheritance(b.name)) - len(ns.Inheritance(a.name))
}

// DiscoveryOrder keeps the order in which reflection implied the types.
func DiscoveryOrder(*Namespace, *Def, *Def) int { return 0 }

// Tie-break names accepted by TieBreakByName.
const (
	TieBreakSpecific  = "specific"
	TieBreakDiscovery = "discovery"
)

// TieBreakByName returns a built-in tie-break.
func TieBreakByName(name string) (TypeTieBreak, bool) {
	switch name {
	case TieBreakSpecific, "":
		return PreferSpecific, true
	case TieBreakDiscovery:
		return DiscoveryOrder, true
	}
	return nil, false
}

// Reflection is the set of defs implied by one record.
type Reflection struct {
	ns      *Namespace
	subject Tags
	defs    []*Def
	index   map[string]struct{}
}

// Reflect computes the defs implied by the marker tags of subject, including
// every conjunct whose components are all implied.
func (ns *Namespace) Reflect(subject Tags) *Reflection {
	r := &Reflection{
		ns:      ns,
		subject: subject,
		index:   make(map[string]struct{}),
	}
	if subject == nil {
		return r
	}

	for _, name := range subject.Names() {
		v, _ := subject.Get(name)
		if !hval.IsMarker(v) || !ns.Has(name) {
			continue
		}
		r.addAll(ns.Inheritance(name))
	}

	// Adding a conjunct may imply components of further conjuncts, so repeat
	// until a pass adds nothing.
	passes := 0
	for {
		passes++
		added := false
		for _, c := range ns.conjuncts {
			if r.Fits(c.name) || !r.hasAll(SplitConjunct(c.name)) {
				continue
			}
			r.addAll(ns.Inheritance(c.name))
			added = true
		}
		if !added {
			break
		}
	}

	if passes > 2 {
		ns.logger.Debugw("Conjunct reflection needed extra passes",
			logger.FieldPasses, passes,
			logger.FieldCount, len(r.defs))
	}
	return r
}

func (r *Reflection) addAll(defs []*Def) {
	for _, def := range defs {
		if _, ok := r.index[def.name]; ok {
			continue
		}
		r.index[def.name] = struct{}{}
		r.defs = append(r.defs, def)
	}
}

func (r *Reflection) hasAll(names []string) bool {
	if len(names) == 0 {
		return false
	}
	for _, name := range names {
		if !r.Fits(name) {
			return false
		}
	}
	return true
}

// Subject returns the reflected record.
func (r *Reflection) Subject() Tags { return r.subject }

// Namespace returns the namespace used to reflect.
func (r *Reflection) Namespace() *Namespace { return r.ns }

// Defs returns the implied defs in discovery order.
func (r *Reflection) Defs() []*Def {
	return append([]*Def(nil), r.defs...)
}

// Names returns the implied def names in discovery order.
func (r *Reflection) Names() []string {
	names := make([]string, len(r.defs))
	for i, def := range r.defs {
		names[i] = def.name
	}
	return names
}

// Len returns the number of implied defs.
func (r *Reflection) Len() int { return len(r.defs) }

// Fits reports whether name is among the implied defs.
func (r *Reflection) Fits(name string) bool {
	_, ok := r.index[name]
	return ok
}

// ToGrid renders one row per implied def record.
func (r *Reflection) ToGrid() *hval.Grid {
	return defsToGrid(r.defs)
}

// Type returns the most specific implied entity type. Candidates that are a
// strict ancestor of another candidate are dropped, then the namespace
// tie-break picks among the rest.
func (r *Reflection) Type() (*Def, bool) {
	var candidates []*Def
	for _, def := range r.defs {
		if r.ns.FitsEntity(def.name) {
			candidates = append(candidates, def)
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}

	var leaves []*Def
	for _, c := range candidates {
		if !r.isAncestorOfAny(c, candidates) {
			leaves = append(leaves, c)
		}
	}
	if len(leaves) == 0 {
		// Only possible with an is-cycle among the candidates.
		leaves = candidates
	}

	sort.SliceStable(leaves, func(i, j int) bool {
		return r.ns.tieBreak(r.ns, leaves[i], leaves[j]) < 0
	})
	return leaves[0], true
}

func (r *Reflection) isAncestorOfAny(def *Def, of []*Def) bool {
	for _, other := range of {
		if other.name != def.name && r.ns.Fits(other.name, def.name) {
			return true
		}
	}
	return false
}
