package namespace

import (
	"github.com/j2inn/haystack-core-sub001/hval"
	"github.com/j2inn/haystack-core-sub001/logger"
)

// Protos returns the child record templates recommended for a parent.
//
// Every reflected def declaring children contributes its templates in order.
// Each template is prefixed with the parent's qualifier tags: the parent
// markers that fit one of the def's childrenFlatten bases (a fluid such as
// steam, a direction such as leaving). Exact duplicates are dropped, keeping
// the first.
func (ns *Namespace) Protos(parent Tags) []*hval.Dict {
	r := ns.Reflect(parent)
	var protos []*hval.Dict
	for _, def := range r.defs {
		children := def.Children()
		if len(children) == 0 {
			continue
		}
		qualifiers := ns.qualifiers(r, def.meta.ChildrenFlatten)
		for _, child := range children {
			proto := hval.Markers(qualifiers...)
			child.Each(func(name string, v hval.Value) bool {
				proto.Set(name, v)
				return true
			})
			if !containsDict(protos, proto) {
				protos = append(protos, proto)
			}
		}
	}
	ns.logger.Debugw("Protos generated",
		logger.FieldCount, len(protos),
		"reflected", r.Len())
	return protos
}

// qualifiers returns the parent marker tags carried by reflected defs that
// fit any of the bases or belong to a base choice. A conjunct contributes
// its components.
func (ns *Namespace) qualifiers(r *Reflection, bases []string) []string {
	if len(bases) == 0 || r.subject == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	add := func(name string) {
		v, _ := r.subject.Get(name)
		if seen[name] || !hval.IsMarker(v) {
			return
		}
		seen[name] = true
		out = append(out, name)
	}
	for _, def := range r.defs {
		if !ns.fitsAny(def, bases) {
			continue
		}
		if def.IsConjunct() {
			for _, part := range SplitConjunct(def.name) {
				add(part)
			}
			continue
		}
		add(def.name)
	}
	return out
}

// fitsAny reports whether def fits one of the bases or is a member of one
// of them as a choice group.
func (ns *Namespace) fitsAny(def *Def, bases []string) bool {
	for _, base := range bases {
		if def.meta.Choice == base || ns.Fits(def.name, base) {
			return true
		}
	}
	return false
}

func containsDict(dicts []*hval.Dict, d *hval.Dict) bool {
	for _, existing := range dicts {
		if existing.Equal(d) {
			return true
		}
	}
	return false
}
