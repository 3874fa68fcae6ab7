package namespace

import (
	"strings"

	"github.com/j2inn/haystack-core-sub001/hval"
)

// Association kinds understood by Associations without reading the parent record.
const (
	AssocIs    = "is"
	AssocTagOn = "tagOn"
	AssocTags  = "tags"
)

// SubTypesOf returns the defs declaring name as a direct supertype, in table order.
func (ns *Namespace) SubTypesOf(name string) []*Def {
	return append([]*Def(nil), ns.subTypes[name]...)
}

// HasSubTypes reports whether any def declares name as a direct supertype.
func (ns *Namespace) HasSubTypes(name string) bool {
	return len(ns.subTypes[name]) > 0
}

// AllSubTypesOf returns the transitive subtypes of name, breadth first.
// The result never contains name itself.
func (ns *Namespace) AllSubTypesOf(name string) []*Def {
	visited := map[string]bool{name: true}
	var out []*Def
	queue := ns.SubTypesOf(name)
	for len(queue) > 0 {
		def := queue[0]
		queue = queue[1:]
		if visited[def.name] {
			continue
		}
		visited[def.name] = true
		out = append(out, def)
		queue = append(queue, ns.subTypes[def.name]...)
	}
	return out
}

// SuperTypesOf returns the resolved direct supertypes of name in declared order.
func (ns *Namespace) SuperTypesOf(name string) []*Def {
	def, ok := ns.defs[name]
	if !ok {
		return nil
	}
	return ns.resolveAll(uniqueNames(def.meta.Is))
}

// AllSuperTypesOf returns the transitive supertypes of name, nearest first.
// Unknown supertypes are skipped and cycles are cut.
func (ns *Namespace) AllSuperTypesOf(name string) []*Def {
	visited := map[string]bool{name: true}
	var out []*Def
	queue := ns.SuperTypesOf(name)
	for len(queue) > 0 {
		def := queue[0]
		queue = queue[1:]
		if visited[def.name] {
			continue
		}
		visited[def.name] = true
		out = append(out, def)
		queue = append(queue, ns.SuperTypesOf(def.name)...)
	}
	return out
}

// Inheritance returns the def itself followed by all of its supertypes.
// Unknown names yield an empty result.
func (ns *Namespace) Inheritance(name string) []*Def {
	def, ok := ns.defs[name]
	if !ok {
		return nil
	}
	return append([]*Def{def}, ns.AllSuperTypesOf(name)...)
}

// Fits reports whether name is base or a transitive subtype of it.
// Both names must resolve.
func (ns *Namespace) Fits(name, base string) bool {
	if !ns.Has(name) || !ns.Has(base) {
		return false
	}
	if name == base {
		return true
	}
	for _, def := range ns.AllSuperTypesOf(name) {
		if def.name == base {
			return true
		}
	}
	return false
}

// FitsMarker reports whether name is a marker def.
func (ns *Namespace) FitsMarker(name string) bool { return ns.Fits(name, "marker") }

// FitsVal reports whether name is a value def.
func (ns *Namespace) FitsVal(name string) bool { return ns.Fits(name, "val") }

// FitsEntity reports whether name is an entity def.
func (ns *Namespace) FitsEntity(name string) bool { return ns.Fits(name, "entity") }

// FitsChoice reports whether name is a member of a choice group.
func (ns *Namespace) FitsChoice(name string) bool {
	def, ok := ns.defs[name]
	if !ok || def.meta.Choice == "" {
		return false
	}
	return len(ns.choices[def.meta.Choice]) > 0
}

// IsConjunct reports whether name is a conjunct.
func (ns *Namespace) IsConjunct(name string) bool { return IsConjunct(name) }

// SplitConjunct returns the component names of a conjunct.
func (ns *Namespace) SplitConjunct(name string) []string { return SplitConjunct(name) }

// ConjunctDefs resolves every component of a conjunct.
func (ns *Namespace) ConjunctDefs(name string) ([]*Def, error) {
	return ns.ByAllNames(SplitConjunct(name)...)
}

// Conjuncts returns every conjunct def in table order.
func (ns *Namespace) Conjuncts() []*Def {
	return append([]*Def(nil), ns.conjuncts...)
}

// Features returns the feature prefixes in first-seen order.
func (ns *Namespace) Features() []string {
	return append([]string(nil), ns.featureKey...)
}

// FeatureDefs returns the defs namespaced under prefix.
func (ns *Namespace) FeatureDefs(prefix string) []*Def {
	return append([]*Def(nil), ns.features[prefix]...)
}

// ChoicesFor returns the members of a choice group.
func (ns *Namespace) ChoicesFor(group string) []*Def {
	return append([]*Def(nil), ns.choices[group]...)
}

// Choices maps every choice group to its members.
func (ns *Namespace) Choices() map[string][]*Def {
	out := make(map[string][]*Def, len(ns.choices))
	for group, members := range ns.choices {
		out[group] = append([]*Def(nil), members...)
	}
	return out
}

// ChoiceGroups returns the choice group names in first-seen order.
func (ns *Namespace) ChoiceGroups() []string {
	return append([]string(nil), ns.choiceKeys...)
}

// Associations returns the defs related to parent by an association.
//
// "is" gives the direct supertypes, "tagOn" the declared tagOn targets, and
// "tags" every def declaring tagOn the parent or one of its supertypes. Any
// other association is read from the parent record as a list of names.
func (ns *Namespace) Associations(parent, association string) []*Def {
	def, ok := ns.defs[parent]
	if !ok {
		return nil
	}
	switch association {
	case AssocIs:
		return ns.SuperTypesOf(parent)
	case AssocTagOn:
		return ns.resolveAll(uniqueNames(def.meta.TagOn))
	case AssocTags:
		return ns.tagsOn(parent)
	}
	v, ok := def.rec.Get(association)
	if !ok {
		return nil
	}
	return ns.resolveAll(uniqueNames(hval.NameTokens(v)))
}

// Tags returns the defs that may be applied to records of type parent.
func (ns *Namespace) Tags(parent string) []*Def { return ns.Associations(parent, AssocTags) }

// Is returns the direct supertypes of name.
func (ns *Namespace) Is(name string) []*Def { return ns.Associations(name, AssocIs) }

// TagOn returns the defs that name may be applied to.
func (ns *Namespace) TagOn(name string) []*Def { return ns.Associations(name, AssocTagOn) }

func (ns *Namespace) tagsOn(parent string) []*Def {
	seen := make(map[string]bool)
	var out []*Def
	for _, def := range ns.Inheritance(parent) {
		for _, tag := range ns.tagsOf[def.name] {
			if seen[tag.name] {
				continue
			}
			seen[tag.name] = true
			out = append(out, tag)
		}
	}
	return out
}

// Implementation returns the defs a record must carry to implement name.
//
// A conjunct implements as its components. Otherwise the result is the def,
// followed by each mandatory supertype, followed by the compulsory defs.
func (ns *Namespace) Implementation(name string) ([]*Def, error) {
	def, ok := ns.defs[name]
	if !ok {
		return nil, ns.notFound(name, "")
	}
	if IsConjunct(name) {
		return ns.ConjunctDefs(name)
	}
	seen := map[string]bool{def.name: true}
	out := []*Def{def}
	for _, super := range ns.AllSuperTypesOf(name) {
		if super.Mandatory() && !seen[super.name] {
			seen[super.name] = true
			out = append(out, super)
		}
	}
	for _, c := range ns.compulsory {
		if !seen[c.name] {
			seen[c.name] = true
			out = append(out, c)
		}
	}
	return out, nil
}

// EnumOf returns the enumerated values declared by a def's enum tag.
func (ns *Namespace) EnumOf(name string) []string {
	def, ok := ns.defs[name]
	if !ok {
		return nil
	}
	v, ok := def.rec.Get("enum")
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case *hval.Dict:
		return t.Names()
	case hval.Str:
		return splitEnum(string(t))
	}
	return hval.NameTokens(v)
}

// splitEnum splits a newline or comma separated enum string.
func splitEnum(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == ',' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
