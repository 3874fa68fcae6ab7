package namespace

import (
	"strings"

	"github.com/j2inn/haystack-core-sub001/attrs"
	"github.com/j2inn/haystack-core-sub001/hval"
)

// Def is one named definition backed by its def record.
type Def struct {
	name string
	rec  *hval.Dict
	meta defMeta
}

// defMeta holds the def record tags the engine interprets.
type defMeta struct {
	Is              []string `tag:"is"`
	TagOn           []string `tag:"tagOn"`
	Choice          string   `tag:"choice"`
	Mandatory       bool     `tag:"mandatory"`
	Compulsory      bool     `tag:"compulsory"`
	ChildrenFlatten []string `tag:"childrenFlatten"`
	Transitive      bool     `tag:"transitive"`
	ReciprocalOf    string   `tag:"reciprocalOf"`
	Version         string   `tag:"version"`
	Doc             string   `tag:"doc"`
}

// newDef reads a def row. The name comes from the "def" tag, falling back to "name".
func newDef(rec *hval.Dict) (*Def, bool) {
	name, ok := rec.NameToken("def")
	if !ok {
		name, ok = rec.NameToken("name")
	}
	if !ok {
		return nil, false
	}
	d := &Def{name: name, rec: rec}
	attrs.Scan(rec, &d.meta)
	return d, true
}

// Name returns the def's name token.
func (d *Def) Name() string { return d.name }

// String returns the def's name.
func (d *Def) String() string { return d.name }

// Record returns the backing def record.
func (d *Def) Record() *hval.Dict { return d.rec }

// Is returns the declared direct supertype names in declared order.
func (d *Def) Is() []string {
	return append([]string(nil), d.meta.Is...)
}

// Has reports whether the def record carries the tag.
func (d *Def) Has(tag string) bool { return d.rec.Has(tag) }

// Get returns a tag of the def record.
func (d *Def) Get(tag string) (hval.Value, bool) { return d.rec.Get(tag) }

// Doc returns the def's documentation text.
func (d *Def) Doc() string { return d.meta.Doc }

// Mandatory reports whether records implementing a subtype must carry this tag.
func (d *Def) Mandatory() bool { return d.meta.Mandatory }

// Compulsory reports whether every validated record must carry this tag.
func (d *Def) Compulsory() bool { return d.meta.Compulsory }

// Transitive reports whether a relationship def is transitive.
func (d *Def) Transitive() bool { return d.meta.Transitive }

// ReciprocalOf returns the name of the reciprocal relationship, if declared.
func (d *Def) ReciprocalOf() string { return d.meta.ReciprocalOf }

// IsConjunct reports whether the def is a conjunct.
func (d *Def) IsConjunct() bool { return IsConjunct(d.name) }

// IsFeature reports whether the def is feature-namespaced.
func (d *Def) IsFeature() bool { return IsFeature(d.name) }

// Children returns the child templates declared by the def.
// Entries may be dicts or space separated tag names.
func (d *Def) Children() []*hval.Dict {
	v, ok := d.rec.Get("children")
	if !ok {
		return nil
	}
	var entries hval.List
	switch t := v.(type) {
	case hval.List:
		entries = t
	default:
		entries = hval.List{t}
	}
	children := make([]*hval.Dict, 0, len(entries))
	for _, entry := range entries {
		switch t := entry.(type) {
		case *hval.Dict:
			children = append(children, t)
		case hval.Str, hval.Symbol:
			name, _ := hval.NameToken(t)
			if tags := strings.Fields(name); len(tags) > 0 {
				children = append(children, hval.Markers(tags...))
			}
		}
	}
	return children
}

// IsConjunct reports whether name is a conjunct, i.e. contains "-".
func IsConjunct(name string) bool {
	return strings.Contains(name, "-")
}

// SplitConjunct returns the non-empty "-" delimited segments of name.
func SplitConjunct(name string) []string {
	parts := strings.Split(name, "-")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// JoinConjunct joins component names into a conjunct name.
func JoinConjunct(parts ...string) string {
	return strings.Join(parts, "-")
}

// IsFeature reports whether name is feature-namespaced, i.e. contains ":".
func IsFeature(name string) bool {
	return strings.Contains(name, ":")
}

// FeatureOf returns the prefix before the first ":", or "" if there is none.
func FeatureOf(name string) string {
	prefix, _, found := strings.Cut(name, ":")
	if !found {
		return ""
	}
	return prefix
}

// FeatureName returns the local part after the first ":", or "" if there is none.
func FeatureName(name string) string {
	_, local, found := strings.Cut(name, ":")
	if !found {
		return ""
	}
	return local
}
