package hval

import (
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Dict is an ordered map of unique tag names to values.
// A tag may be present with a Null value; Has reports it, Get returns Null.
// The zero value is not usable; use NewDict or Markers.
type Dict struct {
	tags *orderedmap.OrderedMap[string, Value]
}

// NewDict returns an empty dict.
func NewDict() *Dict {
	return &Dict{tags: orderedmap.New[string, Value]()}
}

// Markers returns a dict with a marker tag for each name, in order.
func Markers(names ...string) *Dict {
	d := NewDict()
	for _, name := range names {
		d.Set(name, M)
	}
	return d
}

// Set adds or replaces a tag. A nil value is stored as Null.
// It returns the dict so calls can be chained.
func (d *Dict) Set(name string, v Value) *Dict {
	if v == nil {
		v = Null{}
	}
	d.tags.Set(name, v)
	return d
}

// Get returns the value of a tag and whether the tag is present.
func (d *Dict) Get(name string) (Value, bool) {
	if d == nil {
		return nil, false
	}
	return d.tags.Get(name)
}

// Has reports whether the tag is present, including null-valued tags.
func (d *Dict) Has(name string) bool {
	_, ok := d.Get(name)
	return ok
}

// Missing reports whether the tag is absent or null.
func (d *Dict) Missing(name string) bool {
	v, ok := d.Get(name)
	return !ok || IsNull(v)
}

// IsMarker reports whether the tag is present with a marker value.
func (d *Dict) IsMarker(name string) bool {
	v, ok := d.Get(name)
	return ok && IsMarker(v)
}

// Delete removes a tag.
func (d *Dict) Delete(name string) {
	if d == nil {
		return
	}
	d.tags.Delete(name)
}

// Len returns the number of tags.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return d.tags.Len()
}

// Names returns the tag names in insertion order.
func (d *Dict) Names() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, d.tags.Len())
	for pair := d.tags.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Each calls fn for every tag in insertion order until fn returns false.
func (d *Dict) Each(fn func(name string, v Value) bool) {
	if d == nil {
		return
	}
	for pair := d.tags.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Str returns the text of a Str tag.
func (d *Dict) Str(name string) (string, bool) {
	v, _ := d.Get(name)
	s, ok := v.(Str)
	return string(s), ok
}

// RefVal returns the value of a Ref tag.
func (d *Dict) RefVal(name string) (Ref, bool) {
	v, _ := d.Get(name)
	r, ok := v.(Ref)
	return r, ok
}

// NameToken returns the value of a Symbol or Str tag.
func (d *Dict) NameToken(name string) (string, bool) {
	v, _ := d.Get(name)
	return NameToken(v)
}

// Clone returns a shallow copy.
func (d *Dict) Clone() *Dict {
	c := NewDict()
	d.Each(func(name string, v Value) bool {
		c.Set(name, v)
		return true
	})
	return c
}

func (*Dict) Kind() Kind { return KindDict }

func (d *Dict) String() string {
	var b strings.Builder
	b.WriteByte('{')
	i := 0
	d.Each(func(name string, v Value) bool {
		if i > 0 {
			b.WriteByte(' ')
		}
		i++
		b.WriteString(name)
		if !IsMarker(v) {
			b.WriteByte(':')
			b.WriteString(v.String())
		}
		return true
	})
	b.WriteByte('}')
	return b.String()
}

// Equal reports whether other is a dict with the same tag set and equal
// values. Tag order is not significant.
func (d *Dict) Equal(other Value) bool {
	o, ok := other.(*Dict)
	if !ok || o.Len() != d.Len() {
		return false
	}
	equal := true
	d.Each(func(name string, v Value) bool {
		ov, ok := o.Get(name)
		if !ok || !Equal(v, ov) {
			equal = false
		}
		return equal
	})
	return equal
}

// SortedNames returns the tag names in lexical order.
func (d *Dict) SortedNames() []string {
	names := d.Names()
	sort.Strings(names)
	return names
}
