package hval

import (
	"strconv"
	"strings"
)

// Value is any tagged value.
type Value interface {
	Kind() Kind
	String() string
	Equal(other Value) bool
}

// Marker is the singleton marker value.
type Marker struct{}

// M is the marker value.
var M = Marker{}

func (Marker) Kind() Kind { return KindMarker }
func (Marker) String() string { return "✓" }
func (Marker) Equal(other Value) bool {
	_, ok := other.(Marker)
	return ok
}

// Null is the null value. Tags may be present with a null value.
type Null struct{}

func (Null) Kind() Kind { return KindNull }
func (Null) String() string { return "null" }
func (Null) Equal(other Value) bool { return IsNull(other) }

// NA is the not-available value.
type NA struct{}

func (NA) Kind() Kind { return KindNA }
func (NA) String() string { return "NA" }
func (NA) Equal(other Value) bool {
	_, ok := other.(NA)
	return ok
}

// Bool is a boolean value.
type Bool bool

func (Bool) Kind() Kind { return KindBool }
func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}
func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && o == b
}

// Number is a float with an optional unit.
type Number struct {
	Val  float64
	Unit string
}

func (Number) Kind() Kind { return KindNumber }
func (n Number) String() string {
	s := strconv.FormatFloat(n.Val, 'g', -1, 64)
	if n.Unit != "" {
		s += n.Unit
	}
	return s
}
func (n Number) Equal(other Value) bool {
	o, ok := other.(Number)
	return ok && o.Val == n.Val && o.Unit == n.Unit
}

// Str is a text value.
type Str string

func (Str) Kind() Kind { return KindStr }
func (s Str) String() string { return string(s) }
func (s Str) Equal(other Value) bool {
	o, ok := other.(Str)
	return ok && o == s
}

// Uri is a URI value.
type Uri string

func (Uri) Kind() Kind { return KindUri }
func (u Uri) String() string { return "`" + string(u) + "`" }
func (u Uri) Equal(other Value) bool {
	o, ok := other.(Uri)
	return ok && o == u
}

// Ref is a reference to another record. Equality ignores the display text.
type Ref struct {
	ID  string
	Dis string
}

// NewRef returns a Ref without display text.
func NewRef(id string) Ref { return Ref{ID: strings.TrimPrefix(id, "@")} }

func (Ref) Kind() Kind { return KindRef }
func (r Ref) String() string {
	if r.Dis != "" {
		return "@" + r.ID + " " + strconv.Quote(r.Dis)
	}
	return "@" + r.ID
}
func (r Ref) Equal(other Value) bool {
	o, ok := other.(Ref)
	return ok && o.ID == r.ID
}

// Symbol is a name token, typically a def name.
type Symbol string

func (Symbol) Kind() Kind { return KindSymbol }
func (s Symbol) String() string { return "^" + string(s) }
func (s Symbol) Equal(other Value) bool {
	o, ok := other.(Symbol)
	return ok && o == s
}

// Date is an ISO 8601 date (YYYY-MM-DD).
type Date string

func (Date) Kind() Kind { return KindDate }
func (d Date) String() string { return string(d) }
func (d Date) Equal(other Value) bool {
	o, ok := other.(Date)
	return ok && o == d
}

// Time is an ISO 8601 time of day (hh:mm:ss).
type Time string

func (Time) Kind() Kind { return KindTime }
func (t Time) String() string { return string(t) }
func (t Time) Equal(other Value) bool {
	o, ok := other.(Time)
	return ok && o == t
}

// DateTime is an ISO 8601 timestamp with an optional timezone name.
type DateTime struct {
	ISO string
	TZ  string
}

func (DateTime) Kind() Kind { return KindDateTime }
func (dt DateTime) String() string {
	if dt.TZ != "" {
		return dt.ISO + " " + dt.TZ
	}
	return dt.ISO
}
func (dt DateTime) Equal(other Value) bool {
	o, ok := other.(DateTime)
	return ok && o == dt
}

// Coord is a geographic coordinate.
type Coord struct {
	Lat float64
	Lng float64
}

func (Coord) Kind() Kind { return KindCoord }
func (c Coord) String() string {
	return "C(" + strconv.FormatFloat(c.Lat, 'g', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'g', -1, 64) + ")"
}
func (c Coord) Equal(other Value) bool {
	o, ok := other.(Coord)
	return ok && o == c
}

// XStr is a typed string value.
type XStr struct {
	Type string
	Val  string
}

func (XStr) Kind() Kind { return KindXStr }
func (x XStr) String() string {
	return x.Type + "(" + strconv.Quote(x.Val) + ")"
}
func (x XStr) Equal(other Value) bool {
	o, ok := other.(XStr)
	return ok && o == x
}

// List is an ordered list of values.
type List []Value

func (List) Kind() Kind { return KindList }
func (l List) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (l List) Equal(other Value) bool {
	o, ok := other.(List)
	if !ok || len(o) != len(l) {
		return false
	}
	for i := range l {
		if !Equal(l[i], o[i]) {
			return false
		}
	}
	return true
}

// IsNull reports whether v is absent or the null value.
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}

// IsMarker reports whether v is the marker value.
func IsMarker(v Value) bool {
	_, ok := v.(Marker)
	return ok
}

// KindOf returns the kind of v, treating a nil value as null.
func KindOf(v Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.Kind()
}

// Equal compares two values, treating nil as null.
func Equal(a, b Value) bool {
	if IsNull(a) || IsNull(b) {
		return IsNull(a) && IsNull(b)
	}
	return a.Equal(b)
}

// NameToken returns the text of a name token, accepting either a Symbol or a Str.
func NameToken(v Value) (string, bool) {
	switch t := v.(type) {
	case Symbol:
		return string(t), t != ""
	case Str:
		return string(t), t != ""
	}
	return "", false
}

// NameTokens reads a single name token or a list of them. Entries that are not
// name tokens are skipped.
func NameTokens(v Value) []string {
	if name, ok := NameToken(v); ok {
		return []string{name}
	}
	list, ok := v.(List)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(list))
	for _, item := range list {
		if name, ok := NameToken(item); ok {
			names = append(names, name)
		}
	}
	return names
}
