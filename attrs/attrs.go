// Package attrs provides typed access to def records.
//
// Def records are tag dicts (*hval.Dict). This package bridges between the
// schemaless dict and typed Go structs using struct tags.
//
// Usage:
//
//	type relAttrs struct {
//	    Transitive   bool   `tag:"transitive"`
//	    ReciprocalOf string `tag:"reciprocalOf"`
//	    Is           []string `tag:"is"`
//	}
//
//	// Read: dict → struct
//	var r relAttrs
//	attrs.Scan(def.Record(), &r)
//
//	// Write: struct → dict
//	rec := attrs.From(r)
package attrs

import (
	"reflect"
	"strings"

	"github.com/j2inn/haystack-core-sub001/hval"
)

var (
	valueType    = reflect.TypeOf((*hval.Value)(nil)).Elem()
	dictPtrType  = reflect.TypeOf((*hval.Dict)(nil))
	listType     = reflect.TypeOf(hval.List(nil))
	stringsType  = reflect.TypeOf([]string(nil))
	dictListType = reflect.TypeOf([]*hval.Dict(nil))
)

// Scan reads tags from a dict into a struct using `tag` struct tags.
// Fields without a matching tag, or whose tag holds null, are left at their zero value.
//
// Conversions:
//   - bool: true when the tag is present, unless it holds Bool(false)
//   - string: Str or Symbol text, Ref id
//   - []string: a name token or a list of name tokens
//   - int, float64: Number value
//   - hval.Value, *hval.Dict, hval.List, []*hval.Dict: the raw value when the kind matches
func Scan(d *hval.Dict, dst any) {
	if d == nil {
		return
	}

	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		key := tagKey(field)
		if key == "" {
			continue
		}

		val, ok := d.Get(key)
		if !ok || hval.IsNull(val) {
			continue
		}

		setField(v.Field(i), val)
	}
}

// From converts a struct into a dict using `tag` struct tags.
// True bools become markers, false bools are omitted. Fields tagged with
// "omitempty" are skipped when at their zero value.
func From(src any) *hval.Dict {
	v := reflect.ValueOf(src)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	d := hval.NewDict()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("tag")
		if tag == "" || tag == "-" {
			continue
		}

		key, omitempty := parseTag(tag)
		fv := v.Field(i)

		if omitempty && fv.IsZero() {
			continue
		}

		if val, ok := toValue(fv); ok {
			d.Set(key, val)
		}
	}

	return d
}

func tagKey(f reflect.StructField) string {
	tag := f.Tag.Get("tag")
	if tag == "" || tag == "-" {
		return ""
	}
	key, _ := parseTag(tag)
	return key
}

func parseTag(tag string) (key string, omitempty bool) {
	parts := strings.SplitN(tag, ",", 2)
	key = parts[0]
	if len(parts) > 1 && parts[1] == "omitempty" {
		omitempty = true
	}
	return
}

func setField(fv reflect.Value, val hval.Value) {
	switch fv.Type() {
	case valueType:
		fv.Set(reflect.ValueOf(&val).Elem())
		return
	case dictPtrType:
		if d, ok := val.(*hval.Dict); ok {
			fv.Set(reflect.ValueOf(d))
		}
		return
	case listType:
		if l, ok := val.(hval.List); ok {
			fv.Set(reflect.ValueOf(l))
		}
		return
	case stringsType:
		if names := hval.NameTokens(val); len(names) > 0 {
			fv.Set(reflect.ValueOf(names))
		}
		return
	case dictListType:
		if l, ok := val.(hval.List); ok {
			dicts := make([]*hval.Dict, 0, len(l))
			for _, item := range l {
				if d, ok := item.(*hval.Dict); ok {
					dicts = append(dicts, d)
				}
			}
			fv.Set(reflect.ValueOf(dicts))
		}
		return
	}

	switch fv.Kind() {
	case reflect.String:
		switch s := val.(type) {
		case hval.Str:
			fv.SetString(string(s))
		case hval.Symbol:
			fv.SetString(string(s))
		case hval.Ref:
			fv.SetString(s.ID)
		}

	case reflect.Int, reflect.Int64:
		if n, ok := val.(hval.Number); ok {
			fv.SetInt(int64(n.Val))
		}

	case reflect.Float64:
		if n, ok := val.(hval.Number); ok {
			fv.SetFloat(n.Val)
		}

	case reflect.Bool:
		b, isBool := val.(hval.Bool)
		fv.SetBool(!isBool || bool(b))
	}
}

func toValue(fv reflect.Value) (hval.Value, bool) {
	switch fv.Type() {
	case valueType, dictPtrType, listType:
		if fv.IsNil() {
			return nil, false
		}
		return fv.Interface().(hval.Value), true
	case stringsType:
		names := fv.Interface().([]string)
		list := make(hval.List, len(names))
		for i, name := range names {
			list[i] = hval.Symbol(name)
		}
		return list, true
	case dictListType:
		dicts := fv.Interface().([]*hval.Dict)
		list := make(hval.List, len(dicts))
		for i, d := range dicts {
			list[i] = d
		}
		return list, true
	}

	switch fv.Kind() {
	case reflect.String:
		return hval.Str(fv.String()), true
	case reflect.Int, reflect.Int64:
		return hval.Number{Val: float64(fv.Int())}, true
	case reflect.Float64:
		return hval.Number{Val: fv.Float()}, true
	case reflect.Bool:
		if fv.Bool() {
			return hval.M, true
		}
	}
	return nil, false
}
