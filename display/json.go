// Package display renders command results as pterm tables or JSON.
package display

import (
	"encoding/json"
	"io"

	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/hval"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// MarshalJSON marshals v with two space indentation.
func MarshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// JSON writes v to w as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// Record converts a record to an ordered map of display strings so JSON
// output keeps tag order.
func Record(d *hval.Dict) *orderedmap.OrderedMap[string, string] {
	m := orderedmap.New[string, string]()
	d.Each(func(name string, v hval.Value) bool {
		m.Set(name, v.String())
		return true
	})
	return m
}
