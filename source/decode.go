package source

import (
	"bytes"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/hval"
	"gopkg.in/yaml.v3"
)

// Format identifies a def file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// rowsKey holds the def rows when a file's top level is a table.
const rowsKey = "defs"

// Decode parses def rows from data.
//
// YAML and JSON files hold either a sequence of records or a mapping with a
// "defs" sequence. TOML files hold a [[defs]] array of tables. Tag order is
// preserved as written.
func Decode(data []byte, format Format) (*hval.Grid, error) {
	switch format {
	case FormatYAML, FormatJSON:
		return decodeYAML(data)
	case FormatTOML:
		return decodeTOML(data)
	}
	return nil, errors.Wrapf(errors.ErrInvalidArgument, "unknown format %q", format)
}

func decodeYAML(data []byte) (*hval.Grid, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse yaml")
	}
	g := hval.NewGrid()
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return g, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.MappingNode {
		rows := mappingValue(root, rowsKey)
		if rows == nil {
			return nil, errors.Newf("line %d: expected a %q sequence", root.Line, rowsKey)
		}
		root = rows
	}
	if root.Kind != yaml.SequenceNode {
		return nil, errors.Newf("line %d: expected a sequence of records", root.Line)
	}

	for i, item := range root.Content {
		v, err := fromNode(item)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		rec, ok := v.(*hval.Dict)
		if !ok {
			return nil, errors.Newf("row %d (line %d): expected a record, got %s", i, item.Line, v.Kind())
		}
		g.Add(rec)
	}
	return g, nil
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// fromNode converts a yaml node, keeping mapping keys in document order.
func fromNode(n *yaml.Node) (hval.Value, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return fromNode(n.Alias)

	case yaml.MappingNode:
		d := hval.NewDict()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, errors.Wrapf(err, "%s", key)
			}
			d.Set(key, v)
		}
		return d, nil

	case yaml.SequenceNode:
		list := make(hval.List, 0, len(n.Content))
		for i, item := range n.Content {
			v, err := fromNode(item)
			if err != nil {
				return nil, errors.Wrapf(err, "[%d]", i)
			}
			list = append(list, v)
		}
		return list, nil

	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!str":
			v, err := parseString(n.Value)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", n.Line)
			}
			return v, nil
		case "!!null":
			return hval.Null{}, nil
		}
		var native any
		if err := n.Decode(&native); err != nil {
			return nil, errors.Wrapf(err, "line %d", n.Line)
		}
		return fromNative(native, nil, nil)
	}
	return nil, errors.Newf("line %d: unsupported yaml node", n.Line)
}

func decodeTOML(data []byte) (*hval.Grid, error) {
	var doc map[string]any
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse toml")
	}

	g := hval.NewGrid()
	raw, ok := doc[rowsKey]
	if !ok {
		return g, nil
	}
	rows, ok := raw.([]map[string]any)
	if !ok {
		return nil, errors.Newf("expected [[%s]] tables, got %T", rowsKey, raw)
	}

	order := tomlKeyOrder(md)
	for i, row := range rows {
		v, err := fromNative(row, order, []string{rowsKey})
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		g.Add(v.(*hval.Dict))
	}
	return g, nil
}

// tomlKeyOrder orders map keys by their first appearance in the document.
// Keys the metadata does not list (inline tables) follow in sorted order.
func tomlKeyOrder(md toml.MetaData) func([]string, map[string]any) []string {
	position := make(map[string]int)
	for i, key := range md.Keys() {
		path := strings.Join(key, ".")
		if _, ok := position[path]; !ok {
			position[path] = i
		}
	}
	return func(path []string, m map[string]any) []string {
		prefix := strings.Join(path, ".") + "."
		keys := sortedKeys(m)
		known := make([]string, 0, len(keys))
		var unknown []string
		for _, k := range keys {
			if _, ok := position[prefix+k]; ok {
				known = append(known, k)
			} else {
				unknown = append(unknown, k)
			}
		}
		sort.SliceStable(known, func(i, j int) bool {
			return position[prefix+known[i]] < position[prefix+known[j]]
		})
		return append(known, unknown...)
	}
}
