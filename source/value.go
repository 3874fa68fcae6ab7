package source

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/hval"
)

// parseString decodes a string scalar. Strings with a one letter type prefix
// ("m:", "n:", "r:", ...) follow the Haystack JSON encoding; anything else is
// a plain Str.
func parseString(s string) (hval.Value, error) {
	if len(s) < 2 || s[1] != ':' {
		return hval.Str(s), nil
	}
	body := s[2:]
	switch s[0] {
	case 'm':
		if body != "" {
			return nil, errors.Newf("marker with payload %q", s)
		}
		return hval.M, nil
	case 'z':
		return hval.NA{}, nil
	case 's':
		return hval.Str(body), nil
	case 'n':
		return parseNumber(body)
	case 'r':
		id, dis, _ := strings.Cut(body, " ")
		if id == "" {
			return nil, errors.Newf("empty ref %q", s)
		}
		return hval.Ref{ID: strings.TrimPrefix(id, "@"), Dis: dis}, nil
	case 'y':
		if body == "" {
			return nil, errors.Newf("empty symbol %q", s)
		}
		return hval.Symbol(body), nil
	case 'u':
		return hval.Uri(body), nil
	case 'd':
		if _, err := time.Parse(time.DateOnly, body); err != nil {
			return nil, errors.Wrapf(err, "date %q", body)
		}
		return hval.Date(body), nil
	case 'h':
		return hval.Time(body), nil
	case 't':
		iso, tz, _ := strings.Cut(body, " ")
		if _, err := time.Parse(time.RFC3339Nano, iso); err != nil {
			return nil, errors.Wrapf(err, "dateTime %q", body)
		}
		return hval.DateTime{ISO: iso, TZ: tz}, nil
	case 'c':
		return parseCoord(body)
	case 'x':
		typ, val, ok := strings.Cut(body, ":")
		if !ok || typ == "" {
			return nil, errors.Newf("xstr without type %q", s)
		}
		return hval.XStr{Type: typ, Val: val}, nil
	}
	return hval.Str(s), nil
}

func parseNumber(body string) (hval.Value, error) {
	num, unit, _ := strings.Cut(body, " ")
	var f float64
	switch num {
	case "INF":
		f = math.Inf(1)
	case "-INF":
		f = math.Inf(-1)
	case "NaN":
		f = math.NaN()
	default:
		var err error
		if f, err = strconv.ParseFloat(num, 64); err != nil {
			return nil, errors.Wrapf(err, "number %q", body)
		}
	}
	return hval.Number{Val: f, Unit: unit}, nil
}

func parseCoord(body string) (hval.Value, error) {
	latStr, lngStr, ok := strings.Cut(body, ",")
	if !ok {
		return nil, errors.Newf("coord %q: want lat,lng", body)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "coord %q", body)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "coord %q", body)
	}
	return hval.Coord{Lat: lat, Lng: lng}, nil
}

// fromNative converts a decoded scalar or container into a value. keyOrder
// orders the keys of decoded maps; nil sorts them.
func fromNative(v any, keyOrder func(path []string, m map[string]any) []string, path []string) (hval.Value, error) {
	switch t := v.(type) {
	case nil:
		return hval.Null{}, nil
	case string:
		return parseString(t)
	case bool:
		return hval.Bool(t), nil
	case int:
		return hval.Number{Val: float64(t)}, nil
	case int64:
		return hval.Number{Val: float64(t)}, nil
	case uint64:
		return hval.Number{Val: float64(t)}, nil
	case float64:
		return hval.Number{Val: t}, nil
	case time.Time:
		return hval.DateTime{ISO: t.Format(time.RFC3339Nano)}, nil
	case []any:
		list := make(hval.List, 0, len(t))
		for i, item := range t {
			val, err := fromNative(item, keyOrder, path)
			if err != nil {
				return nil, errors.Wrapf(err, "[%d]", i)
			}
			list = append(list, val)
		}
		return list, nil
	case []map[string]any:
		list := make(hval.List, 0, len(t))
		for i, item := range t {
			val, err := fromNative(item, keyOrder, path)
			if err != nil {
				return nil, errors.Wrapf(err, "[%d]", i)
			}
			list = append(list, val)
		}
		return list, nil
	case map[string]any:
		keys := sortedKeys(t)
		if keyOrder != nil {
			keys = keyOrder(path, t)
		}
		d := hval.NewDict()
		for _, key := range keys {
			val, err := fromNative(t[key], keyOrder, childPath(path, key))
			if err != nil {
				return nil, errors.Wrapf(err, "%s", key)
			}
			d.Set(key, val)
		}
		return d, nil
	}
	return nil, errors.Newf("unsupported value %T", v)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func childPath(path []string, key string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = key
	return out
}
