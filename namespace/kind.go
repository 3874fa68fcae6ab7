package namespace

import "github.com/j2inn/haystack-core-sub001/hval"

// baseKinds maps the baseline kind defs to value kinds. The marker def is
// deliberately absent: marker tags carry no value to check.
var baseKinds = map[string]hval.Kind{
	"dict":     hval.KindDict,
	"grid":     hval.KindGrid,
	"table":    hval.KindGrid,
	"list":     hval.KindList,
	"bool":     hval.KindBool,
	"coord":    hval.KindCoord,
	"date":     hval.KindDate,
	"dateTime": hval.KindDateTime,
	"na":       hval.KindNA,
	"number":   hval.KindNumber,
	"ref":      hval.KindRef,
	"str":      hval.KindStr,
	"symbol":   hval.KindSymbol,
	"time":     hval.KindTime,
	"uri":      hval.KindUri,
	"xstr":     hval.KindXStr,
}

// DefToKind returns the value kind of the first baseline kind def in the
// inheritance of name, or KindNone when no ancestor is a kind def.
func (ns *Namespace) DefToKind(name string) hval.Kind {
	for _, def := range ns.Inheritance(name) {
		if kind, ok := baseKinds[def.name]; ok {
			return kind
		}
	}
	return hval.KindNone
}
