// Package hval is the minimal tagged-value layer the def engine reads:
// scalar kinds, ordered dicts, lists and grids.
//
// Encodings (zinc, trio, JSON) live outside this package; see package source
// for the def-file decoder.
package hval

// Kind identifies the runtime kind of a Value.
type Kind int

const (
	KindNone Kind = iota // no kind; used by defs that accept any value
	KindNull
	KindMarker
	KindNA
	KindBool
	KindNumber
	KindStr
	KindUri
	KindRef
	KindSymbol
	KindDate
	KindTime
	KindDateTime
	KindCoord
	KindXStr
	KindList
	KindDict
	KindGrid
)

var kindNames = [...]string{
	KindNone:     "none",
	KindNull:     "null",
	KindMarker:   "marker",
	KindNA:       "na",
	KindBool:     "bool",
	KindNumber:   "number",
	KindStr:      "str",
	KindUri:      "uri",
	KindRef:      "ref",
	KindSymbol:   "symbol",
	KindDate:     "date",
	KindTime:     "time",
	KindDateTime: "dateTime",
	KindCoord:    "coord",
	KindXStr:     "xstr",
	KindList:     "list",
	KindDict:     "dict",
	KindGrid:     "grid",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "none"
	}
	return kindNames[k]
}
