package source

import (
	"strconv"
	"strings"

	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/hval"
	"github.com/kballard/go-shellquote"
)

// ParseTags parses a command line tag expression into a record.
//
//	ahu equip siteRef=@s1 dis="Main AHU" area=100 unit=^kW
//
// A bare name is a marker. Values starting with @ are refs, ^ symbols;
// true and false are bools; plain numbers are numbers; an empty value is
// null. A one letter prefix such as "n:72 °F" uses the def file encoding.
// Everything else is a string.
func ParseTags(expr string) (*hval.Dict, error) {
	args, err := shellquote.Split(expr)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidArgument, "tag expression %q: %v", expr, err)
	}
	return ParseTagArgs(args)
}

// ParseTagArgs parses already split tag tokens, for example cobra args.
func ParseTagArgs(args []string) (*hval.Dict, error) {
	rec := hval.NewDict()
	for _, arg := range args {
		name, raw, hasValue := strings.Cut(arg, "=")
		if name == "" {
			return nil, errors.Wrapf(errors.ErrInvalidArgument, "tag without name %q", arg)
		}
		if !hasValue {
			rec.Set(name, hval.M)
			continue
		}
		v, err := parseTagValue(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "tag %s", name)
		}
		rec.Set(name, v)
	}
	return rec, nil
}

func parseTagValue(raw string) (hval.Value, error) {
	switch {
	case raw == "":
		return hval.Null{}, nil
	case raw == "true":
		return hval.Bool(true), nil
	case raw == "false":
		return hval.Bool(false), nil
	case strings.HasPrefix(raw, "@") && len(raw) > 1:
		return hval.NewRef(raw), nil
	case strings.HasPrefix(raw, "^") && len(raw) > 1:
		return hval.Symbol(raw[1:]), nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return hval.Number{Val: f}, nil
	}
	return parseString(raw)
}
