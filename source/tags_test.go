package source

import (
	"testing"

	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/hval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	rec, err := ParseTags(`ahu equip siteRef=@s1 dis="Main AHU" area=100 unit=^kW enabled=false temp="n:72 °F" curVal=`)
	require.NoError(t, err)

	assert.Equal(t, []string{"ahu", "equip", "siteRef", "dis", "area", "unit", "enabled", "temp", "curVal"}, rec.Names())
	assert.True(t, rec.IsMarker("ahu"))
	assert.True(t, rec.IsMarker("equip"))

	ref, ok := rec.RefVal("siteRef")
	require.True(t, ok)
	assert.Equal(t, "s1", ref.ID)

	dis, ok := rec.Str("dis")
	require.True(t, ok)
	assert.Equal(t, "Main AHU", dis)

	area, _ := rec.Get("area")
	assert.Equal(t, hval.Number{Val: 100}, area)

	unit, _ := rec.Get("unit")
	assert.Equal(t, hval.Symbol("kW"), unit)

	enabled, _ := rec.Get("enabled")
	assert.Equal(t, hval.Bool(false), enabled)

	temp, _ := rec.Get("temp")
	assert.Equal(t, hval.Number{Val: 72, Unit: "°F"}, temp)

	curVal, _ := rec.Get("curVal")
	assert.True(t, hval.IsNull(curVal))
}

func TestParseTagsErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"unterminated quote", `dis="Main`},
		{"missing name", `=5`},
		{"bad prefixed value", `d=d:yesterday`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTags(tt.expr)
			assert.Error(t, err)
		})
	}

	_, err := ParseTags(`dis="Main`)
	assert.True(t, errors.IsInvalidArgumentError(err))
}

func TestParseTagArgsEmpty(t *testing.T) {
	rec, err := ParseTagArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Len())
}
