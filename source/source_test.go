package source

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/hval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		in   string
		want hval.Value
	}{
		{"m:", hval.M},
		{"z:", hval.NA{}},
		{"s:m:", hval.Str("m:")},
		{"plain text", hval.Str("plain text")},
		{"a", hval.Str("a")},
		{"n:72.5 °F", hval.Number{Val: 72.5, Unit: "°F"}},
		{"n:10", hval.Number{Val: 10}},
		{"r:s1 Main Site", hval.Ref{ID: "s1", Dis: "Main Site"}},
		{"r:@s1", hval.Ref{ID: "s1"}},
		{"y:hot-water", hval.Symbol("hot-water")},
		{"u:http://example.com", hval.Uri("http://example.com")},
		{"d:2024-02-29", hval.Date("2024-02-29")},
		{"h:08:30:00", hval.Time("08:30:00")},
		{"t:2024-01-01T00:00:00Z UTC", hval.DateTime{ISO: "2024-01-01T00:00:00Z", TZ: "UTC"}},
		{"c:37.5,-77.4", hval.Coord{Lat: 37.5, Lng: -77.4}},
		{"x:Span:today", hval.XStr{Type: "Span", Val: "today"}},
		{"q:unknown prefix", hval.Str("q:unknown prefix")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseString(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestParseStringErrors(t *testing.T) {
	for _, in := range []string{"m:x", "n:abc", "r:", "y:", "d:2024-13-01", "t:yesterday", "c:1", "c:a,b", "x:novalue"} {
		_, err := parseString(in)
		assert.Error(t, err, in)
	}
}

func TestParseNumberSpecials(t *testing.T) {
	v, err := parseString("n:INF")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v.(hval.Number).Val, 1))

	v, err = parseString("n:NaN")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v.(hval.Number).Val))
}

func TestLoadYAML(t *testing.T) {
	g, err := LoadFile("testdata/defs.yaml")
	require.NoError(t, err)
	require.Equal(t, 7, g.Len())

	equip := g.Row(2)
	assert.Equal(t, []string{"def", "is", "mandatory"}, equip.Names(), "tag order follows the file")
	assert.True(t, equip.IsMarker("mandatory"))

	pipe := g.Row(6)
	children, ok := pipe.Get("children")
	require.True(t, ok)
	list := children.(hval.List)
	require.Len(t, list, 2)
	assert.Equal(t, []string{"temp", "sensor", "point"}, list[0].(*hval.Dict).Names())
	assert.Equal(t, hval.Str("flow sensor point"), list[1])
}

func TestLoadJSON(t *testing.T) {
	g, err := LoadFile("testdata/defs.json")
	require.NoError(t, err)
	require.Equal(t, 2, g.Len())

	capacity, _ := g.Row(0).Get("capacity")
	assert.Equal(t, hval.Number{Val: 100, Unit: "gal"}, capacity)
}

func TestLoadTOML(t *testing.T) {
	g, err := LoadFile("testdata/defs.toml")
	require.NoError(t, err)
	require.Equal(t, 2, g.Len())

	lib := g.Row(0)
	assert.Equal(t, []string{"def", "version", "doc"}, lib.Names())
	name, _ := lib.NameToken("def")
	assert.Equal(t, "lib:demo", name)
	assert.True(t, g.Row(1).IsMarker("mandatory"))
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte("defs: 3"), FormatYAML)
	assert.Error(t, err)

	_, err = Decode([]byte("- 1\n- 2"), FormatYAML)
	assert.Error(t, err)

	_, err = Decode([]byte("- def: \"n:oops\""), FormatYAML)
	assert.Error(t, err)

	_, err = Decode([]byte("x"), Format("xml"))
	assert.True(t, errors.IsInvalidArgumentError(err))

	g, err := Decode(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())

	g, err = Decode([]byte("title = 'no defs'"), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]Format{
		"a.yaml": FormatYAML,
		"a.YML":  FormatYAML,
		"a.json": FormatJSON,
		"a.toml": FormatTOML,
	} {
		got, err := FormatOf(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := FormatOf("a.trio")
	assert.True(t, errors.IsInvalidArgumentError(err))
}

func TestExpandDirectory(t *testing.T) {
	files, err := Expand("testdata/dir", "testdata/defs.json")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("testdata", "dir", "a.yaml"),
		filepath.Join("testdata", "dir", "b.toml"),
		"testdata/defs.json",
	}, files)

	_, err = Expand("testdata/missing")
	assert.Error(t, err)
}

func TestBuildMergesAndOverrides(t *testing.T) {
	base, err := LoadFile("testdata/defs.yaml")
	require.NoError(t, err)

	ns, err := Build(base, []string{"testdata/defs.json", "testdata/defs.toml"})
	require.NoError(t, err)

	ahu, ok := ns.ByName("ahu")
	require.True(t, ok)
	assert.Equal(t, "Overridden air handler", ahu.Doc())
	assert.True(t, ns.Fits("boiler", "equip"))
	assert.True(t, ns.Fits("tank", "entity"))

	v, err := ns.LibVersion("demo")
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", v.String())

	require.NoError(t, ns.Validate("tank", hval.Markers("tank", "equip")))
	assert.Len(t, ns.Protos(hval.Markers("pipe", "equip")), 2)
}

func TestBuildError(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("- def: [unclosed"), 0o644))

	_, err := Build(nil, []string{bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}
