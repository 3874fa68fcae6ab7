package ontology

import (
	"testing"

	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/hval"
	"github.com/j2inn/haystack-core-sub001/namespace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledDefsLoad(t *testing.T) {
	ns := Namespace()
	require.NotNil(t, ns)
	assert.Greater(t, ns.Len(), 50)
	assert.Same(t, ns, Namespace())
	assert.Equal(t, Grid().Len(), ns.Len(), "bundled defs have no duplicates")
}

func TestEveryReferenceResolves(t *testing.T) {
	ns := Namespace()

	for _, def := range ns.AllDefs() {
		for _, super := range def.Is() {
			assert.True(t, ns.Has(super), "%s: unknown supertype %s", def.Name(), super)
		}
		if def.IsConjunct() {
			_, err := ns.ConjunctDefs(def.Name())
			assert.NoError(t, err, def.Name())
		}
	}
}

func TestReflectHotWater(t *testing.T) {
	r := Namespace().Reflect(hval.Markers("hot", "water"))

	for _, name := range []string{"hot", "water", "liquid", "fluid", "hot-water"} {
		assert.True(t, r.Fits(name), name)
	}
	assert.False(t, r.Fits("chilled-water"))
}

func TestValidateAhu(t *testing.T) {
	ns := Namespace()

	rec := hval.Markers("ahu", "equip").
		Set("id", hval.NewRef("ahu1")).
		Set("dis", hval.Str("AHU-1")).
		Set("siteRef", hval.NewRef("s1"))
	require.NoError(t, ns.Validate("ahu", rec))
	require.NoError(t, ns.ValidateAll(rec))

	rec.Delete("equip")
	err := ns.Validate("ahu", rec)
	require.Error(t, err)
	var missing *namespace.MissingTagError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "equip", missing.Tag)
}

func TestDefToKind(t *testing.T) {
	ns := Namespace()

	assert.Equal(t, hval.KindRef, ns.DefToKind("siteRef"))
	assert.Equal(t, hval.KindNone, ns.DefToKind("curVal"))
	assert.Equal(t, hval.KindCoord, ns.DefToKind("geoCoord"))
	assert.Equal(t, hval.KindNA, ns.DefToKind("na"))
}

func TestHotWaterRelationship(t *testing.T) {
	ns := Namespace()
	ahu := hval.Markers("ahu", "equip").Set("hotWaterRef", hval.NewRef("hwp"))

	assert.True(t, ns.HasRelationship(namespace.RelationshipQuery{Subject: ahu, RelName: "inputs"}))
	assert.True(t, ns.HasRelationship(namespace.RelationshipQuery{Subject: ahu, RelName: "inputs", RelTerm: "water"}))
	assert.False(t, ns.HasRelationship(namespace.RelationshipQuery{
		Subject: ahu, RelName: "inputs", TargetRef: hval.NewRef("other"),
	}))
}

func TestPipeProtos(t *testing.T) {
	ns := Namespace()

	protos := ns.Protos(hval.Markers("pipe", "equip"))
	require.Len(t, protos, 3)
	for i, p := range protos {
		assert.True(t, p.IsMarker("point"))
		for _, q := range protos[i+1:] {
			assert.False(t, p.Equal(q))
		}
	}

	protos = ns.Protos(hval.Markers("pipe", "equip", "chilled", "water", "leaving"))
	require.NotEmpty(t, protos)
	assert.True(t, protos[0].Equal(hval.Markers("chilled", "water", "leaving", "temp", "sensor", "point")))
}

func TestLibs(t *testing.T) {
	ns := Namespace()

	assert.Len(t, ns.Libs(), 2)
	assert.NoError(t, ns.RequireLib("phIoT", "^3.9"))
}

func TestType(t *testing.T) {
	typ, ok := Namespace().Reflect(hval.Markers("rtu", "equip")).Type()
	require.True(t, ok)
	assert.Equal(t, "rtu", typ.Name())
}
