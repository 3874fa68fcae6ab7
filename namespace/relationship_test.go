package namespace

import (
	"testing"

	"github.com/j2inn/haystack-core-sub001/hval"
	"github.com/stretchr/testify/assert"
)

// records is an in-memory resolver.
type records map[string]*hval.Dict

func (rs records) resolve(ref hval.Ref) (*hval.Dict, bool) {
	rec, ok := rs[ref.ID]
	return rec, ok
}

func (rs records) add(rec *hval.Dict) records {
	if ref, ok := rec.RefVal("id"); ok {
		rs[ref.ID] = rec
	}
	return rs
}

func TestHasRelationshipDirect(t *testing.T) {
	ns := fixture()
	ahu := hval.Markers("ahu", "equip").
		Set("id", hval.NewRef("ahu1")).
		Set("hotWaterRef", hval.NewRef("hwp"))

	tests := []struct {
		name string
		q    RelationshipQuery
		want bool
	}{
		{"any target", RelationshipQuery{Subject: ahu, RelName: "inputs"}, true},
		{"other target", RelationshipQuery{Subject: ahu, RelName: "inputs", TargetRef: hval.NewRef("other")}, false},
		{"matching target", RelationshipQuery{Subject: ahu, RelName: "inputs", TargetRef: hval.NewRef("@hwp")}, true},
		{"term fits", RelationshipQuery{Subject: ahu, RelName: "inputs", RelTerm: "water"}, true},
		{"term exact", RelationshipQuery{Subject: ahu, RelName: "inputs", RelTerm: "hot-water"}, true},
		{"term mismatch", RelationshipQuery{Subject: ahu, RelName: "inputs", RelTerm: "steam"}, false},
		{"unknown term", RelationshipQuery{Subject: ahu, RelName: "inputs", RelTerm: "lava"}, false},
		{"not participating", RelationshipQuery{Subject: ahu, RelName: "outputs"}, false},
		{"unknown relationship", RelationshipQuery{Subject: ahu, RelName: "feeds"}, false},
		{"no subject", RelationshipQuery{RelName: "inputs"}, false},
		{"no rel name", RelationshipQuery{Subject: ahu}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ns.HasRelationship(tt.q))
		})
	}
}

func TestHasRelationshipIgnoresNonRefValues(t *testing.T) {
	ns := fixture()
	ahu := hval.Markers("ahu", "equip").Set("hotWaterRef", hval.Str("hwp"))

	assert.False(t, ns.HasRelationship(RelationshipQuery{Subject: ahu, RelName: "inputs"}))
}

func TestHasRelationshipReciprocal(t *testing.T) {
	ns := fixture()
	ahu := hval.Markers("ahu", "equip").
		Set("id", hval.NewRef("ahu1")).
		Set("hotWaterRef", hval.NewRef("hwp"))
	db := records{}.
		add(hval.Markers("equip").Set("id", hval.NewRef("plant2")).Set("hotWaterOutRef", hval.NewRef("ahu1"))).
		add(hval.Markers("equip").Set("id", hval.NewRef("plant3")).Set("hotWaterOutRef", hval.NewRef("elsewhere")))

	q := RelationshipQuery{Subject: ahu, RelName: "inputs", TargetRef: hval.NewRef("plant2")}
	assert.False(t, ns.HasRelationship(q), "reciprocal needs a resolver")

	q.Resolve = db.resolve
	assert.True(t, ns.HasRelationship(q))

	q.TargetRef = hval.NewRef("plant3")
	assert.False(t, ns.HasRelationship(q))

	q.TargetRef = hval.NewRef("missing")
	assert.False(t, ns.HasRelationship(q))

	q.TargetRef = hval.NewRef("plant2")
	q.Subject = hval.Markers("ahu").Set("hotWaterRef", hval.NewRef("hwp"))
	assert.False(t, ns.HasRelationship(q), "subject without id cannot be pointed back at")
}

func TestHasRelationshipTransitive(t *testing.T) {
	ns := fixture()
	point := hval.Markers("point").
		Set("id", hval.NewRef("p1")).
		Set("equipRef", hval.NewRef("e1"))
	db := records{}.
		add(hval.Markers("equip").Set("id", hval.NewRef("e1")).Set("siteRef", hval.NewRef("s1"))).
		add(hval.Markers("site").Set("id", hval.NewRef("s1")))

	q := RelationshipQuery{Subject: point, RelName: "containedBy", TargetRef: hval.NewRef("s1")}
	assert.False(t, ns.HasRelationship(q), "transitive walk needs a resolver")

	q.Resolve = db.resolve
	assert.True(t, ns.HasRelationship(q))

	q.TargetRef = hval.NewRef("e1")
	assert.True(t, ns.HasRelationship(q), "direct link")

	q.TargetRef = hval.NewRef("s2")
	assert.False(t, ns.HasRelationship(q))

	q.TargetRef = hval.NewRef("s1")
	q.RelTerm = "site"
	assert.False(t, ns.HasRelationship(q), "equipRef does not qualify for the site term")
}

func TestHasRelationshipTransitiveCycles(t *testing.T) {
	ns := fixture()
	point := hval.Markers("point").
		Set("id", hval.NewRef("p1")).
		Set("equipRef", hval.NewRef("e1"))
	db := records{}.
		add(hval.Markers("equip").Set("id", hval.NewRef("e1")).Set("equipRef", hval.NewRef("e2"))).
		add(hval.Markers("equip").Set("id", hval.NewRef("e2")).Set("equipRef", hval.NewRef("e1")).Set("siteRef", hval.NewRef("p1")))

	q := RelationshipQuery{Subject: point, RelName: "containedBy", TargetRef: hval.NewRef("s1"), Resolve: db.resolve}
	assert.False(t, ns.HasRelationship(q))

	q.TargetRef = hval.NewRef("p1")
	assert.False(t, ns.HasRelationship(q), "self reference yields false")

	self := hval.Markers("equip").Set("id", hval.NewRef("loop")).Set("siteRef", hval.NewRef("loop"))
	db.add(self)
	q = RelationshipQuery{Subject: self, RelName: "containedBy", TargetRef: hval.NewRef("s1"), Resolve: db.resolve}
	assert.False(t, ns.HasRelationship(q))
}

func TestHasRelationshipDepthBound(t *testing.T) {
	point := hval.Markers("point").
		Set("id", hval.NewRef("p1")).
		Set("equipRef", hval.NewRef("e1"))
	db := records{}.
		add(hval.Markers("equip").Set("id", hval.NewRef("e1")).Set("equipRef", hval.NewRef("e2"))).
		add(hval.Markers("equip").Set("id", hval.NewRef("e2")).Set("siteRef", hval.NewRef("s1")))
	q := RelationshipQuery{Subject: point, RelName: "containedBy", TargetRef: hval.NewRef("s1"), Resolve: db.resolve}

	assert.True(t, fixture().HasRelationship(q))
	assert.False(t, fixture(WithMaxRelationshipDepth(1)).HasRelationship(q))
	assert.True(t, fixture(WithMaxRelationshipDepth(2)).HasRelationship(q))
}
