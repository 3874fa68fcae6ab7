package namespace

import (
	"github.com/j2inn/haystack-core-sub001/hval"
)

// row builds a def record with the given supertypes.
func row(name string, is ...string) *hval.Dict {
	d := hval.NewDict().Set("def", hval.Symbol(name))
	if len(is) > 0 {
		list := make(hval.List, len(is))
		for i, s := range is {
			list[i] = hval.Symbol(s)
		}
		d.Set("is", list)
	}
	return d
}

func symbols(names ...string) hval.List {
	list := make(hval.List, len(names))
	for i, n := range names {
		list[i] = hval.Symbol(n)
	}
	return list
}

// fixtureRows is a small ontology exercising every part of the engine.
func fixtureRows() []*hval.Dict {
	return []*hval.Dict{
		row("marker"),
		row("val"),
		row("entity", "marker"),
		row("ref", "val"),
		row("str", "val"),
		row("number", "val"),
		row("dict", "val"),
		row("relationship", "marker"),
		row("choice", "marker"),
		row("id", "ref"),
		row("dis", "str"),
		row("curVal", "val"),
		row("equip", "entity").Set("mandatory", hval.M),
		row("point", "entity").Set("mandatory", hval.M),
		row("site", "entity").Set("mandatory", hval.M),
		row("ahu", "equip"),
		row("tank", "equip"),
		row("sensor", "marker"),
		row("temp", "marker"),
		row("pressure", "marker"),
		row("flow", "marker"),
		row("leaving", "marker"),
		row("entering", "marker"),
		row("phenomenon", "marker"),
		row("substance", "phenomenon"),
		row("fluid", "substance"),
		row("liquid", "fluid"),
		row("water", "liquid"),
		row("hot", "marker"),
		row("steam", "fluid"),
		row("hot-water", "water"),
		row("pipe", "equip").
			Set("childrenFlatten", symbols("fluid", "leaving", "entering")).
			Set("children", hval.List{
				hval.Markers("temp", "sensor", "point"),
				hval.Markers("flow", "sensor", "point"),
				hval.Str("temp sensor point"),
			}),
		row("inputs", "relationship").Set("reciprocalOf", hval.Symbol("outputs")),
		row("outputs", "relationship").Set("reciprocalOf", hval.Symbol("inputs")),
		row("containedBy", "relationship").Set("transitive", hval.M),
		row("siteRef", "ref").
			Set("tagOn", symbols("equip", "point")).
			Set("containedBy", hval.Symbol("site")),
		row("equipRef", "ref").
			Set("tagOn", symbols("point")).
			Set("containedBy", hval.Symbol("equip")),
		row("hotWaterRef", "ref").
			Set("tagOn", symbols("equip")).
			Set("inputs", hval.Symbol("hot-water")),
		row("hotWaterOutRef", "ref").
			Set("outputs", hval.Symbol("hot-water")),
		row("ductSection", "marker", "choice"),
		row("discharge", "marker").Set("choice", hval.Symbol("ductSection")),
		row("return", "marker").Set("choice", hval.Symbol("ductSection")),
		row("unit", "str").Set("enum", hval.Str("kW\nW, BTU/h")),
		row("lib:phIoT").Set("version", hval.Str("3.9.12")),
		row("lib:ph").Set("version", hval.Str("3.9.12")),
	}
}

func fixture(opts ...Option) *Namespace {
	return New(hval.NewGrid(fixtureRows()...), opts...)
}

func names(defs []*Def) []string {
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.Name()
	}
	return out
}
