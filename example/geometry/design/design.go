// Package design declares the builders of the geometry example with the Go
// DSL. design.yaml declares the same modules for the goa-builder command.
package design

import (
	. "goa.design/goa-builder/dsl"
)

const geo = "goa.design/goa-builder/example/geometry"

// Design declares the geometry module.
func Design() {
	Module("geometry", func() {
		Package("goa.design/goa-builder/example/geometry/gen/builders")
		Goal("Point", func() {
			Constructor(Named(geo, "Point"))
			Param("x", Int, func() { FieldRead("X") })
			Param("y", Int, func() { FieldRead("Y") })
			Pooled()
		})
		Goal("Polygon", func() {
			Constructor(PointerTo(Named(geo, "Polygon")))
			Param("name", String, func() { FieldRead("Name") })
			Param("vertices", SliceOf(PointerTo(Named(geo, "Point"))), func() {
				Reject()
				FieldRead("Vertices")
				Collection(func() { Singular("vertex") })
			})
		})
		Goal("Pair", func() {
			TypeVar("K", Comparable)
			TypeVar("V")
			StaticMethod(geo, "MakePair", Named(geo, "Pair", Var("K"), Var("V")))
			Param("key", Var("K"), func() { Accessor("Key") })
			Param("value", Var("V"), func() { Accessor("Value") })
		})
		Goal("Label", func() {
			Bean(PointerTo(Named(geo, "Label")))
			Param("text", String, func() { Accessor("Text") })
			Param("anchor", PointerTo(Named(geo, "Point")), func() {
				Reject()
				Accessor("Anchor")
			})
			Param("tags", SliceOf(String), func() {
				Accessor("Tags")
				Collection()
			})
			Pooled()
		})
		Goal("Box", func() {
			TypeVar("T")
			Constructor(Named(geo, "Box", Var("T")))
			Param("content", Var("T"), func() {
				Reject()
				FieldRead("Content")
			})
			Param("label", String, func() { FieldRead("Label") })
			Pooled()
		})
	})
}
