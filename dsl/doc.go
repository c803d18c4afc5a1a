// Package dsl defines the design language used to declare the goals the
// builder generator produces staged builders, updaters and pools for. The
// functions in this package run at design time under the Goa eval engine;
// they are not used by generated code.
//
// A design declares one or more modules, each generated into its own Go
// package, and the goals of each module:
//
//	var _ = Module("geometry", func() {
//	    Package("example.com/geometry/gen/geometry")
//	    Goal("Point", func() {
//	        Constructor(Named("example.com/geometry", "Point"))
//	        Param("x", Int, func() { FieldRead("X") })
//	        Param("y", Int, func() { FieldRead("Y") })
//	    })
//	})
package dsl
