package dsl

import (
	"goa.design/goa/v3/eval"

	"goa.design/goa-builder/expr"
)

// Module declares a group of goals generated into a single Go package. Module
// must appear at the top level of a design.
//
// Module takes a name and a DSL function that may use:
//   - Package: sets the import path of the generated package (required)
//   - Goal: declares a goal
//
// Example:
//
//	var _ = Module("shapes", func() {
//	    Package("example.com/shapes/gen/builders")
//	    Goal("Circle", func() { ... })
//	})
func Module(name string, fn func()) *expr.ModuleExpr {
	if name == "" {
		eval.ReportError("module name must be non-empty")
		return nil
	}
	if _, ok := eval.Current().(eval.TopExpr); !ok {
		eval.IncompatibleDSL()
		return nil
	}
	m := &expr.ModuleExpr{Name: name, DSLFunc: fn}
	expr.Root.Modules = append(expr.Root.Modules, m)
	return m
}

// Package sets the import path of the generated package and optionally its
// name. Package must appear in a Module expression.
//
// Example:
//
//	Package("example.com/shapes/gen/builders", "builders")
func Package(path string, name ...string) {
	m, ok := eval.Current().(*expr.ModuleExpr)
	if !ok {
		eval.IncompatibleDSL()
		return
	}
	m.PkgPath = path
	if len(name) > 0 {
		m.PkgName = name[0]
	}
}
