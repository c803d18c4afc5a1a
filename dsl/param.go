package dsl

import (
	"goa.design/goa/v3/eval"

	"goa.design/goa-builder/expr"
)

// Param declares the next parameter of a goal. Param must appear in a Goal
// expression. Parameters are supplied to the builder in declaration order
// unless StepIndex overrides it; the invocable always receives them in
// declaration order.
//
// The optional DSL function may use:
//   - Reject, Allow: null policy (defaults to Allow)
//   - Accessor, FieldRead: projection used by the updater
//   - Throws: errors returned by the accessor
//   - Mutator: setter called by bean goals
//   - StructField: struct field set by constructor goals
//   - Collection: enables the collection shortcut methods
//   - StepIndex: position of the parameter in the builder chain
//
// Example:
//
//	Param("tags", SliceOf(String), func() {
//	    Reject()
//	    FieldRead("Tags")
//	    Collection(func() { Singular("tag") })
//	})
func Param(name string, t *expr.TypeRef, fn ...func()) *expr.ParamExpr {
	g, ok := currentGoal()
	if !ok {
		return nil
	}
	if name == "" {
		eval.ReportError("parameter name must be non-empty")
		return nil
	}
	if t == nil {
		eval.InvalidArgError("type", t)
		return nil
	}
	p := &expr.ParamExpr{Name: name, Goal: g, Type: t}
	if len(fn) > 0 {
		p.DSLFunc = fn[0]
	}
	g.Params = append(g.Params, p)
	return p
}

// Reject makes the steps accepting the parameter reject nil values.
func Reject() {
	if p, ok := currentParam(); ok {
		p.Nulls = expr.NullReject
	}
}

// Allow makes the steps accepting the parameter accept nil values.
func Allow() {
	if p, ok := currentParam(); ok {
		p.Nulls = expr.NullAllow
	}
}

// Accessor declares that the parameter is read back from an existing value
// by calling the named method.
func Accessor(method string) {
	if p, ok := currentParam(); ok {
		p.Projection = &expr.ProjectionExpr{Kind: expr.ProjectionAccessor, Name: method}
	}
}

// FieldRead declares that the parameter is read back from an existing value
// through the named struct field.
func FieldRead(field string) {
	if p, ok := currentParam(); ok {
		p.Projection = &expr.ProjectionExpr{Kind: expr.ProjectionField, Name: field}
	}
}

// Mutator sets the setter called by bean goals. Defaults to Set<Param>.
func Mutator(method string) {
	if p, ok := currentParam(); ok {
		p.Mutator = method
	}
}

// StructField sets the struct field initialized by constructor goals.
// Defaults to the FieldRead field or to the exported parameter name.
func StructField(field string) {
	if p, ok := currentParam(); ok {
		p.Field = field
	}
}

// StepIndex places the parameter at position i of the builder chain. When
// used, every parameter of the goal must have a distinct index.
func StepIndex(i int) {
	if p, ok := currentParam(); ok {
		p.StepIndex = &i
	}
}

// Collection enables the collection shortcut for a slice typed parameter:
// the step accepts an iterator of elements, and optionally a zero argument
// Empty method and a single element method. The optional DSL function may
// use Singular, NoEmpty and NoSingle.
func Collection(fn ...func()) {
	p, ok := currentParam()
	if !ok {
		return
	}
	c := &expr.CollectionExpr{}
	p.Collection = c
	if len(fn) > 0 {
		eval.Execute(fn[0], c)
	}
}

// Singular names the single element collection method.
func Singular(name string) {
	if c, ok := currentCollection(); ok {
		c.Singular = name
	}
}

// NoEmpty disables the zero argument collection method.
func NoEmpty() {
	if c, ok := currentCollection(); ok {
		c.NoEmpty = true
	}
}

// NoSingle disables the single element collection method.
func NoSingle() {
	if c, ok := currentCollection(); ok {
		c.NoSingle = true
	}
}

func currentParam() (*expr.ParamExpr, bool) {
	p, ok := eval.Current().(*expr.ParamExpr)
	if !ok {
		eval.IncompatibleDSL()
	}
	return p, ok
}

func currentCollection() (*expr.CollectionExpr, bool) {
	c, ok := eval.Current().(*expr.CollectionExpr)
	if !ok {
		eval.IncompatibleDSL()
	}
	return c, ok
}
