package dsl

import "goa.design/goa-builder/expr"

// Predeclared types usable as parameter, result and bound types.
var (
	// Bool is the bool type.
	Bool = expr.Basic("bool")
	// Int is the int type.
	Int = expr.Basic("int")
	// Int64 is the int64 type.
	Int64 = expr.Basic("int64")
	// Float64 is the float64 type.
	Float64 = expr.Basic("float64")
	// String is the string type.
	String = expr.Basic("string")
	// Bytes is the []byte type.
	Bytes = expr.Slice(expr.Basic("byte"))
	// Error is the error interface.
	Error = expr.Basic("error")
	// Any is the empty interface.
	Any = expr.Basic("any")
	// Comparable is the comparable constraint.
	Comparable = expr.Basic("comparable")
)

// Named returns a reference to the type name declared in package pkgPath,
// instantiated with args when the type is generic. Use an empty pkgPath for
// types declared in the generated package.
func Named(pkgPath, name string, args ...*expr.TypeRef) *expr.TypeRef {
	return expr.Named(pkgPath, name, args...)
}

// NilableNamed is Named for types whose values may be nil, such as
// interfaces and function types. Null guards only apply to nilable types.
func NilableNamed(pkgPath, name string, args ...*expr.TypeRef) *expr.TypeRef {
	t := expr.Named(pkgPath, name, args...)
	t.Nilable = true
	return t
}

// Var returns a reference to a type variable declared with TypeVar or
// InstanceTypeVar.
func Var(name string) *expr.TypeRef {
	return expr.Var(name)
}

// SliceOf returns []elem.
func SliceOf(elem *expr.TypeRef) *expr.TypeRef {
	return expr.Slice(elem)
}

// MapOf returns map[key]elem.
func MapOf(key, elem *expr.TypeRef) *expr.TypeRef {
	return expr.Map(key, elem)
}

// PointerTo returns *elem.
func PointerTo(elem *expr.TypeRef) *expr.TypeRef {
	return expr.Pointer(elem)
}

// Approx returns the ~t term of a type variable bound.
func Approx(t *expr.TypeRef) *expr.TypeRef {
	dup := *t
	dup.Approx = true
	return &dup
}
