package expr

import (
	"path"
	"strings"
)

type (
	// TypeKind identifies the shape of a TypeRef.
	TypeKind string

	// TypeRef is a fully resolved reference to a Go type as seen by the
	// generator. TypeRefs are built by the DSL or the YAML loader and are never
	// mutated once the design has been evaluated.
	TypeRef struct {
		// Kind is the shape of the type.
		Kind TypeKind `json:"kind" yaml:"kind"`
		// Name is the basic type name, the named type name or the type
		// variable name depending on Kind.
		Name string `json:"name,omitempty" yaml:"name,omitempty"`
		// PkgPath is the import path of a named type. Empty for predeclared
		// and package-local types.
		PkgPath string `json:"pkg_path,omitempty" yaml:"pkg_path,omitempty"`
		// Args holds the type arguments of a named type, the element of a
		// pointer or slice, or the key and value of a map.
		Args []*TypeRef `json:"args,omitempty" yaml:"args,omitempty"`
		// Nilable is set on named types whose underlying type is an
		// interface, function, channel, map, slice or pointer.
		Nilable bool `json:"nilable,omitempty" yaml:"nilable,omitempty"`
		// Approx marks a ~T term. Only meaningful inside type variable
		// bounds.
		Approx bool `json:"approx,omitempty" yaml:"approx,omitempty"`
	}
)

const (
	// BasicKind is a predeclared type such as int, string or error.
	BasicKind TypeKind = "basic"
	// NamedKind is a defined type, possibly generic.
	NamedKind TypeKind = "named"
	// VarKind is a reference to a declared type variable.
	VarKind TypeKind = "var"
	// PointerKind is *Elem.
	PointerKind TypeKind = "pointer"
	// SliceKind is []Elem.
	SliceKind TypeKind = "slice"
	// MapKind is map[Key]Elem.
	MapKind TypeKind = "map"
)

var basicNames = map[string]bool{
	"bool": true, "string": true, "byte": true, "rune": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true, "uintptr": true,
	"float32": true, "float64": true, "complex64": true, "complex128": true,
	"error": true, "any": true, "comparable": true,
}

// IsBasicName reports whether name is a predeclared Go type name.
func IsBasicName(name string) bool {
	return basicNames[name]
}

// Basic returns a reference to the predeclared type name.
func Basic(name string) *TypeRef {
	return &TypeRef{Kind: BasicKind, Name: name}
}

// Named returns a reference to the defined type pkgPath.name instantiated
// with args.
func Named(pkgPath, name string, args ...*TypeRef) *TypeRef {
	return &TypeRef{Kind: NamedKind, Name: name, PkgPath: pkgPath, Args: args}
}

// Var returns a reference to the type variable name.
func Var(name string) *TypeRef {
	return &TypeRef{Kind: VarKind, Name: name}
}

// Pointer returns *elem.
func Pointer(elem *TypeRef) *TypeRef {
	return &TypeRef{Kind: PointerKind, Args: []*TypeRef{elem}}
}

// Slice returns []elem.
func Slice(elem *TypeRef) *TypeRef {
	return &TypeRef{Kind: SliceKind, Args: []*TypeRef{elem}}
}

// Map returns map[key]elem.
func Map(key, elem *TypeRef) *TypeRef {
	return &TypeRef{Kind: MapKind, Args: []*TypeRef{key, elem}}
}

// Elem returns the element type of a pointer, slice or map, nil otherwise.
func (t *TypeRef) Elem() *TypeRef {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case PointerKind, SliceKind:
		if len(t.Args) == 1 {
			return t.Args[0]
		}
	case MapKind:
		if len(t.Args) == 2 {
			return t.Args[1]
		}
	}
	return nil
}

// Key returns the key type of a map, nil otherwise.
func (t *TypeRef) Key() *TypeRef {
	if t == nil || t.Kind != MapKind || len(t.Args) != 2 {
		return nil
	}
	return t.Args[0]
}

// MayBeNil reports whether a value of the type may be nil at run time. It
// holds for the types accepted by CanBeNil and for type variables, which
// may be instantiated with a nilable type.
func (t *TypeRef) MayBeNil() bool {
	return t.CanBeNil() || (t != nil && t.Kind == VarKind)
}

// CanBeNil reports whether a value of the type may be compared against nil.
// Type variables never can: their type set may include non-nilable types.
func (t *TypeRef) CanBeNil() bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case PointerKind, SliceKind, MapKind:
		return true
	case NamedKind:
		return t.Nilable
	case BasicKind:
		return t.Name == "error" || t.Name == "any"
	default:
		return false
	}
}

// IsScalar reports whether the type is a fixed size predeclared value type
// (numbers and booleans). Scalar fields hold no references and need no
// clearing when a pooled instance is recycled.
func (t *TypeRef) IsScalar() bool {
	if t == nil || t.Kind != BasicKind {
		return false
	}
	switch t.Name {
	case "string", "error", "any", "comparable":
		return false
	}
	return true
}

// Equal reports whether t and o denote the same type.
func (t *TypeRef) Equal(o *TypeRef) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Kind != o.Kind || t.Name != o.Name || t.PkgPath != o.PkgPath || t.Approx != o.Approx {
		return false
	}
	if len(t.Args) != len(o.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// Walk calls fn on t and every type nested in it, depth first. Walk stops
// descending into a type when fn returns false.
func (t *TypeRef) Walk(fn func(*TypeRef) bool) {
	if t == nil || !fn(t) {
		return
	}
	for _, a := range t.Args {
		a.Walk(fn)
	}
}

// String renders the type with Go syntax, qualifying named types with the
// last element of their package path.
func (t *TypeRef) String() string {
	var sb strings.Builder
	t.write(&sb, func(pkgPath string) string { return path.Base(pkgPath) })
	return sb.String()
}

// Format renders the type with Go syntax using qualify to name packages.
// qualify returns the empty string for types that need no qualifier.
func (t *TypeRef) Format(qualify func(pkgPath string) string) string {
	var sb strings.Builder
	t.write(&sb, qualify)
	return sb.String()
}

func (t *TypeRef) write(sb *strings.Builder, qualify func(string) string) {
	if t == nil {
		return
	}
	if t.Approx {
		sb.WriteByte('~')
	}
	switch t.Kind {
	case BasicKind, VarKind:
		sb.WriteString(t.Name)
	case NamedKind:
		if t.PkgPath != "" {
			if q := qualify(t.PkgPath); q != "" {
				sb.WriteString(q)
				sb.WriteByte('.')
			}
		}
		sb.WriteString(t.Name)
		if len(t.Args) > 0 {
			sb.WriteByte('[')
			for i, a := range t.Args {
				if i > 0 {
					sb.WriteString(", ")
				}
				a.write(sb, qualify)
			}
			sb.WriteByte(']')
		}
	case PointerKind:
		sb.WriteByte('*')
		t.Elem().write(sb, qualify)
	case SliceKind:
		sb.WriteString("[]")
		t.Elem().write(sb, qualify)
	case MapKind:
		sb.WriteString("map[")
		t.Key().write(sb, qualify)
		sb.WriteByte(']')
		t.Elem().write(sb, qualify)
	}
}
