// Package desc defines the descriptors the synthesizer hands to code
// emitters: methods with structured bodies, fields and invocations. The
// descriptors are language neutral; back ends decide how each statement
// renders.
package desc

import (
	"goa.design/goa-builder/expr"
)

type (
	// Var is a type parameter of a generated type or method.
	Var struct {
		// Name is the type parameter name.
		Name string `json:"name" yaml:"name"`
		// Bounds constrain the type parameter.
		Bounds []*expr.TypeRef `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	}

	// Field is a named and typed value: a struct field or a formal
	// parameter.
	Field struct {
		// Name is the field or parameter name.
		Name string `json:"name" yaml:"name"`
		// Type is the field type.
		Type *expr.TypeRef `json:"type" yaml:"type"`
		// Param is the goal parameter held by the field, if any.
		Param string `json:"param,omitempty" yaml:"param,omitempty"`
	}

	// Method describes a generated method or function.
	Method struct {
		// Name is the method name.
		Name string `json:"name" yaml:"name"`
		// Doc is the method documentation.
		Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`
		// TypeParams are the type parameters introduced by the method.
		TypeParams []*Var `json:"type_params,omitempty" yaml:"type_params,omitempty"`
		// Params lists the formal parameters.
		Params []*Field `json:"params,omitempty" yaml:"params,omitempty"`
		// Result is the returned type, nil when the method returns nothing.
		Result *expr.TypeRef `json:"result,omitempty" yaml:"result,omitempty"`
		// Throws lists the errors the method may return.
		Throws []*expr.TypeRef `json:"throws,omitempty" yaml:"throws,omitempty"`
		// Modifiers qualify the method, for example "public" or "static".
		Modifiers []string `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
		// Body lists the statements of the method.
		Body []*Stmt `json:"body,omitempty" yaml:"body,omitempty"`
	}

	// Implementation describes the type implementing a contract.
	Implementation struct {
		// Name is the type name.
		Name string `json:"name" yaml:"name"`
		// TypeParams are the type parameters of the type.
		TypeParams []*Var `json:"type_params,omitempty" yaml:"type_params,omitempty"`
		// Fields hold the accumulated parameter values.
		Fields []*Field `json:"fields,omitempty" yaml:"fields,omitempty"`
		// Receiver holds the receiver of instance method goals.
		Receiver *Field `json:"receiver,omitempty" yaml:"receiver,omitempty"`
		// Pooled is true when the type carries the in use flag.
		Pooled bool `json:"pooled,omitempty" yaml:"pooled,omitempty"`
	}

	// Stmt is one statement of a method body.
	Stmt struct {
		// Kind selects the statement.
		Kind StmtKind `json:"kind" yaml:"kind"`
		// Target is the field or local written by the statement.
		Target string `json:"target,omitempty" yaml:"target,omitempty"`
		// Local is true when Target is a local variable declared by the
		// statement rather than a field of the implementation.
		Local bool `json:"local,omitempty" yaml:"local,omitempty"`
		// Source is the local or parameter read by the statement.
		Source string `json:"source,omitempty" yaml:"source,omitempty"`
		// Label names the parameter in null argument failures.
		Label string `json:"label,omitempty" yaml:"label,omitempty"`
		// ElemLabel names the parameter in element null argument failures.
		// Empty when elements are not guarded.
		ElemLabel string `json:"elem_label,omitempty" yaml:"elem_label,omitempty"`
		// Type is the type of the value written by the statement.
		Type *expr.TypeRef `json:"type,omitempty" yaml:"type,omitempty"`
		// Projection reads Target from Source for StmtProject.
		Projection *Projection `json:"projection,omitempty" yaml:"projection,omitempty"`
		// Invoke is the goal invocation of StmtInvoke.
		Invoke *Invocation `json:"invoke,omitempty" yaml:"invoke,omitempty"`
		// Elem is the loop variable of StmtCollect.
		Elem string `json:"elem,omitempty" yaml:"elem,omitempty"`
		// Guarded is true when a preceding guard already rejects a nil
		// Source of StmtCollect.
		Guarded bool `json:"guarded,omitempty" yaml:"guarded,omitempty"`
		// Slot names the pool slot of StmtAcquire.
		Slot string `json:"slot,omitempty" yaml:"slot,omitempty"`
		// Impl is the implementation allocated or acquired.
		Impl string `json:"impl,omitempty" yaml:"impl,omitempty"`
	}

	// Projection reads a value back from an existing instance.
	Projection struct {
		// Kind is accessor or field.
		Kind expr.ProjectionKind `json:"kind" yaml:"kind"`
		// Name is the accessor or field name.
		Name string `json:"name" yaml:"name"`
		// Throws lists the errors the accessor may return.
		Throws []*expr.TypeRef `json:"throws,omitempty" yaml:"throws,omitempty"`
	}

	// Invocation describes the call of the goal.
	Invocation struct {
		// Kind is the goal kind.
		Kind expr.GoalKind `json:"kind" yaml:"kind"`
		// Pkg is the import path of the called function (static methods).
		Pkg string `json:"pkg,omitempty" yaml:"pkg,omitempty"`
		// Name is the function or method name.
		Name string `json:"name,omitempty" yaml:"name,omitempty"`
		// Receiver is the local holding the receiver (instance methods).
		Receiver string `json:"receiver,omitempty" yaml:"receiver,omitempty"`
		// Result is the produced type, nil when the goal returns nothing.
		Result *expr.TypeRef `json:"result,omitempty" yaml:"result,omitempty"`
		// TypeArgs are the explicit type arguments of the call.
		TypeArgs []*expr.TypeRef `json:"type_args,omitempty" yaml:"type_args,omitempty"`
		// Args lists the arguments in declaration order.
		Args []*Arg `json:"args" yaml:"args"`
		// Throws lists the errors the invocable may return.
		Throws []*expr.TypeRef `json:"throws,omitempty" yaml:"throws,omitempty"`
	}

	// Arg is one argument of an invocation.
	Arg struct {
		// Param is the goal parameter name.
		Param string `json:"param" yaml:"param"`
		// Local is the local variable holding the value.
		Local string `json:"local" yaml:"local"`
		// Field is the struct field initialized by constructor goals.
		Field string `json:"field,omitempty" yaml:"field,omitempty"`
		// Setter is the mutator called by bean goals.
		Setter string `json:"setter,omitempty" yaml:"setter,omitempty"`
	}

	// StmtKind is the closed set of body statements.
	StmtKind string
)

const (
	// StmtGuard fails with a null argument error when Source, of type
	// Type, is nil.
	StmtGuard StmtKind = "guard"
	// StmtAllocate creates a new Impl instance.
	StmtAllocate StmtKind = "allocate"
	// StmtAcquire obtains an Impl instance from pool slot Slot.
	StmtAcquire StmtKind = "acquire"
	// StmtStore assigns Source to Target.
	StmtStore StmtKind = "store"
	// StmtCollect copies the elements of sequence Source into Target,
	// guarding every element when ElemLabel is set.
	StmtCollect StmtKind = "collect"
	// StmtStoreEmpty assigns an empty collection of Type to Target.
	StmtStoreEmpty StmtKind = "store_empty"
	// StmtStoreSingle assigns a one element collection of Type holding
	// Source to Target.
	StmtStoreSingle StmtKind = "store_single"
	// StmtProject reads Target from the existing value Source.
	StmtProject StmtKind = "project"
	// StmtSnapshot copies field Source into local Target.
	StmtSnapshot StmtKind = "snapshot"
	// StmtClear resets field Target of Type to its zero value.
	StmtClear StmtKind = "clear"
	// StmtRelease clears the in use flag of the implementation.
	StmtRelease StmtKind = "release"
	// StmtInvoke calls the goal and returns its result.
	StmtInvoke StmtKind = "invoke"
	// StmtReturnSelf returns the implementation.
	StmtReturnSelf StmtKind = "return_self"
)

// Refs returns references to the given type parameters.
func Refs(vars []*Var) []*expr.TypeRef {
	if len(vars) == 0 {
		return nil
	}
	out := make([]*expr.TypeRef, len(vars))
	for i, v := range vars {
		out[i] = expr.Var(v.Name)
	}
	return out
}

// Guards returns the number of guard statements in body, counting element
// guards of collect statements.
func Guards(body []*Stmt) int {
	n := 0
	for _, s := range body {
		switch {
		case s.Kind == StmtGuard:
			n++
		case s.Kind == StmtCollect && s.ElemLabel != "":
			n++
		}
	}
	return n
}
