package ir

import "goa.design/goa-builder/expr"

type (
	// Design is the deterministic, generator-facing representation of a
	// builder design. Modules are sorted by name.
	Design struct {
		// Modules lists the modules of the design.
		Modules []*Module `json:"modules" yaml:"modules"`
	}

	// Module is a set of goals generated into one Go package. Goals keep
	// their declaration order.
	Module struct {
		// Name is the module name.
		Name string `json:"name" yaml:"name"`
		// PkgPath is the import path of the generated package.
		PkgPath string `json:"pkg_path" yaml:"pkg_path"`
		// PkgName is the name of the generated package.
		PkgName string `json:"pkg_name" yaml:"pkg_name"`
		// Goals lists the goals of the module.
		Goals []*Goal `json:"goals" yaml:"goals"`
	}

	// Goal is the description of one invocable.
	Goal struct {
		// Name is the goal name.
		Name string `json:"name" yaml:"name"`
		// Kind selects how the goal is invoked.
		Kind expr.GoalKind `json:"kind" yaml:"kind"`
		// TargetPkg is the import path of the function of static goals.
		TargetPkg string `json:"target_pkg,omitempty" yaml:"target_pkg,omitempty"`
		// Target is the function or method name.
		Target string `json:"target,omitempty" yaml:"target,omitempty"`
		// Receiver is the receiver type of instance goals.
		Receiver *expr.TypeRef `json:"receiver,omitempty" yaml:"receiver,omitempty"`
		// Result is the produced type, nil when the goal returns nothing.
		Result *expr.TypeRef `json:"result,omitempty" yaml:"result,omitempty"`
		// InstanceVars are the receiver type variables.
		InstanceVars []*TypeVar `json:"instance_vars,omitempty" yaml:"instance_vars,omitempty"`
		// CallVars are the invocable type variables.
		CallVars []*TypeVar `json:"call_vars,omitempty" yaml:"call_vars,omitempty"`
		// Params lists the parameters in declaration order.
		Params []*Param `json:"params" yaml:"params"`
		// Throws lists the errors returned by the invocable.
		Throws []*expr.TypeRef `json:"throws,omitempty" yaml:"throws,omitempty"`
		// Access controls the visibility of generated identifiers.
		Access expr.Access `json:"access" yaml:"access"`
		// Lifecycle selects fresh or pooled instances.
		Lifecycle expr.Lifecycle `json:"lifecycle" yaml:"lifecycle"`
		// Updater is true when an updater is generated.
		Updater bool `json:"updater" yaml:"updater"`
	}

	// TypeVar is a declared type variable.
	TypeVar struct {
		// Name is the variable name.
		Name string `json:"name" yaml:"name"`
		// Bounds constrain the variable.
		Bounds []*expr.TypeRef `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	}

	// Param is one goal parameter.
	Param struct {
		// Name is the parameter name.
		Name string `json:"name" yaml:"name"`
		// Type is the declared type.
		Type *expr.TypeRef `json:"type" yaml:"type"`
		// Nulls is the null policy.
		Nulls expr.NullPolicy `json:"nulls" yaml:"nulls"`
		// Projection reads the parameter back from an existing value.
		Projection *Projection `json:"projection,omitempty" yaml:"projection,omitempty"`
		// Collection configures the collection shortcut.
		Collection *Collection `json:"collection,omitempty" yaml:"collection,omitempty"`
		// StepIndex is the step position override, -1 when absent.
		StepIndex int `json:"step_index" yaml:"step_index"`
		// Mutator is the setter called by bean goals.
		Mutator string `json:"mutator,omitempty" yaml:"mutator,omitempty"`
		// Field is the struct field set by constructor goals.
		Field string `json:"field,omitempty" yaml:"field,omitempty"`
	}

	// Projection reads a parameter back out of an existing value.
	Projection struct {
		// Kind is accessor or field.
		Kind expr.ProjectionKind `json:"kind" yaml:"kind"`
		// Name is the accessor or field name.
		Name string `json:"name" yaml:"name"`
		// Throws lists the errors returned by the accessor.
		Throws []*expr.TypeRef `json:"throws,omitempty" yaml:"throws,omitempty"`
	}

	// Collection configures the collection shortcut of a slice parameter.
	Collection struct {
		// Element is the element type.
		Element *expr.TypeRef `json:"element" yaml:"element"`
		// Singular names the single element method.
		Singular string `json:"singular" yaml:"singular"`
		// Empty enables the zero argument method.
		Empty bool `json:"empty" yaml:"empty"`
		// Single enables the single element method.
		Single bool `json:"single" yaml:"single"`
	}
)

// Vars returns the instance variables followed by the call variables.
func (g *Goal) Vars() []*TypeVar {
	vars := make([]*TypeVar, 0, len(g.InstanceVars)+len(g.CallVars))
	vars = append(vars, g.InstanceVars...)
	return append(vars, g.CallVars...)
}

// Exported reports whether generated identifiers are exported.
func (g *Goal) Exported() bool {
	return g.Access != expr.AccessPackage
}

// Pooled reports whether builder and updater instances are pooled.
func (g *Goal) Pooled() bool {
	return g.Lifecycle == expr.LifecyclePooled
}

// Void reports whether the goal returns nothing.
func (g *Goal) Void() bool {
	return g.Result == nil
}
