package expr

import (
	"fmt"
	"strings"

	"goa.design/goa/v3/eval"
)

type (
	// ModuleExpr groups the goals whose builders are generated into a single
	// Go package.
	ModuleExpr struct {
		eval.DSLFunc

		// Name is the unique module name.
		Name string
		// PkgPath is the import path of the generated package.
		PkgPath string
		// PkgName is the name of the generated package. Defaults to the
		// last element of PkgPath.
		PkgName string
		// Goals lists the goals in declaration order.
		Goals []*GoalExpr
	}

	// GoalExpr describes an invocable the generator builds a staged builder
	// and an updater for.
	GoalExpr struct {
		eval.DSLFunc

		// Name is the goal name used to derive generated identifiers.
		Name string
		// Module is the owning module.
		Module *ModuleExpr
		// Kind selects how the goal is invoked.
		Kind GoalKind
		// TargetPkg is the import path of the package declaring the
		// function (static goals).
		TargetPkg string
		// Target is the function name (static goals) or the method name
		// (instance goals).
		Target string
		// Receiver is the receiver type of instance goals.
		Receiver *TypeRef
		// Result is the type produced by the goal, nil when the goal
		// returns nothing.
		Result *TypeRef
		// InstanceVars are the type variables of the receiver type, fixed
		// once the receiver is known.
		InstanceVars []*TypeVarExpr
		// CallVars are the type variables of the invocable itself.
		CallVars []*TypeVarExpr
		// Params lists the parameters in declaration order.
		Params []*ParamExpr
		// Throws lists the errors the invocable may return.
		Throws []*TypeRef
		// Access controls whether generated identifiers are exported.
		Access Access
		// Lifecycle selects fresh or pooled builder instances. Empty means
		// the generator default.
		Lifecycle Lifecycle
		// NoUpdater disables updater generation even when every parameter
		// declares a projection.
		NoUpdater bool
	}

	// TypeVarExpr declares a type variable and its bounds.
	TypeVarExpr struct {
		// Name is the variable name.
		Name string
		// Bounds are the types the variable is constrained by. No bound
		// means any.
		Bounds []*TypeRef
	}

	// ParamExpr describes one parameter of a goal.
	ParamExpr struct {
		eval.DSLFunc

		// Name is the parameter name.
		Name string
		// Goal is the owning goal.
		Goal *GoalExpr
		// Type is the declared parameter type.
		Type *TypeRef
		// Nulls is the null policy applied by the step accepting the
		// parameter.
		Nulls NullPolicy
		// Projection reads the parameter back out of an existing value.
		Projection *ProjectionExpr
		// Collection enables the collection shortcut methods.
		Collection *CollectionExpr
		// StepIndex overrides the position of the parameter in the step
		// chain when not nil.
		StepIndex *int
		// Mutator is the setter invoked by bean goals.
		Mutator string
		// Field is the struct field initialized by constructor goals.
		Field string
	}

	// ProjectionExpr describes how to read a parameter from an existing
	// value.
	ProjectionExpr struct {
		// Kind is either an accessor method call or a field read.
		Kind ProjectionKind
		// Name is the accessor method or field name.
		Name string
		// Throws lists the errors the accessor may return.
		Throws []*TypeRef
	}

	// CollectionExpr configures the collection shortcut of a slice typed
	// parameter.
	CollectionExpr struct {
		// Element is the element type. Defaults to the slice element.
		Element *TypeRef
		// Singular names the single element method. Derived from the
		// parameter name when empty.
		Singular string
		// NoEmpty disables the zero argument method.
		NoEmpty bool
		// NoSingle disables the single element method.
		NoSingle bool
	}

	// GoalKind is the closed set of invocable kinds.
	GoalKind string

	// NullPolicy controls null guards.
	NullPolicy string

	// Access controls the visibility of generated identifiers.
	Access string

	// Lifecycle controls builder instance allocation.
	Lifecycle string

	// ProjectionKind is the closed set of projection kinds.
	ProjectionKind string
)

const (
	// GoalConstructor builds a struct literal of the result type.
	GoalConstructor GoalKind = "constructor"
	// GoalStaticMethod calls a package level function.
	GoalStaticMethod GoalKind = "static_method"
	// GoalInstanceMethod calls a method on a receiver supplied at entry.
	GoalInstanceMethod GoalKind = "instance_method"
	// GoalBean allocates the result and calls one setter per parameter.
	GoalBean GoalKind = "bean"

	// NullAllow accepts nil arguments.
	NullAllow NullPolicy = "allow"
	// NullReject rejects nil arguments.
	NullReject NullPolicy = "reject"

	// AccessPublic exports generated identifiers.
	AccessPublic Access = "public"
	// AccessPackage keeps generated identifiers package private.
	AccessPackage Access = "package"

	// LifecycleFresh allocates a new builder on every entry.
	LifecycleFresh Lifecycle = "fresh"
	// LifecyclePooled reuses a scope-local builder instance.
	LifecyclePooled Lifecycle = "pooled"

	// ProjectionAccessor calls a method on the existing value.
	ProjectionAccessor ProjectionKind = "accessor"
	// ProjectionField reads a struct field of the existing value.
	ProjectionField ProjectionKind = "field"
)

// Valid reports whether k is one of the declared goal kinds.
func (k GoalKind) Valid() bool {
	switch k {
	case GoalConstructor, GoalStaticMethod, GoalInstanceMethod, GoalBean:
		return true
	}
	return false
}

// EvalName is part of eval.Expression allowing descriptive error messages.
func (m *ModuleExpr) EvalName() string {
	return fmt.Sprintf("module %q", m.Name)
}

// WalkSets exposes the nested expressions to the eval engine.
func (m *ModuleExpr) WalkSets(walk eval.SetWalker) {
	walk(eval.ToExpressionSet(m.Goals))
	var params []*ParamExpr
	for _, g := range m.Goals {
		params = append(params, g.Params...)
	}
	if len(params) > 0 {
		walk(eval.ToExpressionSet(params))
	}
}

// Validate makes sure the module names a generated package.
func (m *ModuleExpr) Validate() error {
	verr := new(eval.ValidationErrors)
	if m.PkgPath == "" {
		verr.Add(m, "package path is required; set it via Package(path)")
	}
	if len(verr.Errors) == 0 {
		return nil
	}
	return verr
}

// Finalize defaults the package name.
func (m *ModuleExpr) Finalize() {
	if m.PkgName == "" && m.PkgPath != "" {
		m.PkgName = m.PkgPath[strings.LastIndexByte(m.PkgPath, '/')+1:]
	}
}

// EvalName is part of eval.Expression allowing descriptive error messages.
func (g *GoalExpr) EvalName() string {
	if g.Module == nil {
		return fmt.Sprintf("goal %q", g.Name)
	}
	return fmt.Sprintf("goal %q (module %q)", g.Name, g.Module.Name)
}

// Prepare sets the access default.
func (g *GoalExpr) Prepare() {
	if g.Access == "" {
		g.Access = AccessPublic
	}
}

// Validate checks the goal shape for its kind. Arity, result and receiver
// requirements are enforced here so the generator only sees well formed
// goals.
func (g *GoalExpr) Validate() error {
	verr := new(eval.ValidationErrors)
	if len(g.Params) == 0 {
		verr.Add(g, "goal must declare at least one parameter")
	}
	switch g.Kind {
	case GoalConstructor, GoalBean:
		if !isStructLike(g.Result) {
			verr.Add(g, "%s goals must produce a named type or a pointer to one", g.Kind)
		}
	case GoalStaticMethod:
		if g.Target == "" {
			verr.Add(g, "static method goals must name the function to call")
		}
	case GoalInstanceMethod:
		if g.Target == "" {
			verr.Add(g, "instance method goals must name the method to call")
		}
		if g.Receiver == nil {
			verr.Add(g, "instance method goals must declare a receiver type")
		}
	default:
		verr.Add(g, "unknown goal kind %q", g.Kind)
	}
	if len(g.InstanceVars) > 0 && g.Kind != GoalInstanceMethod {
		verr.Add(g, "instance type variables are only valid on instance method goals")
	}
	vars := make(map[string]struct{})
	for _, v := range append(append([]*TypeVarExpr{}, g.InstanceVars...), g.CallVars...) {
		if _, dup := vars[v.Name]; dup {
			verr.Add(g, "type variable %q is declared twice", v.Name)
		}
		vars[v.Name] = struct{}{}
	}
	names := make(map[string]struct{})
	for _, p := range g.Params {
		key := strings.ToLower(p.Name)
		if _, dup := names[key]; dup {
			verr.Add(g, "parameter %q is declared twice", p.Name)
		}
		names[key] = struct{}{}
		if g.Lifecycle == LifecyclePooled && (key == "lease" || key == "inuse") {
			verr.Add(g, "parameter name %q is reserved for pooled goals", p.Name)
		}
	}
	if g.HasUpdater() {
		if _, clash := names["done"]; clash {
			verr.Add(g, "parameter name \"done\" clashes with the updater finish method")
		}
		for _, p := range g.Params {
			if p.Collection == nil || p.Collection.NoSingle || p.Collection.Singular == "" {
				continue
			}
			if _, clash := names[strings.ToLower(p.Collection.Singular)]; clash {
				verr.Add(p, "singular name %q clashes with another parameter", p.Collection.Singular)
			}
		}
	}
	if err := validateStepOrder(g.Params); err != nil {
		verr.AddError(g, err)
	}
	if len(verr.Errors) == 0 {
		return nil
	}
	return verr
}

// HasUpdater reports whether an updater can be generated for the goal: every
// parameter must declare a projection.
func (g *GoalExpr) HasUpdater() bool {
	if g.NoUpdater || g.Result == nil || len(g.Params) == 0 {
		return false
	}
	for _, p := range g.Params {
		if p.Projection == nil {
			return false
		}
	}
	return true
}

// EvalName is part of eval.Expression allowing descriptive error messages.
func (p *ParamExpr) EvalName() string {
	if p.Goal == nil {
		return fmt.Sprintf("parameter %q", p.Name)
	}
	return fmt.Sprintf("parameter %q of %s", p.Name, p.Goal.EvalName())
}

// Prepare defaults the null policy and the collection element.
func (p *ParamExpr) Prepare() {
	if p.Nulls == "" {
		p.Nulls = NullAllow
	}
	if p.Collection != nil && p.Collection.Element == nil && p.Type != nil && p.Type.Kind == SliceKind {
		p.Collection.Element = p.Type.Elem()
	}
}

// Validate checks the parameter type and its collection shortcut.
func (p *ParamExpr) Validate() error {
	verr := new(eval.ValidationErrors)
	if p.Type == nil {
		verr.Add(p, "parameter type is required")
	}
	if c := p.Collection; c != nil && p.Type != nil {
		if p.Type.Kind != SliceKind {
			verr.Add(p, "collection shortcuts require a slice type, got %s", p.Type)
		} else if c.Element != nil && !c.Element.Equal(p.Type.Elem()) {
			verr.Add(p, "collection element %s does not match slice element %s", c.Element, p.Type.Elem())
		}
	}
	if pr := p.Projection; pr != nil && pr.Name == "" {
		verr.Add(p, "projection must name an accessor or a field")
	}
	if len(verr.Errors) == 0 {
		return nil
	}
	return verr
}

// EvalName is part of eval.Expression allowing descriptive error messages.
func (c *CollectionExpr) EvalName() string {
	return "collection shortcut"
}

// validateStepOrder checks that step index hints, when present, form a
// permutation of the parameter positions.
func validateStepOrder(params []*ParamExpr) error {
	hinted := 0
	seen := make([]bool, len(params))
	for _, p := range params {
		if p.StepIndex == nil {
			continue
		}
		hinted++
		i := *p.StepIndex
		if i < 0 || i >= len(params) {
			return fmt.Errorf("step index %d of parameter %q is out of range [0, %d)", i, p.Name, len(params))
		}
		if seen[i] {
			return fmt.Errorf("step index %d is used more than once", i)
		}
		seen[i] = true
	}
	if hinted > 0 && hinted != len(params) {
		return fmt.Errorf("step indexes must be given for all parameters or none")
	}
	return nil
}

func isStructLike(t *TypeRef) bool {
	if t == nil {
		return false
	}
	if t.Kind == PointerKind {
		t = t.Elem()
	}
	return t != nil && t.Kind == NamedKind
}
