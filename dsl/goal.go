package dsl

import (
	"goa.design/goa/v3/eval"

	"goa.design/goa-builder/expr"
)

// Goal declares an invocable the generator produces a staged builder for.
// Goal must appear in a Module expression.
//
// Goal takes a name, used to derive the generated identifiers, and a DSL
// function that may use:
//   - Constructor, StaticMethod, InstanceMethod or Bean: selects the
//     invocable (exactly one is required)
//   - TypeVar, InstanceTypeVar: declare generic type variables
//   - Param: declares a parameter, in order
//   - Throws: declares that the invocable returns an error
//   - Pooled, Fresh: select the builder lifecycle
//   - Unexported: keeps generated identifiers package private
//   - NoUpdater: disables updater generation
//
// Example:
//
//	Goal("Pair", func() {
//	    TypeVar("K", Comparable)
//	    TypeVar("V")
//	    StaticMethod("example.com/pairs", "MakePair", Named("example.com/pairs", "Pair", Var("K"), Var("V")))
//	    Param("key", Var("K"))
//	    Param("value", Var("V"))
//	})
func Goal(name string, fn func()) *expr.GoalExpr {
	if name == "" {
		eval.ReportError("goal name must be non-empty")
		return nil
	}
	m, ok := eval.Current().(*expr.ModuleExpr)
	if !ok {
		eval.IncompatibleDSL()
		return nil
	}
	g := &expr.GoalExpr{Name: name, Module: m, DSLFunc: fn}
	m.Goals = append(m.Goals, g)
	return g
}

// Constructor makes the goal build a struct literal of result, one field per
// parameter. result must be a named struct type or a pointer to one.
func Constructor(result *expr.TypeRef) {
	g, ok := currentGoal()
	if !ok {
		return
	}
	g.Kind = expr.GoalConstructor
	g.Result = result
}

// StaticMethod makes the goal call the package level function pkgPath.name.
// result is nil when the function returns nothing.
func StaticMethod(pkgPath, name string, result *expr.TypeRef) {
	g, ok := currentGoal()
	if !ok {
		return
	}
	g.Kind = expr.GoalStaticMethod
	g.TargetPkg = pkgPath
	g.Target = name
	g.Result = result
}

// InstanceMethod makes the goal call method on a receiver of the given type.
// The receiver is supplied when entering the builder. result is nil when the
// method returns nothing.
func InstanceMethod(receiver *expr.TypeRef, method string, result *expr.TypeRef) {
	g, ok := currentGoal()
	if !ok {
		return
	}
	g.Kind = expr.GoalInstanceMethod
	g.Receiver = receiver
	g.Target = method
	g.Result = result
}

// Bean makes the goal allocate result and call one setter per parameter.
func Bean(result *expr.TypeRef) {
	g, ok := currentGoal()
	if !ok {
		return
	}
	g.Kind = expr.GoalBean
	g.Result = result
}

// TypeVar declares a type variable of the invocable. Variables without
// bounds are constrained by any.
func TypeVar(name string, bounds ...*expr.TypeRef) {
	g, ok := currentGoal()
	if !ok {
		return
	}
	g.CallVars = append(g.CallVars, &expr.TypeVarExpr{Name: name, Bounds: bounds})
}

// InstanceTypeVar declares a type variable of the receiver type of an
// instance method goal.
func InstanceTypeVar(name string, bounds ...*expr.TypeRef) {
	g, ok := currentGoal()
	if !ok {
		return
	}
	g.InstanceVars = append(g.InstanceVars, &expr.TypeVarExpr{Name: name, Bounds: bounds})
}

// Throws declares errors. In a Goal expression it declares the errors
// returned by the invocable; in a Param expression it declares the errors
// returned by the projection accessor and must follow Accessor.
// Calling Throws without arguments declares a plain error.
func Throws(errs ...*expr.TypeRef) {
	if len(errs) == 0 {
		errs = []*expr.TypeRef{Error}
	}
	switch e := eval.Current().(type) {
	case *expr.GoalExpr:
		e.Throws = append(e.Throws, errs...)
	case *expr.ParamExpr:
		if e.Projection == nil {
			eval.ReportError("Throws in a parameter must follow Accessor or FieldRead")
			return
		}
		e.Projection.Throws = append(e.Projection.Throws, errs...)
	default:
		eval.IncompatibleDSL()
	}
}

// Pooled makes the builder and updater entries reuse a scope-local instance.
func Pooled() {
	if g, ok := currentGoal(); ok {
		g.Lifecycle = expr.LifecyclePooled
	}
}

// Fresh makes the builder and updater entries allocate a new instance on
// every call.
func Fresh() {
	if g, ok := currentGoal(); ok {
		g.Lifecycle = expr.LifecycleFresh
	}
}

// Unexported keeps the generated identifiers of the goal package private.
func Unexported() {
	if g, ok := currentGoal(); ok {
		g.Access = expr.AccessPackage
	}
}

// NoUpdater disables updater generation for the goal.
func NoUpdater() {
	if g, ok := currentGoal(); ok {
		g.NoUpdater = true
	}
}

func currentGoal() (*expr.GoalExpr, bool) {
	g, ok := eval.Current().(*expr.GoalExpr)
	if !ok {
		eval.IncompatibleDSL()
	}
	return g, ok
}
