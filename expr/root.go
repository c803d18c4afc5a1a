// Package expr defines the expression types populated by the builder design
// language. Expressions are evaluated by the Goa eval engine, validated, and
// then converted into the generator IR.
package expr

import (
	"strings"

	"goa.design/goa/v3/eval"
)

// Root holds all module declarations for the current design run.
var Root *RootExpr

func init() {
	Root = &RootExpr{}
	if err := eval.Register(Root); err != nil {
		panic(err)
	}
}

// RootExpr is the top-level root for all builder declarations.
type RootExpr struct {
	// Modules is the collection of declared modules.
	Modules []*ModuleExpr
}

// EvalName is part of eval.Expression.
func (r *RootExpr) EvalName() string {
	return "builder root"
}

// DependsOn returns the roots this root depends on. Builder designs are
// self-contained.
func (r *RootExpr) DependsOn() []eval.Root {
	return nil
}

// Packages returns packages considered for DSL error attribution.
func (r *RootExpr) Packages() []string {
	return []string{"goa.design/goa-builder/dsl"}
}

// WalkSets exposes the root and its nested expressions to the eval engine.
func (r *RootExpr) WalkSets(walk eval.SetWalker) {
	walk(eval.ExpressionSet{r})
	walk(eval.ToExpressionSet(r.Modules))
	for _, m := range r.Modules {
		m.WalkSets(walk)
	}
}

// Module returns the module with the given name, nil if none.
func (r *RootExpr) Module(name string) *ModuleExpr {
	for _, m := range r.Modules {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Validate enforces invariants that need a view of all modules: module names
// and generated packages are unique, and goal names are unique within a
// module so generated identifiers never collide.
func (r *RootExpr) Validate() error {
	verr := new(eval.ValidationErrors)
	modules := make(map[string]*ModuleExpr)
	pkgs := make(map[string]*ModuleExpr)
	for _, m := range r.Modules {
		if other, dup := modules[m.Name]; dup {
			verr.Add(m, "module name %q duplicates %s", m.Name, other.EvalName())
		}
		modules[m.Name] = m
		if m.PkgPath != "" {
			if other, dup := pkgs[m.PkgPath]; dup {
				verr.Add(m, "package %q is already generated by %s", m.PkgPath, other.EvalName())
			}
			pkgs[m.PkgPath] = m
		}
		goals := make(map[string]*GoalExpr)
		for _, g := range m.Goals {
			key := strings.ToLower(g.Name)
			if other, dup := goals[key]; dup {
				verr.Add(g, "goal name %q duplicates %s", g.Name, other.EvalName())
				continue
			}
			goals[key] = g
		}
	}
	if len(verr.Errors) == 0 {
		return nil
	}
	return verr
}
