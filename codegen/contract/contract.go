// Package contract synthesizes the builder and updater descriptors of the
// goals of a module.
//
// For each goal Generate produces the contract (the ordered step
// interfaces), the implementation implementing every step, the builder
// entry and, when every parameter can be read back from an existing value,
// the updater. Goals that cannot be generated are reported as diagnostics
// and left out; the other goals of the module are unaffected.
package contract

import (
	"path"
	"slices"

	"goa.design/goa-builder/codegen/desc"
	"goa.design/goa-builder/codegen/ir"
	"goa.design/goa-builder/codegen/lifecycle"
	"goa.design/goa-builder/codegen/step"
	"goa.design/goa-builder/expr"
)

type (
	// Module aggregates the generated goals of one module.
	Module struct {
		// Name is the module name.
		Name string `json:"name" yaml:"name"`
		// PkgPath is the import path of the generated package.
		PkgPath string `json:"pkg_path" yaml:"pkg_path"`
		// PkgName is the name of the generated package.
		PkgName string `json:"pkg_name" yaml:"pkg_name"`
		// Goals lists the generated goals in declaration order.
		Goals []*Goal `json:"goals" yaml:"goals"`
		// Slots lists the pool slots of the pooled goals.
		Slots []*lifecycle.Slot `json:"slots,omitempty" yaml:"slots,omitempty"`
		// Diagnostics lists the goals that could not be generated.
		Diagnostics []*Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	}

	// Goal holds the descriptors generated for one goal.
	Goal struct {
		// Name is the goal name.
		Name string `json:"name" yaml:"name"`
		// Kind is the goal kind.
		Kind expr.GoalKind `json:"kind" yaml:"kind"`
		// Exported is true when generated identifiers are exported.
		Exported bool `json:"exported" yaml:"exported"`
		// Vars lists every type variable of the goal, instance variables
		// first.
		Vars []*desc.Var `json:"vars,omitempty" yaml:"vars,omitempty"`
		// Result is the goal result, nil when the goal returns nothing.
		Result *expr.TypeRef `json:"result,omitempty" yaml:"result,omitempty"`
		// Contract lists the step interfaces.
		Contract *Contract `json:"contract" yaml:"contract"`
		// Impl is the type implementing every step.
		Impl *desc.Implementation `json:"impl" yaml:"impl"`
		// Entry creates the implementation and returns the first step.
		Entry *desc.Method `json:"entry" yaml:"entry"`
		// Updater is the updater of the goal, nil when not generated.
		Updater *Updater `json:"updater,omitempty" yaml:"updater,omitempty"`
	}

	// Contract is the ordered list of step interfaces of a goal.
	Contract struct {
		// Steps lists the steps in chain order.
		Steps []*step.Step `json:"steps" yaml:"steps"`
	}

	// Updater describes the updater of a goal: an unordered set of
	// methods replacing the values copied from an existing instance.
	Updater struct {
		// Name is the updater interface name.
		Name string `json:"name" yaml:"name"`
		// Type is the updater interface type.
		Type *expr.TypeRef `json:"type" yaml:"type"`
		// TypeParams are the type parameters of the updater interface.
		TypeParams []*desc.Var `json:"type_params,omitempty" yaml:"type_params,omitempty"`
		// Methods lists the value setting methods, each returning the
		// updater.
		Methods []*desc.Method `json:"methods" yaml:"methods"`
		// Finish invokes the goal with the accumulated values.
		Finish *desc.Method `json:"finish" yaml:"finish"`
		// Impl is the type implementing the updater.
		Impl *desc.Implementation `json:"impl" yaml:"impl"`
		// Entry creates the updater from an existing value.
		Entry *desc.Method `json:"entry" yaml:"entry"`
	}
)

// FinishMethod is the name of the method completing an updater.
const FinishMethod = "Done"

// Generate synthesizes the descriptors of every goal of m. Goals that
// cannot be generated are reported in the returned module diagnostics.
func Generate(m *ir.Module) *Module {
	out := &Module{Name: m.Name, PkgPath: m.PkgPath, PkgName: m.PkgName}
	v := newValidator()
	for _, g := range m.Goals {
		if err := v.validate(g); err != nil {
			out.Diagnostics = append(out.Diagnostics, &Diagnostic{Goal: g.Name, Err: err})
			continue
		}
		goal, slots, err := synthesize(g)
		if err != nil {
			out.Diagnostics = append(out.Diagnostics, &Diagnostic{Goal: g.Name, Err: err})
			continue
		}
		out.Goals = append(out.Goals, goal)
		out.Slots = append(out.Slots, slots...)
	}
	return out
}

func synthesize(g *ir.Goal) (*Goal, []*lifecycle.Slot, error) {
	s, err := newSynth(g)
	if err != nil {
		return nil, nil, err
	}
	builder := lifecycle.For(g, s.names.builderImpl)
	chain, err := step.Build(&step.Input{
		Goal:     g,
		Graph:    s.graph,
		Locals:   s.names.locals,
		Taken:    s.names.taken,
		Receiver: s.receiver,
		Exit:     builder.Exit,
	})
	if err != nil {
		return nil, nil, err
	}
	goal := &Goal{
		Name:     g.Name,
		Kind:     g.Kind,
		Exported: g.Exported(),
		Vars:     s.vars,
		Result:   g.Result,
		Contract: &Contract{Steps: chain.Steps},
		Impl: &desc.Implementation{
			Name:       s.names.builderImpl,
			TypeParams: s.vars,
			Fields:     chain.Fields,
			Receiver:   s.receiver,
			Pooled:     builder.Pooled(),
		},
		Entry: s.entry(builder, s.names.builderEntry, chain.Steps[0].This, nil),
	}
	var slots []*lifecycle.Slot
	if builder.Pooled() {
		slots = append(slots, builder.Slot)
	}
	if g.Updater {
		updater := lifecycle.For(g, s.names.updaterImpl)
		goal.Updater = s.updater(updater)
		if updater.Pooled() {
			slots = append(slots, updater.Slot)
		}
	}
	return goal, slots, nil
}

// packages returns the last element of the import path of every package
// referenced by g.
func packages(g *ir.Goal) []string {
	var names []string
	add := func(pkgPath string) {
		if pkgPath == "" {
			return
		}
		if n := path.Base(pkgPath); !slices.Contains(names, n) {
			names = append(names, n)
		}
	}
	visit := func(t *expr.TypeRef) {
		t.Walk(func(n *expr.TypeRef) bool {
			add(n.PkgPath)
			return true
		})
	}
	add(g.TargetPkg)
	visit(g.Receiver)
	visit(g.Result)
	for _, v := range g.Vars() {
		for _, b := range v.Bounds {
			visit(b)
		}
	}
	for _, t := range g.Throws {
		visit(t)
	}
	for _, p := range g.Params {
		visit(p.Type)
	}
	return names
}
