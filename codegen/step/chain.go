// Package step builds the staged chain of a goal: one step per parameter,
// each step exposing the methods accepting its parameter and leading to the
// next step, the last one invoking the goal.
package step

import (
	"errors"
	"fmt"
	"slices"

	"goa.design/goa-builder/codegen/desc"
	"goa.design/goa-builder/codegen/ir"
	"goa.design/goa-builder/codegen/naming"
	"goa.design/goa-builder/codegen/typevar"
	"goa.design/goa-builder/codegen/varlife"
	"goa.design/goa-builder/expr"
)

// ErrStepOrder indicates step index hints that are not a permutation of the
// parameter positions.
var ErrStepOrder = errors.New("invalid step order")

type (
	// Step describes one stage of the chain.
	Step struct {
		// This is the step interface type.
		This *expr.TypeRef `json:"this" yaml:"this"`
		// Next is the type returned by the step methods: the following step
		// interface or the goal result.
		Next *expr.TypeRef `json:"next,omitempty" yaml:"next,omitempty"`
		// Param is the name of the parameter accepted by the step.
		Param string `json:"param" yaml:"param"`
		// Interface lists the type parameters of the step interface.
		Interface []*desc.Var `json:"interface,omitempty" yaml:"interface,omitempty"`
		// Method lists the type parameters introduced by the step methods.
		Method []*desc.Var `json:"method,omitempty" yaml:"method,omitempty"`
		// Open lists every type variable unresolved when the step is
		// reached, for back ends whose methods cannot declare type
		// parameters.
		Open []*desc.Var `json:"open,omitempty" yaml:"open,omitempty"`
		// Terminal is true for the step invoking the goal.
		Terminal bool `json:"terminal" yaml:"terminal"`
		// Methods lists the step methods.
		Methods []*desc.Method `json:"methods" yaml:"methods"`
	}

	// Chain is the ordered list of steps of a goal along with the fields
	// of the implementation accumulating the parameter values.
	Chain struct {
		// Steps lists the steps in chain order.
		Steps []*Step
		// Fields lists one field per non-terminal parameter in declaration
		// order.
		Fields []*desc.Field
	}

	// Input configures Build.
	Input struct {
		// Goal is the goal to build the chain of.
		Goal *ir.Goal
		// Graph holds the type variables of the goal.
		Graph *typevar.Graph
		// Locals maps parameter names to the identifiers of the fields and
		// locals holding their values.
		Locals map[string]string
		// Taken lists the identifiers in use in method bodies.
		Taken map[string]bool
		// Receiver is the field holding the receiver of instance method
		// goals.
		Receiver *desc.Field
		// Exit returns the statements run by the terminal step before
		// invoking the goal. They must declare one local per field, named
		// after the field. The receiver field, if any, comes last.
		Exit func(fields []*desc.Field) []*desc.Stmt
	}
)

// Order returns the parameter indexes in chain order. Parameters without a
// hint keep their declaration order; hints must be given for every
// parameter or none, and form a permutation of the parameter positions.
func Order(params []*ir.Param) ([]int, error) {
	order := make([]int, len(params))
	hinted := 0
	for _, p := range params {
		if p.StepIndex >= 0 {
			hinted++
		}
	}
	if hinted == 0 {
		for i := range order {
			order[i] = i
		}
		return order, nil
	}
	if hinted != len(params) {
		return nil, fmt.Errorf("%w: %d of %d parameters declare a step index", ErrStepOrder, hinted, len(params))
	}
	seen := make([]bool, len(params))
	for i, p := range params {
		idx := p.StepIndex
		if idx >= len(params) {
			return nil, fmt.Errorf("%w: step index %d of %q out of range", ErrStepOrder, idx, p.Name)
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: step index %d used twice", ErrStepOrder, idx)
		}
		seen[idx] = true
		order[idx] = i
	}
	return order, nil
}

// Build returns the chain of in.Goal.
func Build(in *Input) (*Chain, error) {
	g := in.Goal
	order, err := Order(g.Params)
	if err != nil {
		return nil, err
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("goal %q has no parameters", g.Name)
	}
	slots := make([]*expr.TypeRef, len(order))
	for i, idx := range order {
		slots[i] = g.Params[idx].Type
	}
	instance := in.Graph.Of(varNames(g.InstanceVars)...)
	lt := varlife.Resolve(in.Graph, instance, slots, g.Result)

	last := len(order) - 1
	terminal := g.Params[order[last]]
	var fields []*desc.Field
	for _, p := range g.Params {
		if p == terminal {
			continue
		}
		fields = append(fields, &desc.Field{Name: in.Locals[p.Name], Type: p.Type, Param: p.Name})
	}

	steps := make([]*Step, len(order))
	for i, idx := range order {
		p := g.Params[idx]
		iface := vars(in.Graph, lt.Interface[i])
		steps[i] = &Step{
			This:      expr.Named("", naming.StepInterface(g.Name, p.Name, g.Exported()), desc.Refs(iface)...),
			Param:     p.Name,
			Interface: iface,
			Method:    vars(in.Graph, lt.Method[i]),
			Open:      vars(in.Graph, lt.Open(instance, i)),
			Terminal:  i == last,
		}
	}
	held := fields
	if in.Receiver != nil {
		held = append(slices.Clone(fields), in.Receiver)
	}
	throws := Throws(g)
	for i, s := range steps {
		p := g.Params[order[i]]
		if s.Terminal {
			s.Next = g.Result
		} else {
			s.Next = steps[i+1].This
		}
		local := in.Locals[p.Name]
		for _, st := range Setters(p, local, s.Terminal, in.Taken) {
			m := &desc.Method{
				Name:       st.Name,
				TypeParams: s.Method,
				Params:     st.Params,
				Result:     s.Next,
				Modifiers:  modifiers(g),
				Body:       st.Body,
			}
			if s.Terminal {
				m.Doc = fmt.Sprintf("%s sets %s and invokes %s.", st.Name, p.Name, g.Name)
				m.Throws = throws
				m.Body = append(m.Body, in.Exit(held)...)
				m.Body = append(m.Body, &desc.Stmt{Kind: desc.StmtInvoke, Invoke: Invocation(g, in.Locals, in.Receiver)})
			} else {
				m.Doc = fmt.Sprintf("%s sets %s.", st.Name, p.Name)
				if p.Projection != nil {
					m.Throws = p.Projection.Throws
				}
				m.Body = append(m.Body, &desc.Stmt{Kind: desc.StmtReturnSelf})
			}
			s.Methods = append(s.Methods, m)
		}
	}
	return &Chain{Steps: steps, Fields: fields}, nil
}

// Throws returns the errors of the terminal step: the goal errors followed
// by the errors of every projection, without duplicates.
func Throws(g *ir.Goal) []*expr.TypeRef {
	var out []*expr.TypeRef
	add := func(ts []*expr.TypeRef) {
		for _, t := range ts {
			dup := false
			for _, o := range out {
				if o.Equal(t) {
					dup = true
					break
				}
			}
			if !dup {
				out = append(out, t)
			}
		}
	}
	add(g.Throws)
	for _, p := range g.Params {
		if p.Projection != nil {
			add(p.Projection.Throws)
		}
	}
	return out
}

// Invocation returns the call of g reading every parameter from the local
// named after it in locals, in declaration order.
func Invocation(g *ir.Goal, locals map[string]string, receiver *desc.Field) *desc.Invocation {
	inv := &desc.Invocation{
		Kind:   g.Kind,
		Result: g.Result,
		Throws: g.Throws,
	}
	switch g.Kind {
	case expr.GoalStaticMethod:
		inv.Pkg = g.TargetPkg
		inv.Name = g.Target
	case expr.GoalInstanceMethod:
		inv.Name = g.Target
		if receiver != nil {
			inv.Receiver = receiver.Name
		}
	case expr.GoalConstructor, expr.GoalBean:
	}
	for _, v := range g.CallVars {
		inv.TypeArgs = append(inv.TypeArgs, expr.Var(v.Name))
	}
	for _, p := range g.Params {
		arg := &desc.Arg{Param: p.Name, Local: locals[p.Name]}
		switch g.Kind {
		case expr.GoalConstructor:
			arg.Field = p.Field
		case expr.GoalBean:
			arg.Setter = p.Mutator
		case expr.GoalStaticMethod, expr.GoalInstanceMethod:
		}
		inv.Args = append(inv.Args, arg)
	}
	return inv
}

func modifiers(g *ir.Goal) []string {
	if g.Exported() {
		return []string{"public"}
	}
	return []string{"package"}
}

func vars(g *typevar.Graph, s typevar.Set) []*desc.Var {
	if len(s) == 0 {
		return nil
	}
	out := make([]*desc.Var, len(s))
	for i, v := range g.Vars(s) {
		out[i] = &desc.Var{Name: v.Name, Bounds: v.Bounds}
	}
	return out
}

func varNames(vars []*ir.TypeVar) []string {
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name
	}
	return names
}
