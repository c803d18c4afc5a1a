package contract

import (
	"fmt"

	"goa.design/goa-builder/codegen/desc"
	"goa.design/goa-builder/codegen/ir"
	"goa.design/goa-builder/codegen/lifecycle"
	"goa.design/goa-builder/codegen/naming"
	"goa.design/goa-builder/codegen/step"
	"goa.design/goa-builder/codegen/typevar"
	"goa.design/goa-builder/expr"
)

type (
	// synth holds the state shared by the descriptors of one goal.
	synth struct {
		goal     *ir.Goal
		graph    *typevar.Graph
		vars     []*desc.Var
		names    *names
		receiver *desc.Field
	}

	// names holds the identifiers generated for one goal.
	names struct {
		builderImpl  string
		builderEntry string
		updater      string
		updaterImpl  string
		updaterEntry string
		// locals maps parameter names to field and local names.
		locals map[string]string
		// taken lists the identifiers used in method bodies.
		taken map[string]bool
		// value is the formal parameter of the updater entry.
		value string
		// scope is the formal parameter giving access to pool slots.
		scope string
	}
)

// ScopeType is the type giving access to the pool slots of a module.
var ScopeType = expr.Pointer(expr.Named("", "Scope"))

func newSynth(g *ir.Goal) (*synth, error) {
	graph, err := typevar.New(g.Vars()...)
	if err != nil {
		return nil, err
	}
	if cycle := graph.BoundCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %v", typevar.ErrBoundCycle, cycle)
	}
	exported := g.Exported()
	n := &names{
		builderImpl:  naming.BuilderImpl(g.Name),
		builderEntry: naming.BuilderEntry(g.Name, exported),
		updater:      naming.UpdaterInterface(g.Name, exported),
		updaterImpl:  naming.UpdaterImpl(g.Name),
		updaterEntry: naming.UpdaterEntry(g.Name, exported),
		locals:       make(map[string]string, len(g.Params)),
		taken:        naming.Taken(packages(g)...),
		value:        "v",
		scope:        "scope",
	}
	for _, p := range g.Params {
		n.locals[p.Name] = naming.Unique(naming.Local(p.Name), n.taken)
	}
	s := &synth{goal: g, graph: graph, names: n}
	for _, v := range g.Vars() {
		s.vars = append(s.vars, &desc.Var{Name: v.Name, Bounds: v.Bounds})
	}
	if g.Kind == expr.GoalInstanceMethod {
		s.receiver = &desc.Field{Name: naming.Unique("receiver", n.taken), Type: g.Receiver}
	}
	return s, nil
}

// entry returns the function creating the implementation of plan. The
// function accepts the scope when the implementation is pooled, the
// receiver of instance method goals and, when seed is not nil, the
// existing value the seed statements read the fields from.
func (s *synth) entry(plan *lifecycle.Plan, name string, result *expr.TypeRef, seed []*desc.Stmt) *desc.Method {
	g := s.goal
	m := &desc.Method{
		Name:       name,
		TypeParams: s.vars,
		Result:     result,
		Modifiers:  []string{"static"},
		Body:       []*desc.Stmt{plan.Enter()},
	}
	if g.Exported() {
		m.Modifiers = append(m.Modifiers, "public")
	} else {
		m.Modifiers = append(m.Modifiers, "package")
	}
	if plan.Pooled() {
		m.Params = append(m.Params, &desc.Field{Name: s.names.scope, Type: ScopeType})
	}
	if s.receiver != nil {
		m.Params = append(m.Params, &desc.Field{Name: s.receiver.Name, Type: s.receiver.Type})
		m.Body = append(m.Body, &desc.Stmt{Kind: desc.StmtStore, Target: s.receiver.Name, Source: s.receiver.Name})
	}
	if seed == nil {
		m.Doc = fmt.Sprintf("%s starts building %s.", name, g.Name)
	} else {
		m.Doc = fmt.Sprintf("%s returns an updater initialized with the values of %s.", name, s.names.value)
		m.Params = append(m.Params, &desc.Field{Name: s.names.value, Type: g.Result})
		m.Body = append(m.Body, seed...)
		for _, p := range g.Params {
			m.Throws = appendThrows(m.Throws, p.Projection.Throws)
		}
	}
	m.Body = append(m.Body, &desc.Stmt{Kind: desc.StmtReturnSelf})
	return m
}

// updater returns the updater descriptors. Every parameter of the goal
// declares a projection.
func (s *synth) updater(plan *lifecycle.Plan) *Updater {
	g := s.goal
	self := expr.Named("", s.names.updater, desc.Refs(s.vars)...)
	fields := make([]*desc.Field, len(g.Params))
	seed := make([]*desc.Stmt, len(g.Params))
	var methods []*desc.Method
	for i, p := range g.Params {
		local := s.names.locals[p.Name]
		fields[i] = &desc.Field{Name: local, Type: p.Type, Param: p.Name}
		seed[i] = &desc.Stmt{
			Kind:   desc.StmtProject,
			Target: local,
			Source: s.names.value,
			Label:  p.Name,
			Type:   p.Type,
			Projection: &desc.Projection{
				Kind:   p.Projection.Kind,
				Name:   p.Projection.Name,
				Throws: p.Projection.Throws,
			},
		}
		for _, st := range step.Setters(p, local, false, s.names.taken) {
			methods = append(methods, &desc.Method{
				Name:      st.Name,
				Doc:       fmt.Sprintf("%s replaces %s.", st.Name, p.Name),
				Params:    st.Params,
				Result:    self,
				Modifiers: modifiers(g),
				Body:      append(st.Body, &desc.Stmt{Kind: desc.StmtReturnSelf}),
			})
		}
	}
	held := fields
	if s.receiver != nil {
		held = append(append([]*desc.Field{}, fields...), s.receiver)
	}
	finish := &desc.Method{
		Name:      FinishMethod,
		Doc:       fmt.Sprintf("%s invokes %s with the updated values.", FinishMethod, g.Name),
		Result:    g.Result,
		Throws:    g.Throws,
		Modifiers: modifiers(g),
		Body: append(plan.Exit(held), &desc.Stmt{
			Kind:   desc.StmtInvoke,
			Invoke: step.Invocation(g, s.names.locals, s.receiver),
		}),
	}
	return &Updater{
		Name:       s.names.updater,
		Type:       self,
		TypeParams: s.vars,
		Methods:    methods,
		Finish:     finish,
		Impl: &desc.Implementation{
			Name:       s.names.updaterImpl,
			TypeParams: s.vars,
			Fields:     fields,
			Receiver:   s.receiver,
			Pooled:     plan.Pooled(),
		},
		Entry: s.entry(plan, s.names.updaterEntry, self, seed),
	}
}

func modifiers(g *ir.Goal) []string {
	if g.Exported() {
		return []string{"public"}
	}
	return []string{"package"}
}

func appendThrows(out, ts []*expr.TypeRef) []*expr.TypeRef {
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
	return out
}
