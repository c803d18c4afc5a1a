package ir

import (
	"fmt"
	"slices"
	"strings"

	"goa.design/goa/v3/eval"

	"goa.design/goa-builder/codegen/naming"
	"goa.design/goa-builder/expr"
)

// Defaults holds the values applied to goals that leave a setting open.
type Defaults struct {
	// Lifecycle applies to goals that select neither Pooled nor Fresh.
	Lifecycle expr.Lifecycle
}

// Build constructs a Design IR from evaluated design roots.
func Build(roots []eval.Root, defaults Defaults) (*Design, error) {
	var root *expr.RootExpr
	for _, r := range roots {
		if br, ok := r.(*expr.RootExpr); ok {
			root = br
			break
		}
	}
	if root == nil {
		return nil, fmt.Errorf("builder root not found in eval roots")
	}
	modules := make([]*Module, 0, len(root.Modules))
	for _, m := range root.Modules {
		if m == nil {
			continue
		}
		modules = append(modules, FromModule(m, defaults))
	}
	slices.SortFunc(modules, func(a, b *Module) int {
		return strings.Compare(a.Name, b.Name)
	})
	return &Design{Modules: modules}, nil
}

// FromModule converts a module expression into its IR. Goals keep their
// declaration order so generation output follows the design.
func FromModule(m *expr.ModuleExpr, defaults Defaults) *Module {
	if defaults.Lifecycle == "" {
		defaults.Lifecycle = expr.LifecycleFresh
	}
	pkgName := m.PkgName
	if pkgName == "" {
		pkgName = m.PkgPath[strings.LastIndexByte(m.PkgPath, '/')+1:]
	}
	goals := make([]*Goal, 0, len(m.Goals))
	for _, g := range m.Goals {
		if g == nil {
			continue
		}
		goals = append(goals, goalFromExpr(g, defaults))
	}
	return &Module{
		Name:    m.Name,
		PkgPath: m.PkgPath,
		PkgName: pkgName,
		Goals:   goals,
	}
}

func goalFromExpr(g *expr.GoalExpr, defaults Defaults) *Goal {
	access := g.Access
	if access == "" {
		access = expr.AccessPublic
	}
	lifecycle := g.Lifecycle
	if lifecycle == "" {
		lifecycle = defaults.Lifecycle
	}
	params := make([]*Param, 0, len(g.Params))
	for _, p := range g.Params {
		params = append(params, paramFromExpr(g, p))
	}
	return &Goal{
		Name:         g.Name,
		Kind:         g.Kind,
		TargetPkg:    g.TargetPkg,
		Target:       g.Target,
		Receiver:     g.Receiver,
		Result:       g.Result,
		InstanceVars: typeVars(g.InstanceVars),
		CallVars:     typeVars(g.CallVars),
		Params:       params,
		Throws:       slices.Clone(g.Throws),
		Access:       access,
		Lifecycle:    lifecycle,
		Updater:      g.HasUpdater(),
	}
}

func paramFromExpr(g *expr.GoalExpr, p *expr.ParamExpr) *Param {
	nulls := p.Nulls
	if nulls == "" {
		nulls = expr.NullAllow
	}
	out := &Param{
		Name:      p.Name,
		Type:      p.Type,
		Nulls:     nulls,
		StepIndex: -1,
		Mutator:   p.Mutator,
		Field:     p.Field,
	}
	if p.StepIndex != nil {
		out.StepIndex = *p.StepIndex
	}
	if pr := p.Projection; pr != nil {
		out.Projection = &Projection{Kind: pr.Kind, Name: pr.Name, Throws: slices.Clone(pr.Throws)}
	}
	if c := p.Collection; c != nil {
		elem := c.Element
		if elem == nil {
			elem = p.Type.Elem()
		}
		singular := c.Singular
		if singular == "" {
			singular = naming.Singular(p.Name)
		}
		out.Collection = &Collection{
			Element:  elem,
			Singular: singular,
			Empty:    !c.NoEmpty,
			Single:   !c.NoSingle,
		}
	}
	switch g.Kind {
	case expr.GoalBean:
		if out.Mutator == "" {
			out.Mutator = "Set" + naming.Ident(p.Name, true)
		}
	case expr.GoalConstructor:
		if out.Field == "" {
			if p.Projection != nil && p.Projection.Kind == expr.ProjectionField {
				out.Field = p.Projection.Name
			} else {
				out.Field = naming.Ident(p.Name, true)
			}
		}
	}
	return out
}

func typeVars(vars []*expr.TypeVarExpr) []*TypeVar {
	if len(vars) == 0 {
		return nil
	}
	out := make([]*TypeVar, len(vars))
	for i, v := range vars {
		out[i] = &TypeVar{Name: v.Name, Bounds: slices.Clone(v.Bounds)}
	}
	return out
}
