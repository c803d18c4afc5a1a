// Package lifecycle decides how builder and updater implementations are
// obtained and released.
//
// Fresh implementations are allocated on every entry. Pooled implementations
// live in a scope local slot: entry reuses the slot instance unless it is in
// use by a chain that has not finished yet, in which case a new instance
// replaces it. The terminal step copies the accumulated values, clears the
// fields holding references and releases the instance before invoking the
// goal, so a reused instance never exposes values of a previous chain.
package lifecycle

import (
	"goa.design/goa-builder/codegen/desc"
	"goa.design/goa-builder/codegen/ir"
)

type (
	// Plan is the lifecycle of one implementation type.
	Plan struct {
		// Impl is the name of the implementation type.
		Impl string
		// Slot is the pool slot holding the implementation, nil when
		// instances are fresh.
		Slot *Slot
	}

	// Slot is one scope local pool slot.
	Slot struct {
		// Name is the slot name, unique in the module.
		Name string `json:"name" yaml:"name"`
		// Goal is the goal owning the slot.
		Goal string `json:"goal" yaml:"goal"`
		// Impl is the implementation type held by the slot.
		Impl string `json:"impl" yaml:"impl"`
	}
)

// For returns the plan of the implementation impl of goal g.
func For(g *ir.Goal, impl string) *Plan {
	p := &Plan{Impl: impl}
	if g.Pooled() {
		p.Slot = &Slot{Name: impl, Goal: g.Name, Impl: impl}
	}
	return p
}

// Pooled reports whether instances are reused.
func (p *Plan) Pooled() bool {
	return p.Slot != nil
}

// Enter returns the statement obtaining the implementation instance.
func (p *Plan) Enter() *desc.Stmt {
	if p.Slot == nil {
		return &desc.Stmt{Kind: desc.StmtAllocate, Impl: p.Impl}
	}
	return &desc.Stmt{Kind: desc.StmtAcquire, Impl: p.Impl, Slot: p.Slot.Name}
}

// Exit returns the statements run before the goal is invoked: every field
// is copied to a local of the same name and, for pooled implementations,
// the fields holding references are cleared and the instance released.
func (p *Plan) Exit(fields []*desc.Field) []*desc.Stmt {
	stmts := make([]*desc.Stmt, 0, 2*len(fields)+1)
	for _, f := range fields {
		stmts = append(stmts, &desc.Stmt{Kind: desc.StmtSnapshot, Target: f.Name, Source: f.Name, Type: f.Type})
	}
	if p.Slot == nil {
		return stmts
	}
	for _, f := range fields {
		if f.Type.IsScalar() {
			continue
		}
		stmts = append(stmts, &desc.Stmt{Kind: desc.StmtClear, Target: f.Name, Type: f.Type})
	}
	return append(stmts, &desc.Stmt{Kind: desc.StmtRelease, Slot: p.Slot.Name})
}
