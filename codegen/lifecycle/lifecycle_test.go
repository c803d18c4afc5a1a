package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goa.design/goa-builder/codegen/desc"
	"goa.design/goa-builder/codegen/ir"
	"goa.design/goa-builder/expr"
)

func kinds(stmts []*desc.Stmt) []desc.StmtKind {
	out := make([]desc.StmtKind, len(stmts))
	for i, s := range stmts {
		out[i] = s.Kind
	}
	return out
}

func TestFresh(t *testing.T) {
	p := For(&ir.Goal{Name: "Point", Lifecycle: expr.LifecycleFresh}, "pointBuilderImpl")
	require.False(t, p.Pooled())
	require.Equal(t, desc.StmtAllocate, p.Enter().Kind)

	fields := []*desc.Field{{Name: "x", Type: expr.Basic("int")}, {Name: "label", Type: expr.Basic("string")}}
	require.Equal(t, []desc.StmtKind{desc.StmtSnapshot, desc.StmtSnapshot}, kinds(p.Exit(fields)))
}

func TestPooled(t *testing.T) {
	p := For(&ir.Goal{Name: "Point", Lifecycle: expr.LifecyclePooled}, "pointBuilderImpl")
	require.True(t, p.Pooled())
	enter := p.Enter()
	require.Equal(t, desc.StmtAcquire, enter.Kind)
	require.Equal(t, "pointBuilderImpl", enter.Slot)
	require.Equal(t, "Point", p.Slot.Goal)

	fields := []*desc.Field{
		{Name: "x", Type: expr.Basic("int")},
		{Name: "label", Type: expr.Basic("string")},
		{Name: "next", Type: expr.Pointer(expr.Named("", "Point"))},
		{Name: "value", Type: expr.Var("T")},
	}
	exit := p.Exit(fields)
	require.Equal(t, []desc.StmtKind{
		desc.StmtSnapshot, desc.StmtSnapshot, desc.StmtSnapshot, desc.StmtSnapshot,
		desc.StmtClear, desc.StmtClear, desc.StmtClear,
		desc.StmtRelease,
	}, kinds(exit))
	var cleared []string
	for _, s := range exit {
		if s.Kind == desc.StmtClear {
			cleared = append(cleared, s.Target)
		}
	}
	require.Equal(t, []string{"label", "next", "value"}, cleared)
}
