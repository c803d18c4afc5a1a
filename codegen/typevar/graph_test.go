package typevar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"goa.design/goa-builder/codegen/ir"
	"goa.design/goa-builder/expr"
)

func tv(name string, bounds ...*expr.TypeRef) *ir.TypeVar {
	return &ir.TypeVar{Name: name, Bounds: bounds}
}

func TestReferencedBy(t *testing.T) {
	g, err := New(tv("K"), tv("V", expr.Var("S")), tv("S"), tv("U"))
	require.NoError(t, err)

	cases := []struct {
		name string
		typ  *expr.TypeRef
		want []string
	}{
		{"basic", expr.Basic("int"), []string{}},
		{"bare", expr.Var("K"), []string{"K"}},
		{"bounded pulls bound", expr.Var("V"), []string{"V", "S"}},
		{"nested args", expr.Named("example.com/c", "Map", expr.Var("K"), expr.Slice(expr.Var("U"))), []string{"K", "U"}},
		{"map of bounded", expr.Map(expr.Var("K"), expr.Var("V")), []string{"K", "V", "S"}},
		{"undeclared ignored", expr.Pointer(expr.Var("Z")), []string{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, g.Names(g.ReferencedBy(c.typ)))
		})
	}
}

func TestReferencedByFBounded(t *testing.T) {
	ordered := expr.Named("example.com/cmp", "Ordered", expr.Var("T"))
	g, err := New(tv("T", ordered))
	require.NoError(t, err)
	require.Equal(t, []string{"T"}, g.Names(g.ReferencedBy(expr.Slice(expr.Var("T")))))
	require.Equal(t, []string{"T"}, g.Names(g.Edges(0)))
	require.Nil(t, g.BoundCycle())
}

func TestReferencedByTransitiveCycle(t *testing.T) {
	a := tv("A", expr.Named("", "Box", expr.Var("B")))
	b := tv("B", expr.Named("", "Box", expr.Var("A")))
	g, err := New(a, b)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, g.Names(g.ReferencedBy(expr.Var("A"))))
	require.Nil(t, g.BoundCycle())
}

func TestDuplicateTypeVar(t *testing.T) {
	_, err := New(tv("K"), tv("K"))
	require.True(t, errors.Is(err, ErrDuplicateTypeVar))
}

func TestBoundCycle(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		g, err := New(tv("T", expr.Var("T")))
		require.NoError(t, err)
		require.Equal(t, []string{"T"}, g.BoundCycle())
	})
	t.Run("pair", func(t *testing.T) {
		g, err := New(tv("X"), tv("A", expr.Var("B")), tv("B", expr.Var("A")))
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B"}, g.BoundCycle())
	})
	t.Run("chain", func(t *testing.T) {
		g, err := New(tv("A", expr.Var("B")), tv("B", expr.Var("C")), tv("C"))
		require.NoError(t, err)
		require.Nil(t, g.BoundCycle())
	})
}

func TestSetOperations(t *testing.T) {
	a := Set{0, 2, 4}
	b := Set{1, 2, 3}
	require.Equal(t, Set{0, 1, 2, 3, 4}, a.Union(b))
	require.Equal(t, Set{2}, a.Intersect(b))
	require.Equal(t, Set{0, 4}, a.Minus(b))
	require.True(t, a.Contains(4))
	require.False(t, a.Contains(3))
	require.True(t, Set(nil).Equal(Set{}))
}

func TestOf(t *testing.T) {
	g, err := New(tv("K"), tv("V"))
	require.NoError(t, err)
	require.Equal(t, Set{0, 1}, g.Of("V", "K", "missing"))
	require.Equal(t, []string{"K", "V"}, g.Names(g.Of("V", "K")))
}
