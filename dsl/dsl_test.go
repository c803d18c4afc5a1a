package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goa.design/goa-builder/codegen/testhelpers"
	. "goa.design/goa-builder/dsl"
	"goa.design/goa-builder/expr"
)

const pkg = "example.com/store"

func TestGoalDSL(t *testing.T) {
	testhelpers.RunDesign(t, func() {
		Module("store", func() {
			Package("example.com/store/gen/builders")
			Goal("Order", func() {
				Bean(PointerTo(Named(pkg, "Order")))
				Param("id", String, func() {
					Accessor("ID")
					Mutator("SetIdentifier")
				})
				Param("items", SliceOf(PointerTo(Named(pkg, "Item"))), func() {
					Reject()
					Accessor("Items")
					Throws()
					Collection(func() {
						Singular("line")
						NoEmpty()
					})
				})
				Throws()
				Pooled()
			})
		})
	})

	require.Len(t, expr.Root.Modules, 1)
	m := expr.Root.Modules[0]
	require.Equal(t, "builders", m.PkgName)
	require.Len(t, m.Goals, 1)
	g := m.Goals[0]
	require.Equal(t, expr.GoalBean, g.Kind)
	require.Equal(t, expr.AccessPublic, g.Access)
	require.Equal(t, expr.LifecyclePooled, g.Lifecycle)
	require.Equal(t, []*expr.TypeRef{Error}, g.Throws)
	require.True(t, g.HasUpdater())

	id := g.Params[0]
	require.Equal(t, "SetIdentifier", id.Mutator)
	require.Equal(t, expr.NullAllow, id.Nulls)
	require.Equal(t, expr.ProjectionAccessor, id.Projection.Kind)

	items := g.Params[1]
	require.Equal(t, expr.NullReject, items.Nulls)
	require.Equal(t, []*expr.TypeRef{Error}, items.Projection.Throws)
	require.NotNil(t, items.Collection)
	require.Equal(t, "line", items.Collection.Singular)
	require.True(t, items.Collection.NoEmpty)
	require.False(t, items.Collection.NoSingle)
	require.True(t, items.Collection.Element.Equal(PointerTo(Named(pkg, "Item"))))
}

func TestTypeVarsDSL(t *testing.T) {
	testhelpers.RunDesign(t, func() {
		Module("cache", func() {
			Package("example.com/cache/gen")
			Goal("Put", func() {
				InstanceTypeVar("E", Approx(String))
				InstanceMethod(PointerTo(Named(pkg, "Cache", Var("E"))), "Put", nil)
				Param("value", Var("E"))
				Unexported()
				NoUpdater()
			})
		})
	})

	g := expr.Root.Modules[0].Goals[0]
	require.Equal(t, expr.GoalInstanceMethod, g.Kind)
	require.Equal(t, expr.AccessPackage, g.Access)
	require.Len(t, g.InstanceVars, 1)
	require.True(t, g.InstanceVars[0].Bounds[0].Approx)
	require.False(t, String.Approx)
	require.False(t, g.HasUpdater())
}

func TestDSLValidation(t *testing.T) {
	cases := []struct {
		name   string
		design func()
		want   string
	}{
		{
			name: "missing package",
			design: func() {
				Module("m", func() {
					Goal("G", func() {
						Constructor(Named(pkg, "G"))
						Param("a", Int)
					})
				})
			},
			want: "package path is required",
		},
		{
			name: "no parameters",
			design: func() {
				Module("m", func() {
					Package("example.com/m")
					Goal("G", func() { Constructor(Named(pkg, "G")) })
				})
			},
			want: "at least one parameter",
		},
		{
			name: "constructor of basic type",
			design: func() {
				Module("m", func() {
					Package("example.com/m")
					Goal("G", func() {
						Constructor(Int)
						Param("a", Int)
					})
				})
			},
			want: "must produce a named type",
		},
		{
			name: "partial step indexes",
			design: func() {
				Module("m", func() {
					Package("example.com/m")
					Goal("G", func() {
						Constructor(Named(pkg, "G"))
						Param("a", Int, func() { StepIndex(0) })
						Param("b", Int)
					})
				})
			},
			want: "all parameters or none",
		},
		{
			name: "collection of non slice",
			design: func() {
				Module("m", func() {
					Package("example.com/m")
					Goal("G", func() {
						Constructor(Named(pkg, "G"))
						Param("a", Int, func() { Collection() })
					})
				})
			},
			want: "require a slice type",
		},
		{
			name: "duplicate goal",
			design: func() {
				Module("m", func() {
					Package("example.com/m")
					Goal("G", func() {
						Constructor(Named(pkg, "G"))
						Param("a", Int)
					})
					Goal("g", func() {
						Constructor(Named(pkg, "G"))
						Param("a", Int)
					})
				})
			},
			want: "duplicates",
		},
		{
			name: "reserved pooled parameter",
			design: func() {
				Module("m", func() {
					Package("example.com/m")
					Goal("G", func() {
						Constructor(Named(pkg, "G"))
						Param("inUse", Bool)
						Pooled()
					})
				})
			},
			want: "reserved for pooled goals",
		},
		{
			name: "throws outside projection",
			design: func() {
				Module("m", func() {
					Package("example.com/m")
					Goal("G", func() {
						Constructor(Named(pkg, "G"))
						Param("a", Int, func() { Throws() })
					})
				})
			},
			want: "must follow Accessor",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := testhelpers.RunDesignError(t, c.design)
			require.Error(t, err)
			require.Contains(t, err.Error(), c.want)
		})
	}
}
