package ir_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"goa.design/goa/v3/eval"

	"goa.design/goa-builder/codegen/ir"
	"goa.design/goa-builder/codegen/testhelpers"
	. "goa.design/goa-builder/dsl"
	"goa.design/goa-builder/expr"
)

const shapes = "example.com/shapes"

func shapesDesign() {
	Module("zeta", func() {
		Package("example.com/shapes/gen/zeta")
		Goal("Circle", func() {
			Constructor(PointerTo(Named(shapes, "Circle")))
			Param("radius", Float64)
		})
	})
	Module("alpha", func() {
		Package("example.com/shapes/gen/alpha", "alphabuilders")
		Goal("Square", func() {
			Bean(PointerTo(Named(shapes, "Square")))
			Param("side", Float64, func() { Accessor("Side") })
			Param("tags", SliceOf(String), func() {
				Accessor("Tags")
				Collection()
			})
			Unexported()
		})
		Goal("Label", func() {
			Constructor(Named(shapes, "Label"))
			Param("text", String, func() {
				FieldRead("Text")
				Reject()
				StepIndex(1)
			})
			Param("size", Int, func() { StepIndex(0) })
			Pooled()
		})
	})
}

func TestBuildSortsModules(t *testing.T) {
	roots := testhelpers.RunDesign(t, shapesDesign)
	d, err := ir.Build(roots, ir.Defaults{})
	require.NoError(t, err)
	require.Len(t, d.Modules, 2)
	require.Equal(t, "alpha", d.Modules[0].Name)
	require.Equal(t, "alphabuilders", d.Modules[0].PkgName)
	require.Equal(t, "zeta", d.Modules[1].Name)
	require.Equal(t, "zeta", d.Modules[1].PkgName)
	require.Equal(t, []string{"Square", "Label"}, []string{d.Modules[0].Goals[0].Name, d.Modules[0].Goals[1].Name})
}

func TestBuildDeterministic(t *testing.T) {
	build := func() []byte {
		d, err := ir.Build(testhelpers.RunDesign(t, shapesDesign), ir.Defaults{})
		require.NoError(t, err)
		b, err := json.Marshal(d)
		require.NoError(t, err)
		return b
	}
	require.JSONEq(t, string(build()), string(build()))
}

func TestBuildDefaults(t *testing.T) {
	m := testhelpers.BuildModule(t, "alpha", shapesDesign)

	square := m.Goals[0]
	require.Equal(t, expr.AccessPackage, square.Access)
	require.False(t, square.Exported())
	require.Equal(t, expr.LifecycleFresh, square.Lifecycle)
	require.True(t, square.Updater)
	side := square.Params[0]
	require.Equal(t, "SetSide", side.Mutator)
	require.Equal(t, expr.NullAllow, side.Nulls)
	require.Equal(t, -1, side.StepIndex)
	tags := square.Params[1]
	require.NotNil(t, tags.Collection)
	require.Equal(t, expr.Basic("string"), tags.Collection.Element)
	require.Equal(t, "tag", tags.Collection.Singular)
	require.True(t, tags.Collection.Empty)
	require.True(t, tags.Collection.Single)

	label := m.Goals[1]
	require.True(t, label.Pooled())
	require.True(t, label.Exported())
	require.False(t, label.Updater)
	text := label.Params[0]
	require.Equal(t, "Text", text.Field)
	require.Equal(t, expr.NullReject, text.Nulls)
	require.Equal(t, 1, text.StepIndex)
	size := label.Params[1]
	require.Equal(t, "Size", size.Field)
	require.Equal(t, 0, size.StepIndex)
}

func TestBuildLifecycleDefault(t *testing.T) {
	roots := testhelpers.RunDesign(t, shapesDesign)
	d, err := ir.Build(roots, ir.Defaults{Lifecycle: expr.LifecyclePooled})
	require.NoError(t, err)
	require.True(t, d.Modules[1].Goals[0].Pooled())
	require.Equal(t, expr.LifecyclePooled, d.Modules[0].Goals[0].Lifecycle)
}

func TestBuildMissingRoot(t *testing.T) {
	_, err := ir.Build([]eval.Root{}, ir.Defaults{})
	require.Error(t, err)
}
