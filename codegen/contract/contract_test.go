package contract_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"goa.design/goa-builder/codegen/contract"
	"goa.design/goa-builder/codegen/desc"
	"goa.design/goa-builder/codegen/ir"
	"goa.design/goa-builder/codegen/testhelpers"
	. "goa.design/goa-builder/dsl"
	"goa.design/goa-builder/expr"
)

const geo = "example.com/geometry"

func geometryDesign() {
	Module("geometry", func() {
		Package("example.com/geometry/gen/builders")
		Goal("Point", func() {
			Constructor(Named(geo, "Point"))
			Param("x", Int, func() { FieldRead("X") })
			Param("y", Int, func() { FieldRead("Y") })
			Pooled()
		})
		Goal("Polygon", func() {
			Constructor(PointerTo(Named(geo, "Polygon")))
			Param("name", String, func() { FieldRead("Name") })
			Param("vertices", SliceOf(PointerTo(Named(geo, "Point"))), func() {
				Reject()
				FieldRead("Vertices")
				Collection(func() { Singular("vertex") })
			})
		})
		Goal("Pair", func() {
			TypeVar("K", Comparable)
			TypeVar("V")
			StaticMethod(geo, "MakePair", Named(geo, "Pair", Var("K"), Var("V")))
			Param("key", Var("K"), func() { Accessor("Key") })
			Param("value", Var("V"), func() {
				Accessor("Value")
				Throws()
			})
		})
		Goal("Translate", func() {
			InstanceMethod(PointerTo(Named(geo, "Canvas")), "Translate", nil)
			Param("dx", Int)
			Param("dy", Int)
			Throws()
		})
	})
}

func TestGenerateDeterministic(t *testing.T) {
	first := contract.Generate(testhelpers.BuildModule(t, "geometry", geometryDesign))
	second := contract.Generate(testhelpers.BuildModule(t, "geometry", geometryDesign))
	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	require.JSONEq(t, string(a), string(b))
	require.Empty(t, first.Diagnostics)
	require.Len(t, first.Goals, 4)
}

func TestGenerateDescriptors(t *testing.T) {
	m := contract.Generate(testhelpers.BuildModule(t, "geometry", geometryDesign))

	point := m.Goals[0]
	require.Equal(t, "NewPointBuilder", point.Entry.Name)
	require.Equal(t, contract.ScopeType, point.Entry.Params[0].Type)
	require.Equal(t, desc.StmtAcquire, point.Entry.Body[0].Kind)
	require.True(t, point.Impl.Pooled)
	require.Len(t, point.Impl.Fields, 1)
	require.NotNil(t, point.Updater)
	require.Equal(t, "PointUpdater", point.Updater.Name)
	require.Equal(t, contract.FinishMethod, point.Updater.Finish.Name)
	require.Len(t, m.Slots, 2)
	require.Equal(t, "pointBuilderImpl", m.Slots[0].Name)
	require.Equal(t, "pointUpdaterImpl", m.Slots[1].Name)

	polygon := m.Goals[1]
	require.Equal(t, desc.StmtAllocate, polygon.Entry.Body[0].Kind)
	require.Empty(t, polygon.Entry.Params)
	var names []string
	for _, meth := range polygon.Updater.Methods {
		names = append(names, meth.Name)
	}
	require.Equal(t, []string{"Name", "Vertices", "EmptyVertices", "Vertex"}, names)
	for _, meth := range polygon.Updater.Methods {
		require.True(t, meth.Result.Equal(polygon.Updater.Type))
	}

	pair := m.Goals[2]
	require.Len(t, pair.Vars, 2)
	require.Len(t, pair.Updater.Entry.Throws, 1)
	require.Len(t, pair.Contract.Steps[1].Methods[0].Throws, 1)
	require.Len(t, pair.Updater.TypeParams, 2)

	translate := m.Goals[3]
	require.Nil(t, translate.Updater)
	require.NotNil(t, translate.Impl.Receiver)
	require.Equal(t, "receiver", translate.Entry.Params[0].Name)
	last := translate.Contract.Steps[1].Methods[0]
	require.Nil(t, last.Result)
	require.Len(t, last.Throws, 1)
}

func TestDiagnosticsIsolateGoals(t *testing.T) {
	intT := expr.Basic("int")
	param := func(name string, idx int) *ir.Param {
		return &ir.Param{Name: name, Type: intT, Nulls: expr.NullAllow, StepIndex: idx, Field: name}
	}
	goal := func(name string, params ...*ir.Param) *ir.Goal {
		return &ir.Goal{
			Name:   name,
			Kind:   expr.GoalConstructor,
			Result: expr.Named(geo, "Point"),
			Params: params,
			Access: expr.AccessPublic,
		}
	}
	cyclic := goal("Cyclic", param("a", -1))
	cyclic.CallVars = []*ir.TypeVar{
		{Name: "A", Bounds: []*expr.TypeRef{expr.Var("B")}},
		{Name: "B", Bounds: []*expr.TypeRef{expr.Var("A")}},
	}
	dupVar := goal("DupVar", param("a", -1))
	dupVar.CallVars = []*ir.TypeVar{{Name: "T"}, {Name: "T"}}
	m := &ir.Module{
		Name:    "m",
		PkgPath: "example.com/m",
		PkgName: "m",
		Goals: []*ir.Goal{
			goal("First", param("a", -1)),
			goal("first", param("b", -1)),
			goal("Ordered", param("a", 1), param("b", 1)),
			cyclic,
			goal("Empty"),
			dupVar,
			goal("Last", param("a", 1), param("b", 0)),
		},
	}
	out := contract.Generate(m)

	var generated []string
	for _, g := range out.Goals {
		generated = append(generated, g.Name)
	}
	require.Equal(t, []string{"First", "Last"}, generated)

	want := map[string]error{
		"first":   contract.ErrDuplicateGoal,
		"Ordered": contract.ErrStepOrder,
		"Cyclic":  contract.ErrBoundCycle,
		"Empty":   contract.ErrNoParams,
		"DupVar":  contract.ErrDuplicateTypeVar,
	}
	require.Len(t, out.Diagnostics, len(want))
	for _, d := range out.Diagnostics {
		require.Truef(t, errors.Is(d, want[d.Goal]), "goal %s: %v", d.Goal, d.Err)
	}
}

func TestDiagnosticMarshal(t *testing.T) {
	d := &contract.Diagnostic{Goal: "Point", Err: contract.ErrNoParams}
	b, err := json.Marshal(d)
	require.NoError(t, err)
	require.JSONEq(t, `{"goal":"Point","error":"goal declares no parameters"}`, string(b))
	y, err := yaml.Marshal(d)
	require.NoError(t, err)
	require.Contains(t, string(y), "goal: Point")
	require.Equal(t, `goal "Point": goal declares no parameters`, d.Error())
}

func TestLocalsAvoidPackageNames(t *testing.T) {
	m := &ir.Module{
		Name:    "m",
		PkgPath: "example.com/m",
		PkgName: "m",
		Goals: []*ir.Goal{{
			Name:   "Shape",
			Kind:   expr.GoalConstructor,
			Result: expr.Named(geo, "Shape"),
			Params: []*ir.Param{
				{Name: "geometry", Type: expr.Basic("string"), Nulls: expr.NullAllow, StepIndex: -1, Field: "Geometry"},
				{Name: "v", Type: expr.Basic("int"), Nulls: expr.NullAllow, StepIndex: -1, Field: "V"},
			},
			Access: expr.AccessPublic,
		}},
	}
	out := contract.Generate(m)
	require.Empty(t, out.Diagnostics)
	fields := out.Goals[0].Impl.Fields
	require.Equal(t, "geometry1", fields[0].Name)
	inv := out.Goals[0].Contract.Steps[1].Methods[0].Body
	require.Equal(t, "v1", inv[len(inv)-1].Invoke.Args[1].Local)
}
