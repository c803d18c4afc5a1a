package varlife

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"goa.design/goa-builder/codegen/ir"
	"goa.design/goa-builder/codegen/typevar"
	"goa.design/goa-builder/expr"
)

func graph(t *testing.T, vars ...*ir.TypeVar) *typevar.Graph {
	t.Helper()
	g, err := typevar.New(vars...)
	require.NoError(t, err)
	return g
}

func names(g *typevar.Graph, sets []typevar.Set) [][]string {
	out := make([][]string, len(sets))
	for i, s := range sets {
		out[i] = g.Names(s)
	}
	return out
}

func TestResolveIndependentVars(t *testing.T) {
	g := graph(t, &ir.TypeVar{Name: "K"}, &ir.TypeVar{Name: "V"})
	list := expr.Named("example.com/c", "List", expr.Var("K"))

	lt := Resolve(g, nil, []*expr.TypeRef{list}, expr.Var("V"))
	require.Equal(t, [][]string{{"K"}, {"V"}}, names(g, lt.Life))
	require.Equal(t, [][]string{{}}, names(g, lt.Interface))
	require.Equal(t, [][]string{{"K", "V"}}, names(g, lt.Method))

	lt = Resolve(g, nil, []*expr.TypeRef{list, expr.Var("V")}, nil)
	require.Equal(t, [][]string{{"K"}, {"V"}, {}}, names(g, lt.Life))
	require.Equal(t, [][]string{{}, {}}, names(g, lt.Interface))
	require.Equal(t, [][]string{{"K"}, {"V"}}, names(g, lt.Method))
}

func TestResolveCompositeThenComponents(t *testing.T) {
	g := graph(t, &ir.TypeVar{Name: "K"}, &ir.TypeVar{Name: "V"})
	m := expr.Map(expr.Var("K"), expr.Var("V"))

	lt := Resolve(g, nil, []*expr.TypeRef{m, expr.Var("K")}, expr.Var("V"))
	require.Equal(t, [][]string{{"K", "V"}, {"K", "V"}, {"V"}}, names(g, lt.Life))
	require.Equal(t, [][]string{{}, {"K", "V"}}, names(g, lt.Interface))
	require.Equal(t, [][]string{{"K", "V"}, {}}, names(g, lt.Method))

	lt = Resolve(g, nil, []*expr.TypeRef{m, expr.Var("K"), expr.Var("V")}, nil)
	require.Equal(t, [][]string{{"K", "V"}, {"K", "V"}, {"V"}, {}}, names(g, lt.Life))
	require.Equal(t, [][]string{{}, {"K", "V"}, {"V"}}, names(g, lt.Interface))
	require.Equal(t, [][]string{{"K", "V"}, {}, {}}, names(g, lt.Method))
}

func TestResolveGapKeepsVariableOpen(t *testing.T) {
	g := graph(t, &ir.TypeVar{Name: "T"})
	lt := Resolve(g, nil, []*expr.TypeRef{expr.Var("T"), expr.Basic("int"), expr.Slice(expr.Var("T"))}, nil)
	require.Equal(t, [][]string{{"T"}, {"T"}, {"T"}, {}}, names(g, lt.Life))
	require.Equal(t, [][]string{{}, {"T"}, {"T"}}, names(g, lt.Interface))
}

func TestResolveInstanceVars(t *testing.T) {
	g := graph(t, &ir.TypeVar{Name: "E"}, &ir.TypeVar{Name: "R"})
	instance := g.Of("E")
	lt := Resolve(g, instance, []*expr.TypeRef{expr.Basic("string"), expr.Var("R")}, expr.Var("R"))
	require.Equal(t, [][]string{{"E"}, {"E"}}, names(g, lt.Interface))
	require.Equal(t, [][]string{{}, {"R"}}, names(g, lt.Method))
	require.Equal(t, []string{"E", "R"}, g.Names(lt.Open(instance, 0)))
	require.Equal(t, []string{"E", "R"}, g.Names(lt.Open(instance, 1)))
}

func TestResolveBoundsExtendLife(t *testing.T) {
	g := graph(t, &ir.TypeVar{Name: "S"}, &ir.TypeVar{Name: "V", Bounds: []*expr.TypeRef{expr.Var("S")}})
	lt := Resolve(g, nil, []*expr.TypeRef{expr.Var("S"), expr.Basic("int"), expr.Var("V")}, nil)
	require.Equal(t, [][]string{{"S"}, {"S"}, {"S", "V"}, {}}, names(g, lt.Life))
	require.Equal(t, [][]string{{}, {"S"}, {"S"}}, names(g, lt.Interface))
	require.Equal(t, [][]string{{"S"}, {}, {"V"}}, names(g, lt.Method))
}

var propVars = []string{"A", "B", "C", "D"}

func slotType(mask uint8) *expr.TypeRef {
	var args []*expr.TypeRef
	for i, n := range propVars {
		if mask&(1<<i) != 0 {
			args = append(args, expr.Var(n))
		}
	}
	return expr.Named("example.com/p", "T", args...)
}

func propGraph() *typevar.Graph {
	vars := make([]*ir.TypeVar, len(propVars))
	for i, n := range propVars {
		vars[i] = &ir.TypeVar{Name: n}
	}
	g, _ := typevar.New(vars...)
	return g
}

func TestResolveScopingProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	g := propGraph()

	resolve := func(masks []uint8, result uint8, inst uint8) (*Lifetimes, []*expr.TypeRef, typevar.Set) {
		params := make([]*expr.TypeRef, len(masks))
		for i, m := range masks {
			params[i] = slotType(m)
		}
		instance := g.ReferencedBy(slotType(inst & 0x3))
		return Resolve(g, instance, params, slotType(result)), params, instance
	}

	properties.Property("every slot is scoped by its step", prop.ForAll(
		func(masks []uint8, result uint8, inst uint8) bool {
			if len(masks) == 0 {
				return true
			}
			lt, params, _ := resolve(masks, result, inst)
			for i, p := range params {
				scope := lt.Interface[i].Union(lt.Method[i])
				if !g.ReferencedBy(p).Minus(scope).Equal(nil) {
					return false
				}
			}
			last := len(params) - 1
			scope := lt.Interface[last].Union(lt.Method[last])
			return g.ReferencedBy(slotType(result)).Minus(scope).Equal(nil)
		},
		gen.SliceOf(gen.UInt8Range(0, 15)),
		gen.UInt8Range(0, 15),
		gen.UInt8Range(0, 3),
	))

	properties.Property("interfaces never reference unscoped variables", prop.ForAll(
		func(masks []uint8, result uint8, inst uint8) bool {
			if len(masks) == 0 {
				return true
			}
			lt, _, instance := resolve(masks, result, inst)
			if !lt.Interface[0].Equal(instance) {
				return false
			}
			for i := 1; i < len(masks); i++ {
				prev := lt.Interface[i-1].Union(lt.Method[i-1])
				if !lt.Interface[i].Minus(prev).Equal(nil) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt8Range(0, 15)),
		gen.UInt8Range(0, 15),
		gen.UInt8Range(0, 3),
	))

	properties.Property("interface and method variables are disjoint", prop.ForAll(
		func(masks []uint8, result uint8, inst uint8) bool {
			lt, _, _ := resolve(masks, result, inst)
			for i := range masks {
				if !lt.Interface[i].Intersect(lt.Method[i]).Equal(nil) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt8Range(0, 15)),
		gen.UInt8Range(0, 15),
		gen.UInt8Range(0, 3),
	))

	properties.Property("life spans are contiguous", prop.ForAll(
		func(masks []uint8, result uint8) bool {
			lt, _, _ := resolve(masks, result, 0)
			for v := range g.Len() {
				state := 0
				for _, l := range lt.Life {
					in := l.Contains(v)
					switch {
					case state == 0 && in:
						state = 1
					case state == 1 && !in:
						state = 2
					case state == 2 && in:
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt8Range(0, 15)),
		gen.UInt8Range(0, 15),
	))

	properties.TestingRun(t)
}
