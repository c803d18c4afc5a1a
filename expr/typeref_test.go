package expr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeRefString(t *testing.T) {
	cases := []struct {
		name string
		t    *TypeRef
		want string
	}{
		{"basic", Basic("int"), "int"},
		{"var", Var("K"), "K"},
		{"local named", Named("", "Scope"), "Scope"},
		{"qualified", Named("example.com/geo", "Point"), "geo.Point"},
		{"generic", Named("example.com/geo", "Pair", Var("K"), Basic("string")), "geo.Pair[K, string]"},
		{"pointer", Pointer(Named("example.com/geo", "Point")), "*geo.Point"},
		{"slice", Slice(Pointer(Var("T"))), "[]*T"},
		{"map", Map(Basic("string"), Slice(Basic("int"))), "map[string][]int"},
		{"approx", &TypeRef{Kind: BasicKind, Name: "int", Approx: true}, "~int"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.t.String())
		})
	}
}

func TestTypeRefFormat(t *testing.T) {
	ref := Map(Named("example.com/geo", "Key"), Named("example.com/other/geo", "Value"))
	got := ref.Format(func(pkgPath string) string {
		if pkgPath == "example.com/geo" {
			return ""
		}
		return "geo2"
	})
	require.Equal(t, "map[Key]geo2.Value", got)
}

func TestTypeRefNilability(t *testing.T) {
	nilable := Named("example.com/geo", "Shape")
	nilable.Nilable = true
	cases := []struct {
		name   string
		t      *TypeRef
		canNil bool
		mayNil bool
		scalar bool
	}{
		{"int", Basic("int"), false, false, true},
		{"bool", Basic("bool"), false, false, true},
		{"string", Basic("string"), false, false, false},
		{"error", Basic("error"), true, true, false},
		{"any", Basic("any"), true, true, false},
		{"pointer", Pointer(Basic("int")), true, true, false},
		{"slice", Slice(Basic("int")), true, true, false},
		{"map", Map(Basic("int"), Basic("int")), true, true, false},
		{"struct", Named("example.com/geo", "Point"), false, false, false},
		{"interface", nilable, true, true, false},
		{"type var", Var("T"), false, true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.canNil, c.t.CanBeNil())
			require.Equal(t, c.mayNil, c.t.MayBeNil())
			require.Equal(t, c.scalar, c.t.IsScalar())
		})
	}
}

func TestTypeRefEqual(t *testing.T) {
	a := Named("example.com/geo", "Pair", Var("K"), Var("V"))
	b := Named("example.com/geo", "Pair", Var("K"), Var("V"))
	c := Named("example.com/geo", "Pair", Var("V"), Var("K"))
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))
	require.True(t, (*TypeRef)(nil).Equal(nil))
	require.Equal(t, Var("V"), a.Args[1])
	require.Nil(t, Basic("int").Elem())
	require.Equal(t, Basic("string"), Map(Basic("string"), Basic("int")).Key())
}

func TestTypeRefWalk(t *testing.T) {
	ref := Map(Named("example.com/a", "A"), Slice(Named("example.com/b", "B", Var("T"))))
	var pkgs []string
	var vars []string
	ref.Walk(func(n *TypeRef) bool {
		if n.PkgPath != "" {
			pkgs = append(pkgs, n.PkgPath)
		}
		if n.Kind == VarKind {
			vars = append(vars, n.Name)
		}
		return true
	})
	require.Equal(t, []string{"example.com/a", "example.com/b"}, pkgs)
	require.Equal(t, []string{"T"}, vars)
}
