// Package typevar models the declared type variables of a goal and the
// references between them.
//
// A variable references another when the other occurs in one of its bounds.
// ReferencedBy answers which declared variables a type depends on, following
// bounds transitively so that a variable bounded by another keeps that other
// variable in scope wherever it is used.
package typevar

import (
	"errors"
	"fmt"
	"slices"

	"goa.design/goa-builder/codegen/ir"
	"goa.design/goa-builder/expr"
)

var (
	// ErrDuplicateTypeVar indicates a type variable declared twice on the
	// same goal.
	ErrDuplicateTypeVar = errors.New("duplicate type variable")
	// ErrBoundCycle indicates type variables bounded by each other directly.
	ErrBoundCycle = errors.New("type variable bound cycle")
)

type (
	// Graph holds the declared variables of one goal in declaration order.
	Graph struct {
		vars  []*ir.TypeVar
		index map[string]int
		edges []Set
	}

	// Set is a set of variables of a graph, kept as ascending declaration
	// indexes so iteration follows declaration order.
	Set []int
)

// New builds the graph of the given variables. It returns
// ErrDuplicateTypeVar when two variables share a name.
func New(vars ...*ir.TypeVar) (*Graph, error) {
	g := &Graph{
		vars:  vars,
		index: make(map[string]int, len(vars)),
	}
	for i, v := range vars {
		if _, ok := g.index[v.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTypeVar, v.Name)
		}
		g.index[v.Name] = i
	}
	g.edges = make([]Set, len(vars))
	for i, v := range vars {
		var s Set
		visited := make([]bool, len(vars))
		for _, b := range v.Bounds {
			s = s.Union(g.collect(b, visited))
		}
		g.edges[i] = s
	}
	return g, nil
}

// Len returns the number of declared variables.
func (g *Graph) Len() int {
	return len(g.vars)
}

// Of returns the set of the named variables, ignoring undeclared names.
func (g *Graph) Of(names ...string) Set {
	var s Set
	for _, n := range names {
		if i, ok := g.index[n]; ok {
			s = s.Union(Set{i})
		}
	}
	return s
}

// Edges returns the variables reachable through the bounds of variable i.
func (g *Graph) Edges(i int) Set {
	return g.edges[i]
}

// ReferencedBy returns every declared variable occurring in t. Type
// arguments and elements are visited recursively and a bare variable
// reference also contributes the variables its bounds reference,
// transitively. Undeclared variable names are ignored.
func (g *Graph) ReferencedBy(t *expr.TypeRef) Set {
	return g.collect(t, make([]bool, len(g.vars)))
}

func (g *Graph) collect(t *expr.TypeRef, visited []bool) Set {
	var s Set
	t.Walk(func(n *expr.TypeRef) bool {
		if n.Kind != expr.VarKind {
			return true
		}
		i, ok := g.index[n.Name]
		if !ok || visited[i] {
			return false
		}
		visited[i] = true
		s = s.Union(Set{i})
		for _, b := range g.vars[i].Bounds {
			s = s.Union(g.collect(b, visited))
		}
		return false
	})
	return s
}

// BoundCycle returns the names of variables forming a cycle of bare bounds
// (a variable bounded directly by another variable), or nil. Cycles through
// type arguments such as T bounded by Ordered[T] are well formed and not
// reported.
func (g *Graph) BoundCycle() []string {
	const (
		unvisited = iota
		active
		done
	)
	state := make([]int, len(g.vars))
	var stack []int
	var cycle []string
	var visit func(i int) bool
	visit = func(i int) bool {
		state[i] = active
		stack = append(stack, i)
		for _, b := range g.vars[i].Bounds {
			if b.Kind != expr.VarKind {
				continue
			}
			j, ok := g.index[b.Name]
			if !ok {
				continue
			}
			switch state[j] {
			case active:
				start := slices.Index(stack, j)
				for _, k := range stack[start:] {
					cycle = append(cycle, g.vars[k].Name)
				}
				return true
			case unvisited:
				if visit(j) {
					return true
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[i] = done
		return false
	}
	for i := range g.vars {
		if state[i] == unvisited && visit(i) {
			return cycle
		}
	}
	return nil
}

// Names returns the names of the variables in s.
func (g *Graph) Names(s Set) []string {
	names := make([]string, len(s))
	for i, v := range s {
		names[i] = g.vars[v].Name
	}
	return names
}

// Vars returns the variables in s.
func (g *Graph) Vars(s Set) []*ir.TypeVar {
	vars := make([]*ir.TypeVar, len(s))
	for i, v := range s {
		vars[i] = g.vars[v]
	}
	return vars
}

// Contains reports whether i is in s.
func (s Set) Contains(i int) bool {
	_, ok := slices.BinarySearch(s, i)
	return ok
}

// Union returns the variables in s or o.
func (s Set) Union(o Set) Set {
	out := make(Set, 0, len(s)+len(o))
	i, j := 0, 0
	for i < len(s) && j < len(o) {
		switch {
		case s[i] < o[j]:
			out = append(out, s[i])
			i++
		case s[i] > o[j]:
			out = append(out, o[j])
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	out = append(out, s[i:]...)
	return append(out, o[j:]...)
}

// Intersect returns the variables in both s and o.
func (s Set) Intersect(o Set) Set {
	var out Set
	for _, v := range s {
		if o.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// Minus returns the variables in s but not in o.
func (s Set) Minus(o Set) Set {
	var out Set
	for _, v := range s {
		if !o.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// Equal reports whether s and o hold the same variables.
func (s Set) Equal(o Set) bool {
	return slices.Equal(s, o)
}
