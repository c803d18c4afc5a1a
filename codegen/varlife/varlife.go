// Package varlife computes the lifetime of generic type variables across the
// steps of a builder chain.
//
// The chain is described by its slots: one per parameter in step order,
// followed by the goal result. A variable is alive from the first slot that
// references it to the last one. Step interfaces carry the variables that
// were already alive at the previous step; the remaining alive variables are
// introduced by the step method.
package varlife

import (
	"goa.design/goa-builder/codegen/typevar"
	"goa.design/goa-builder/expr"
)

// Lifetimes is the result of Resolve for a chain of n steps.
type Lifetimes struct {
	// Life holds, for each of the n+1 slots, the variables alive at that
	// slot.
	Life []typevar.Set
	// Interface holds, for each step, the variables the step interface is
	// parameterized by.
	Interface []typevar.Set
	// Method holds, for each step, the variables introduced by the step
	// method.
	Method []typevar.Set
}

// Span is the closed range of slots referencing a variable.
type Span struct {
	First, Last int
}

// Spans returns the span of every variable of g over slots. Variables that
// no slot references are absent from the result.
func Spans(g *typevar.Graph, slots []*expr.TypeRef) map[int]Span {
	spans := make(map[int]Span)
	for i, t := range slots {
		for _, v := range g.ReferencedBy(t) {
			s, ok := spans[v]
			if !ok {
				s.First = i
			}
			s.Last = i
			spans[v] = s
		}
	}
	return spans
}

// Resolve computes the lifetimes of the variables of g over the chain made
// of params followed by result. result may be nil for goals that return
// nothing. Variables in instance are fixed before the chain starts and are
// carried by every step interface.
func Resolve(g *typevar.Graph, instance typevar.Set, params []*expr.TypeRef, result *expr.TypeRef) *Lifetimes {
	slots := make([]*expr.TypeRef, 0, len(params)+1)
	slots = append(slots, params...)
	slots = append(slots, result)

	spans := Spans(g, slots)
	life := make([]typevar.Set, len(slots))
	for i := range slots {
		var s typevar.Set
		for v := range g.Len() {
			if sp, ok := spans[v]; ok && sp.First <= i && i <= sp.Last {
				s = s.Union(typevar.Set{v})
			}
		}
		life[i] = s
	}

	n := len(params)
	lt := &Lifetimes{
		Life:      life,
		Interface: make([]typevar.Set, n),
		Method:    make([]typevar.Set, n),
	}
	for i := range n {
		iface := instance
		if i > 0 {
			iface = iface.Union(life[i].Intersect(life[i-1]))
		}
		alive := life[i]
		if i == n-1 {
			alive = alive.Union(life[n])
		}
		lt.Interface[i] = iface
		lt.Method[i] = alive.Minus(iface)
	}
	return lt
}

// Open returns the variables still unresolved when step i is reached: the
// instance variables and every variable alive at step i or any later slot.
// Back ends whose methods cannot declare type parameters parameterize step
// i with this set.
func (lt *Lifetimes) Open(instance typevar.Set, i int) typevar.Set {
	s := instance
	for _, l := range lt.Life[i:] {
		s = s.Union(l)
	}
	return s
}
