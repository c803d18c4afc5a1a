package step

import (
	"maps"

	"goa.design/goa-builder/codegen/desc"
	"goa.design/goa-builder/codegen/ir"
	"goa.design/goa-builder/codegen/naming"
	"goa.design/goa-builder/expr"
)

// Setter is one method accepting the value of a parameter: the plain
// method or one of the collection shortcuts.
type Setter struct {
	// Name is the method name.
	Name string
	// Params lists the formal parameters.
	Params []*desc.Field
	// Body stores the value into the target.
	Body []*desc.Stmt
}

// GuardFor returns the null guard applied to param read from source, or nil
// when the parameter accepts nil or its type cannot hold nil. Parameters
// typed with a type variable are guarded: the variable may be instantiated
// with a nilable type.
func GuardFor(p *ir.Param, source string) *desc.Stmt {
	if p.Nulls != expr.NullReject || !p.Type.MayBeNil() {
		return nil
	}
	return &desc.Stmt{Kind: desc.StmtGuard, Source: source, Label: p.Name, Type: p.Type}
}

// ElemLabel returns the label of null argument failures raised for the
// elements of a collection parameter, or the empty string when elements are
// not guarded.
func ElemLabel(p *ir.Param) string {
	c := p.Collection
	if c == nil || p.Nulls != expr.NullReject || !c.Element.MayBeNil() {
		return ""
	}
	return p.Name + " (element)"
}

// Sequence returns the type of the argument of collection sequence methods.
func Sequence(elem *expr.TypeRef) *expr.TypeRef {
	seq := expr.Named("iter", "Seq", elem)
	seq.Nilable = true
	return seq
}

// Setters returns the methods accepting p. The value is stored into target,
// a field of the implementation or, when local is true, a local variable
// declared by the method body. taken holds the identifiers in use in the
// method bodies; it is not modified.
func Setters(p *ir.Param, target string, local bool, taken map[string]bool) []*Setter {
	c := p.Collection
	if c == nil {
		body := guards(GuardFor(p, target))
		if !local {
			body = append(body, &desc.Stmt{Kind: desc.StmtStore, Target: target, Source: target})
		}
		return []*Setter{{
			Name:   naming.Method(p.Name),
			Params: []*desc.Field{{Name: target, Type: p.Type, Param: p.Name}},
			Body:   body,
		}}
	}

	names := maps.Clone(taken)
	names[target] = true
	seq := naming.Unique("seq", names)
	elem := naming.Unique("elem", names)
	seqType := Sequence(c.Element)
	guarded := *p
	guarded.Type = seqType
	seqGuard := GuardFor(&guarded, seq)
	setters := []*Setter{{
		Name:   naming.Method(p.Name),
		Params: []*desc.Field{{Name: seq, Type: seqType, Param: p.Name}},
		Body: append(guards(seqGuard), &desc.Stmt{
			Kind:      desc.StmtCollect,
			Target:    target,
			Local:     local,
			Source:    seq,
			Elem:      elem,
			ElemLabel: ElemLabel(p),
			Type:      p.Type,
			Guarded:   seqGuard != nil,
		}),
	}}
	if c.Empty {
		setters = append(setters, &Setter{
			Name: naming.EmptyMethod(p.Name),
			Body: []*desc.Stmt{{Kind: desc.StmtStoreEmpty, Target: target, Local: local, Type: p.Type}},
		})
	}
	if c.Single {
		single := naming.Unique(naming.Local(c.Singular), names)
		var body []*desc.Stmt
		if label := ElemLabel(p); label != "" {
			body = append(body, &desc.Stmt{Kind: desc.StmtGuard, Source: single, Label: label, Type: c.Element})
		}
		setters = append(setters, &Setter{
			Name:   naming.Method(c.Singular),
			Params: []*desc.Field{{Name: single, Type: c.Element, Param: p.Name}},
			Body: append(body, &desc.Stmt{
				Kind:   desc.StmtStoreSingle,
				Target: target,
				Local:  local,
				Source: single,
				Type:   p.Type,
			}),
		})
	}
	return setters
}

func guards(s *desc.Stmt) []*desc.Stmt {
	if s == nil {
		return nil
	}
	return []*desc.Stmt{s}
}
