package golang

import (
	"fmt"
	"strings"

	"goa.design/goa-builder/codegen/desc"
	"goa.design/goa-builder/expr"
)

const (
	// PoolPkg is the import path of the pooling runtime.
	PoolPkg = "goa.design/goa-builder/runtime/pool"
	// GuardPkg is the import path of the null guard runtime.
	GuardPkg = "goa.design/goa-builder/runtime/guard"
)

type (
	// render turns descriptors into Go source for one method at a time.
	render struct {
		imports *importSet
		// recv is the name of the implementation variable.
		recv string
		// impl is the instantiated implementation type.
		impl string
		// scope is the name of the scope parameter of pooled entries.
		scope string
		// errs is true when the current method returns an error.
		errs bool
		// errDeclared is true once the current method declared err.
		errDeclared bool
	}

	// bodyWriter accumulates indented statements.
	bodyWriter struct {
		sb    strings.Builder
		depth int
	}
)

func (w *bodyWriter) line(format string, args ...any) {
	w.sb.WriteString(strings.Repeat("\t", w.depth+1))
	fmt.Fprintf(&w.sb, format, args...)
	w.sb.WriteByte('\n')
}

func (w *bodyWriter) open(format string, args ...any) {
	w.line(format+" {", args...)
	w.depth++
}

func (w *bodyWriter) close() {
	w.depth--
	w.line("}")
}

// typ renders t qualifying packages through the file imports.
func (r *render) typ(t *expr.TypeRef) string {
	return t.Format(r.imports.qualify)
}

// typeParams renders a type parameter list, empty when vars is empty.
func (r *render) typeParams(vars []*desc.Var) (string, error) {
	if len(vars) == 0 {
		return "", nil
	}
	elems := make([]string, len(vars))
	for i, v := range vars {
		c, err := r.constraint(v)
		if err != nil {
			return "", err
		}
		elems[i] = v.Name + " " + c
	}
	return "[" + strings.Join(elems, ", ") + "]", nil
}

func (r *render) constraint(v *desc.Var) (string, error) {
	if len(v.Bounds) == 0 {
		return "any", nil
	}
	terms := make([]string, len(v.Bounds))
	for i, b := range v.Bounds {
		if b.Kind == expr.VarKind {
			return "", fmt.Errorf("%w: %s bounded by %s", ErrVarBound, v.Name, b.Name)
		}
		terms[i] = r.typ(b)
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return "interface{ " + strings.Join(terms, "; ") + " }", nil
}

// typeArgs renders the type argument list instantiating a generic type
// with its own type parameters.
func typeArgs(vars []*desc.Var) string {
	if len(vars) == 0 {
		return ""
	}
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func (r *render) params(fields []*desc.Field) string {
	elems := make([]string, len(fields))
	for i, f := range fields {
		elems[i] = f.Name + " " + r.typ(f.Type)
	}
	return strings.Join(elems, ", ")
}

// results renders the result list of a method returning result, adding an
// error when errs is true.
func (r *render) results(result *expr.TypeRef, errs bool) string {
	switch {
	case result == nil && !errs:
		return ""
	case result == nil:
		return "error"
	case !errs:
		return r.typ(result)
	default:
		return "(" + r.typ(result) + ", error)"
	}
}

func (r *render) signature(name string, params []*desc.Field, result *expr.TypeRef, errs bool) string {
	sig := name + "(" + r.params(params) + ")"
	if res := r.results(result, errs); res != "" {
		sig += " " + res
	}
	return sig
}

// body renders the statements of a method returning an error when errs is
// true.
func (r *render) body(stmts []*desc.Stmt, errs bool) string {
	r.errs = errs
	r.errDeclared = false
	var w bodyWriter
	for _, s := range stmts {
		r.stmt(&w, s)
	}
	return w.sb.String()
}

func (r *render) stmt(w *bodyWriter, s *desc.Stmt) {
	switch s.Kind {
	case desc.StmtGuard:
		r.guard(w, s.Source, s.Label, s.Type)
	case desc.StmtAllocate:
		w.line("%s := &%s{}", r.recv, r.impl)
	case desc.StmtAcquire:
		w.line("%s := %s.Acquire[%s](&%s.%s)", r.recv, r.imports.qualify(PoolPkg), r.impl, r.scope, s.Slot)
	case desc.StmtStore:
		w.line("%s.%s = %s", r.recv, s.Target, s.Source)
	case desc.StmtCollect:
		dst := r.dest(s)
		w.line("%s %s{}", r.assign(s), r.typ(s.Type))
		if !s.Guarded {
			w.open("if %s != nil", s.Source)
		}
		w.open("for %s := range %s", s.Elem, s.Source)
		if s.ElemLabel != "" {
			r.guard(w, s.Elem, s.ElemLabel, s.Type.Elem())
		}
		w.line("%s = append(%s, %s)", dst, dst, s.Elem)
		w.close()
		if !s.Guarded {
			w.close()
		}
	case desc.StmtStoreEmpty:
		w.line("%s %s{}", r.assign(s), r.typ(s.Type))
	case desc.StmtStoreSingle:
		w.line("%s %s{%s}", r.assign(s), r.typ(s.Type), s.Source)
	case desc.StmtProject:
		r.project(w, s)
	case desc.StmtSnapshot:
		w.line("%s := %s.%s", s.Target, r.recv, s.Source)
	case desc.StmtClear:
		w.line("%s.%s = %s", r.recv, s.Target, r.zero(s.Type))
	case desc.StmtRelease:
		w.line("%s.Release(%s)", r.imports.qualify(PoolPkg), r.recv)
	case desc.StmtInvoke:
		r.invoke(w, s.Invoke)
	case desc.StmtReturnSelf:
		if r.errs {
			w.line("return %s, nil", r.recv)
		} else {
			w.line("return %s", r.recv)
		}
	}
}

// guard renders the null check of source. Values of type parameters cannot
// be compared against nil and are checked at run time.
func (r *render) guard(w *bodyWriter, source, label string, t *expr.TypeRef) {
	if t != nil && t.Kind == expr.VarKind {
		w.open("if %s.IsNil(%s)", r.imports.qualify(GuardPkg), source)
	} else {
		w.open("if %s == nil", source)
	}
	w.line("panic(%s.NullArgument(%q))", r.imports.qualify(GuardPkg), label)
	w.close()
}

// dest returns the expression designating the target of s.
func (r *render) dest(s *desc.Stmt) string {
	if s.Local {
		return s.Target
	}
	return r.recv + "." + s.Target
}

// assign returns the left hand side of the statement initializing the
// target of s.
func (r *render) assign(s *desc.Stmt) string {
	if s.Local {
		return s.Target + " :="
	}
	return r.recv + "." + s.Target + " ="
}

func (r *render) project(w *bodyWriter, s *desc.Stmt) {
	dst := r.recv + "." + s.Target
	p := s.Projection
	switch {
	case p.Kind == expr.ProjectionField:
		w.line("%s = %s.%s", dst, s.Source, p.Name)
	case len(p.Throws) == 0:
		w.line("%s = %s.%s()", dst, s.Source, p.Name)
	default:
		if !r.errDeclared {
			w.line("var err error")
			r.errDeclared = true
		}
		w.open("if %s, err = %s.%s(); err != nil", dst, s.Source, p.Name)
		w.line("return nil, %s.Errorf(%q, err)", r.imports.qualify("fmt"), s.Label+": %w")
		w.close()
	}
}

func (r *render) invoke(w *bodyWriter, inv *desc.Invocation) {
	throws := len(inv.Throws) > 0
	ret := func(v string) {
		if throws {
			w.line("return %s, nil", v)
		} else {
			w.line("return %s", v)
		}
	}
	switch inv.Kind {
	case expr.GoalConstructor:
		fields := make([]string, len(inv.Args))
		for i, a := range inv.Args {
			fields[i] = a.Field + ": " + a.Local
		}
		lit := "{" + strings.Join(fields, ", ") + "}"
		if inv.Result.Kind == expr.PointerKind {
			ret("&" + r.typ(inv.Result.Elem()) + lit)
		} else {
			ret(r.typ(inv.Result) + lit)
		}
	case expr.GoalBean:
		if inv.Result.Kind == expr.PointerKind {
			w.line("v := new(%s)", r.typ(inv.Result.Elem()))
		} else {
			w.line("var v %s", r.typ(inv.Result))
		}
		for _, a := range inv.Args {
			w.line("v.%s(%s)", a.Setter, a.Local)
		}
		ret("v")
	case expr.GoalStaticMethod, expr.GoalInstanceMethod:
		call := r.call(inv)
		if inv.Result == nil && !throws {
			w.line("%s", call)
		} else {
			w.line("return %s", call)
		}
	}
}

func (r *render) call(inv *desc.Invocation) string {
	var sb strings.Builder
	if inv.Kind == expr.GoalInstanceMethod {
		sb.WriteString(inv.Receiver)
		sb.WriteByte('.')
	} else if q := r.imports.qualify(inv.Pkg); q != "" {
		sb.WriteString(q)
		sb.WriteByte('.')
	}
	sb.WriteString(inv.Name)
	if len(inv.TypeArgs) > 0 {
		args := make([]string, len(inv.TypeArgs))
		for i, t := range inv.TypeArgs {
			args[i] = r.typ(t)
		}
		sb.WriteString("[" + strings.Join(args, ", ") + "]")
	}
	args := make([]string, len(inv.Args))
	for i, a := range inv.Args {
		args[i] = a.Local
	}
	sb.WriteString("(" + strings.Join(args, ", ") + ")")
	return sb.String()
}

// zero renders the zero value of t.
func (r *render) zero(t *expr.TypeRef) string {
	switch {
	case t.CanBeNil():
		return "nil"
	case t.Kind == expr.BasicKind && t.Name == "string":
		return `""`
	default:
		return "*new(" + r.typ(t) + ")"
	}
}
