// Package golang renders the builder, updater and scope descriptors of a
// module as Go source files.
//
// Go methods cannot declare type parameters: step interfaces are generic
// over every type variable still unresolved when the step is reached, and
// the implementation and entry functions over every variable of the goal.
// Non-terminal steps never return errors; only the call of the goal does.
package golang

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"strings"

	"goa.design/goa/v3/codegen"

	"goa.design/goa-builder/codegen/contract"
	"goa.design/goa-builder/codegen/desc"
	"goa.design/goa-builder/codegen/lifecycle"
	"goa.design/goa-builder/codegen/naming"
	"goa.design/goa-builder/expr"
)

var (
	// ErrGenericMethod indicates an instance method goal declaring its own
	// type variables.
	ErrGenericMethod = errors.New("generic methods cannot be invoked from Go")
	// ErrVarBound indicates a type variable bounded by another type
	// variable.
	ErrVarBound = errors.New("type variable bounds cannot be type variables in Go")
	// ErrMethodClash indicates two generated methods of the same type
	// sharing a name.
	ErrMethodClash = errors.New("method name clash")
)

type (
	// builderFileData is the data of the builder template.
	builderFileData struct {
		Steps   []*interfaceData
		Impl    *implData
		Entry   *funcData
		Methods []*methodData
		Recv    string
	}

	// updaterFileData is the data of the updater template.
	updaterFileData struct {
		Interface *interfaceData
		Impl      *implData
		Entry     *funcData
		Methods   []*methodData
		Recv      string
	}

	// scopeFileData is the data of the scope template.
	scopeFileData struct {
		Slots    []*lifecycle.Slot
		SlotType string
	}

	interfaceData struct {
		Doc        string
		Name       string
		TypeParams string
		Methods    []*methodData
	}

	implData struct {
		Doc        string
		Name       string
		TypeParams string
		TypeArgs   string
		Embed      string
		Fields     []*fieldData
	}

	fieldData struct {
		Name string
		Type string
	}

	funcData struct {
		Doc        string
		Name       string
		TypeParams string
		Params     string
		Results    string
		Body       string
	}

	methodData struct {
		Doc       string
		Signature string
		Body      string
	}
)

// Files returns the Go files of m. Files are written under the directory
// of the module package relative to root, the import path of the output
// directory. Goals that cannot be expressed in Go are left out and reported
// as diagnostics.
func Files(m *contract.Module, root string) ([]*codegen.File, []*contract.Diagnostic) {
	dir := Dir(m, root)
	var (
		files []*codegen.File
		diags []*contract.Diagnostic
		slots []*lifecycle.Slot
	)
	for _, g := range m.Goals {
		gf, err := goalFiles(m, g, dir)
		if err != nil {
			diags = append(diags, &contract.Diagnostic{Goal: g.Name, Err: err})
			continue
		}
		files = append(files, gf...)
		for _, s := range m.Slots {
			if s.Goal == g.Name {
				slots = append(slots, s)
			}
		}
	}
	if len(slots) > 0 {
		files = append(files, scopeFile(m, dir, slots))
	}
	return files, diags
}

// Dir returns the directory of the files of m relative to the output
// directory whose import path is root.
func Dir(m *contract.Module, root string) string {
	switch {
	case root != "" && m.PkgPath == root:
		return "."
	case root != "" && strings.HasPrefix(m.PkgPath, root+"/"):
		return filepath.FromSlash(strings.TrimPrefix(m.PkgPath, root+"/"))
	default:
		return m.PkgName
	}
}

func goalFiles(m *contract.Module, g *contract.Goal, dir string) ([]*codegen.File, error) {
	if err := validate(g); err != nil {
		return nil, err
	}
	base := naming.FileBase(g.Name, "goal")
	imports := newImportSet(m.PkgPath)
	data, err := builderData(g, imports)
	if err != nil {
		return nil, err
	}
	files := []*codegen.File{{
		Path: filepath.Join(dir, base+"_builder.go"),
		SectionTemplates: []*codegen.SectionTemplate{
			codegen.Header(g.Name+" builder", m.PkgName, imports.specs()),
			{
				Name:    "goal-builder",
				Source:  goTemplates.Read(builderFileT),
				Data:    data,
				FuncMap: map[string]any{"comment": codegen.Comment},
			},
		},
	}}
	if g.Updater == nil {
		return files, nil
	}
	imports = newImportSet(m.PkgPath)
	udata, err := updaterData(g, imports)
	if err != nil {
		return nil, err
	}
	return append(files, &codegen.File{
		Path: filepath.Join(dir, base+"_updater.go"),
		SectionTemplates: []*codegen.SectionTemplate{
			codegen.Header(g.Name+" updater", m.PkgName, imports.specs()),
			{
				Name:    "goal-updater",
				Source:  goTemplates.Read(updaterFileT),
				Data:    udata,
				FuncMap: map[string]any{"comment": codegen.Comment},
			},
		},
	}), nil
}

func scopeFile(m *contract.Module, dir string, slots []*lifecycle.Slot) *codegen.File {
	imports := newImportSet(m.PkgPath)
	data := &scopeFileData{
		Slots:    slots,
		SlotType: imports.qualify(PoolPkg) + ".Slot",
	}
	return &codegen.File{
		Path: filepath.Join(dir, "scope.go"),
		SectionTemplates: []*codegen.SectionTemplate{
			codegen.Header("Builder scope", m.PkgName, imports.specs()),
			{
				Name:    "builder-scope",
				Source:  goTemplates.Read(scopeFileT),
				Data:    data,
				FuncMap: map[string]any{"comment": codegen.Comment},
			},
		},
	}
}

// validate reports the goals Go cannot express.
func validate(g *contract.Goal) error {
	if g.Kind == expr.GoalInstanceMethod && len(invocation(g.Contract.Steps[len(g.Contract.Steps)-1].Methods[0].Body).TypeArgs) > 0 {
		return fmt.Errorf("%w: %s", ErrGenericMethod, g.Name)
	}
	for _, v := range g.Vars {
		for _, b := range v.Bounds {
			if b.Kind == expr.VarKind {
				return fmt.Errorf("%w: %s bounded by %s", ErrVarBound, v.Name, b.Name)
			}
		}
	}
	reserved := map[string]string{}
	if g.Impl.Pooled {
		reserved["Lease"] = "pool.Lease"
		reserved["InUse"] = "pool.Lease"
	}
	seen := maps.Clone(reserved)
	for _, s := range g.Contract.Steps {
		for _, m := range s.Methods {
			if err := claim(seen, m.Name, s.Param); err != nil {
				return err
			}
		}
	}
	if g.Updater != nil {
		seen = maps.Clone(reserved)
		seen[g.Updater.Finish.Name] = g.Updater.Name
		for _, m := range g.Updater.Methods {
			owner := m.Name
			if len(m.Params) > 0 {
				owner = m.Params[0].Param
			}
			if err := claim(seen, m.Name, owner); err != nil {
				return err
			}
		}
	}
	return nil
}

func claim(seen map[string]string, method, owner string) error {
	if prev, ok := seen[method]; ok {
		return fmt.Errorf("%w: %s of %s and %s", ErrMethodClash, method, owner, prev)
	}
	seen[method] = owner
	return nil
}

func builderData(g *contract.Goal, imports *importSet) (*builderFileData, error) {
	r := &render{imports: imports, recv: "b", impl: g.Impl.Name + typeArgs(g.Impl.TypeParams)}
	steps := g.Contract.Steps
	stepType := func(i int) *expr.TypeRef {
		return expr.Named("", steps[i].This.Name, desc.Refs(steps[i].Open)...)
	}
	data := &builderFileData{Recv: r.recv}
	for i, s := range steps {
		next := g.Result
		if !s.Terminal {
			next = stepType(i + 1)
		}
		tparams, err := r.typeParams(s.Open)
		if err != nil {
			return nil, err
		}
		iface := &interfaceData{
			Doc:        fmt.Sprintf("%s is the step of the %s builder accepting %s.", s.This.Name, g.Name, s.Param),
			Name:       s.This.Name,
			TypeParams: tparams,
		}
		for _, m := range s.Methods {
			errs := s.Terminal && len(invocation(m.Body).Throws) > 0
			sig := r.signature(m.Name, m.Params, next, errs)
			iface.Methods = append(iface.Methods, &methodData{Doc: m.Doc, Signature: sig})
			data.Methods = append(data.Methods, &methodData{
				Doc:       m.Doc,
				Signature: sig,
				Body:      r.body(m.Body, errs),
			})
		}
		data.Steps = append(data.Steps, iface)
	}
	impl, err := implementation(r, g.Impl, fmt.Sprintf("%s implements the steps of the %s builder.", g.Impl.Name, g.Name))
	if err != nil {
		return nil, err
	}
	data.Impl = impl
	entry, err := entry(r, g.Entry, stepType(0))
	if err != nil {
		return nil, err
	}
	data.Entry = entry
	return data, nil
}

func updaterData(g *contract.Goal, imports *importSet) (*updaterFileData, error) {
	u := g.Updater
	r := &render{imports: imports, recv: "u", impl: u.Impl.Name + typeArgs(u.Impl.TypeParams)}
	tparams, err := r.typeParams(u.TypeParams)
	if err != nil {
		return nil, err
	}
	data := &updaterFileData{
		Recv: r.recv,
		Interface: &interfaceData{
			Doc:        fmt.Sprintf("%s replaces some of the values of an existing %s before invoking %s again.", u.Name, g.Name, g.Name),
			Name:       u.Name,
			TypeParams: tparams,
		},
	}
	add := func(m *desc.Method, result *expr.TypeRef, errs bool) {
		sig := r.signature(m.Name, m.Params, result, errs)
		data.Interface.Methods = append(data.Interface.Methods, &methodData{Doc: m.Doc, Signature: sig})
		data.Methods = append(data.Methods, &methodData{Doc: m.Doc, Signature: sig, Body: r.body(m.Body, errs)})
	}
	for _, m := range u.Methods {
		add(m, u.Type, false)
	}
	add(u.Finish, g.Result, len(invocation(u.Finish.Body).Throws) > 0)
	impl, err := implementation(r, u.Impl, fmt.Sprintf("%s implements %s.", u.Impl.Name, u.Name))
	if err != nil {
		return nil, err
	}
	data.Impl = impl
	entry, err := entry(r, u.Entry, u.Type)
	if err != nil {
		return nil, err
	}
	data.Entry = entry
	return data, nil
}

func implementation(r *render, impl *desc.Implementation, doc string) (*implData, error) {
	tparams, err := r.typeParams(impl.TypeParams)
	if err != nil {
		return nil, err
	}
	data := &implData{
		Doc:        doc,
		Name:       impl.Name,
		TypeParams: tparams,
		TypeArgs:   typeArgs(impl.TypeParams),
	}
	if impl.Pooled {
		data.Embed = r.imports.qualify(PoolPkg) + ".Lease"
	}
	fields := impl.Fields
	if impl.Receiver != nil {
		fields = append(append([]*desc.Field{}, fields...), impl.Receiver)
	}
	for _, f := range fields {
		data.Fields = append(data.Fields, &fieldData{Name: f.Name, Type: r.typ(f.Type)})
	}
	return data, nil
}

func entry(r *render, m *desc.Method, result *expr.TypeRef) (*funcData, error) {
	tparams, err := r.typeParams(m.TypeParams)
	if err != nil {
		return nil, err
	}
	r.scope = ""
	for _, p := range m.Params {
		if p.Type.Equal(contract.ScopeType) {
			r.scope = p.Name
		}
	}
	errs := len(m.Throws) > 0
	return &funcData{
		Doc:        m.Doc,
		Name:       m.Name,
		TypeParams: tparams,
		Params:     r.params(m.Params),
		Results:    r.results(result, errs),
		Body:       r.body(m.Body, errs),
	}, nil
}

// invocation returns the goal invocation ending body, nil if none.
func invocation(body []*desc.Stmt) *desc.Invocation {
	for i := len(body) - 1; i >= 0; i-- {
		if body[i].Kind == desc.StmtInvoke {
			return body[i].Invoke
		}
	}
	return nil
}
