// Package loader reads designs written in YAML. A YAML design declares the
// same modules, goals and parameters as the Go DSL; Load validates the
// document against the embedded JSON schema, resolves its types and returns
// a DSL function suitable for eval.Execute.
//
//	modules:
//	  - name: geometry
//	    package: example.com/geometry/gen/builders
//	    goals:
//	      - name: Point
//	        constructor: example.com/geometry.Point
//	        lifecycle: pooled
//	        params:
//	          - {name: x, type: int, field: X}
//	          - {name: y, type: int, field: Y}
package loader

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"goa.design/goa-builder/dsl"
	"goa.design/goa-builder/expr"
)

//go:embed schema.json
var schemaJSON []byte

type (
	// Document is a YAML design.
	Document struct {
		Modules []*ModuleDoc `yaml:"modules"`
	}

	// ModuleDoc declares a module.
	ModuleDoc struct {
		Name        string     `yaml:"name"`
		Package     string     `yaml:"package"`
		PackageName string     `yaml:"package_name"`
		Goals       []*GoalDoc `yaml:"goals"`
	}

	// GoalDoc declares a goal. Exactly one of Constructor, Static, Instance
	// and Bean is set.
	GoalDoc struct {
		Name             string       `yaml:"name"`
		Constructor      string       `yaml:"constructor"`
		Bean             string       `yaml:"bean"`
		Static           *StaticDoc   `yaml:"static"`
		Instance         *InstanceDoc `yaml:"instance"`
		TypeVars         []*VarDoc    `yaml:"type_vars"`
		InstanceTypeVars []*VarDoc    `yaml:"instance_type_vars"`
		Throws           bool         `yaml:"throws"`
		Lifecycle        string       `yaml:"lifecycle"`
		Unexported       bool         `yaml:"unexported"`
		Updater          *bool        `yaml:"updater"`
		Params           []*ParamDoc  `yaml:"params"`
	}

	// StaticDoc selects a package level function.
	StaticDoc struct {
		Package string `yaml:"package"`
		Func    string `yaml:"func"`
		Result  string `yaml:"result"`
	}

	// InstanceDoc selects a method.
	InstanceDoc struct {
		Receiver string `yaml:"receiver"`
		Method   string `yaml:"method"`
		Result   string `yaml:"result"`
	}

	// VarDoc declares a type variable.
	VarDoc struct {
		Name   string   `yaml:"name"`
		Bounds []string `yaml:"bounds"`
	}

	// ParamDoc declares a parameter.
	ParamDoc struct {
		Name        string         `yaml:"name"`
		Type        string         `yaml:"type"`
		Nulls       string         `yaml:"nulls"`
		Accessor    string         `yaml:"accessor"`
		Field       string         `yaml:"field"`
		Throws      bool           `yaml:"throws"`
		Mutator     string         `yaml:"mutator"`
		StructField string         `yaml:"struct_field"`
		Step        *int           `yaml:"step"`
		Collection  *CollectionDoc `yaml:"collection"`
	}

	// CollectionDoc enables the collection shortcut. Empty and Single
	// default to true.
	CollectionDoc struct {
		Singular string `yaml:"singular"`
		Empty    *bool  `yaml:"empty"`
		Single   *bool  `yaml:"single"`
	}
)

// Load reads, validates and resolves the YAML design at path.
func Load(path string) (func(), error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read design: %w", err)
	}
	design, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return design, nil
}

// Parse validates and resolves a YAML design.
func Parse(b []byte) (func(), error) {
	if err := Validate(b); err != nil {
		return nil, err
	}
	var doc Document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode design: %w", err)
	}
	return doc.Design()
}

// Validate checks b against the design schema.
func Validate(b []byte) error {
	var raw any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode design: %w", err)
	}
	// Round trip through JSON so the validator sees JSON values.
	js, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("convert design: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(js))
	if err != nil {
		return fmt.Errorf("convert design: %w", err)
	}
	schema, err := compileSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("invalid design: %w", err)
	}
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// Design resolves the types of the document and returns the equivalent DSL
// function.
func (d *Document) Design() (func(), error) {
	modules := make([]func(), 0, len(d.Modules))
	for _, m := range d.Modules {
		fn, err := m.design()
		if err != nil {
			return nil, fmt.Errorf("module %q: %w", m.Name, err)
		}
		modules = append(modules, fn)
	}
	return func() {
		for _, fn := range modules {
			fn()
		}
	}, nil
}

func (m *ModuleDoc) design() (func(), error) {
	goals := make([]func(), 0, len(m.Goals))
	for _, g := range m.Goals {
		fn, err := g.design()
		if err != nil {
			return nil, fmt.Errorf("goal %q: %w", g.Name, err)
		}
		goals = append(goals, fn)
	}
	return func() {
		dsl.Module(m.Name, func() {
			if m.PackageName != "" {
				dsl.Package(m.Package, m.PackageName)
			} else {
				dsl.Package(m.Package)
			}
			for _, fn := range goals {
				fn()
			}
		})
	}, nil
}

// typeVar is a resolved type variable declaration.
type typeVar struct {
	name     string
	bounds   []*expr.TypeRef
	instance bool
}

func (g *GoalDoc) design() (func(), error) {
	vars := make(map[string]bool)
	for _, v := range append(append([]*VarDoc{}, g.InstanceTypeVars...), g.TypeVars...) {
		vars[v.Name] = true
	}
	parse := func(s string) (*expr.TypeRef, error) {
		if s == "" {
			return nil, nil
		}
		return ParseType(s, vars)
	}

	var decls []typeVar
	for i, list := range [][]*VarDoc{g.InstanceTypeVars, g.TypeVars} {
		for _, v := range list {
			tv := typeVar{name: v.Name, instance: i == 0}
			for _, b := range v.Bounds {
				t, err := parse(b)
				if err != nil {
					return nil, fmt.Errorf("type variable %q: %w", v.Name, err)
				}
				tv.bounds = append(tv.bounds, t)
			}
			decls = append(decls, tv)
		}
	}

	invocable, err := g.invocable(parse)
	if err != nil {
		return nil, err
	}
	params := make([]func(), 0, len(g.Params))
	for _, p := range g.Params {
		fn, err := p.design(parse)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", p.Name, err)
		}
		params = append(params, fn)
	}

	return func() {
		dsl.Goal(g.Name, func() {
			for _, v := range decls {
				if v.instance {
					dsl.InstanceTypeVar(v.name, v.bounds...)
				} else {
					dsl.TypeVar(v.name, v.bounds...)
				}
			}
			invocable()
			for _, fn := range params {
				fn()
			}
			if g.Throws {
				dsl.Throws()
			}
			switch g.Lifecycle {
			case "pooled":
				dsl.Pooled()
			case "fresh":
				dsl.Fresh()
			}
			if g.Unexported {
				dsl.Unexported()
			}
			if g.Updater != nil && !*g.Updater {
				dsl.NoUpdater()
			}
		})
	}, nil
}

func (g *GoalDoc) invocable(parse func(string) (*expr.TypeRef, error)) (func(), error) {
	switch {
	case g.Constructor != "":
		t, err := parse(g.Constructor)
		if err != nil {
			return nil, err
		}
		return func() { dsl.Constructor(t) }, nil
	case g.Bean != "":
		t, err := parse(g.Bean)
		if err != nil {
			return nil, err
		}
		return func() { dsl.Bean(t) }, nil
	case g.Static != nil:
		res, err := parse(g.Static.Result)
		if err != nil {
			return nil, err
		}
		s := g.Static
		return func() { dsl.StaticMethod(s.Package, s.Func, res) }, nil
	case g.Instance != nil:
		recv, err := parse(g.Instance.Receiver)
		if err != nil {
			return nil, err
		}
		res, err := parse(g.Instance.Result)
		if err != nil {
			return nil, err
		}
		method := g.Instance.Method
		return func() { dsl.InstanceMethod(recv, method, res) }, nil
	default:
		return nil, fmt.Errorf("missing invocable")
	}
}

func (p *ParamDoc) design(parse func(string) (*expr.TypeRef, error)) (func(), error) {
	t, err := parse(p.Type)
	if err != nil {
		return nil, err
	}
	return func() {
		dsl.Param(p.Name, t, func() {
			switch p.Nulls {
			case "reject":
				dsl.Reject()
			case "allow":
				dsl.Allow()
			}
			switch {
			case p.Accessor != "":
				dsl.Accessor(p.Accessor)
			case p.Field != "":
				dsl.FieldRead(p.Field)
			}
			if p.Throws {
				dsl.Throws()
			}
			if p.Mutator != "" {
				dsl.Mutator(p.Mutator)
			}
			if p.StructField != "" {
				dsl.StructField(p.StructField)
			}
			if p.Step != nil {
				dsl.StepIndex(*p.Step)
			}
			if c := p.Collection; c != nil {
				dsl.Collection(func() {
					if c.Singular != "" {
						dsl.Singular(c.Singular)
					}
					if c.Empty != nil && !*c.Empty {
						dsl.NoEmpty()
					}
					if c.Single != nil && !*c.Single {
						dsl.NoSingle()
					}
				})
			}
		})
	}, nil
}
