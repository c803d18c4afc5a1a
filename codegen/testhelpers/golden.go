// Package testhelpers provides shared test utilities for codegen packages.
package testhelpers

import (
	"bytes"
	"go/format"
	"maps"
	"path/filepath"
	"testing"
	"text/template"

	"github.com/stretchr/testify/require"
	gcodegen "goa.design/goa/v3/codegen"
	"goa.design/goa/v3/eval"

	"goa.design/goa-builder/codegen/ir"
	"goa.design/goa-builder/expr"
)

// SetupEvalRoots initializes and registers eval roots for testing.
func SetupEvalRoots(t *testing.T) {
	t.Helper()
	eval.Reset()
	expr.Root = &expr.RootExpr{}
	require.NoError(t, eval.Register(expr.Root))
}

// RunDesign prepares roots for generation by executing the DSL.
func RunDesign(t *testing.T, design func()) []eval.Root {
	t.Helper()
	SetupEvalRoots(t)
	ok := eval.Execute(design, nil)
	require.True(t, ok, eval.Context.Error())
	require.NoError(t, eval.RunDSL())
	return []eval.Root{expr.Root}
}

// RunDesignError executes the DSL and returns the evaluation error.
func RunDesignError(t *testing.T, design func()) error {
	t.Helper()
	SetupEvalRoots(t)
	if !eval.Execute(design, nil) {
		return eval.Context.Errors
	}
	return eval.RunDSL()
}

// BuildModule executes the DSL and returns the IR of the named module.
func BuildModule(t *testing.T, name string, design func()) *ir.Module {
	t.Helper()
	roots := RunDesign(t, design)
	d, err := ir.Build(roots, ir.Defaults{})
	require.NoError(t, err)
	for _, m := range d.Modules {
		if m.Name == name {
			return m
		}
	}
	require.Failf(t, "not found", "module %q not found", name)
	return nil // unreachable
}

// FileContent locates a generated file by path (slash-normalized) and returns the concatenated sections.
func FileContent(t *testing.T, files []*gcodegen.File, wantPath string) string {
	t.Helper()
	normWant := filepath.ToSlash(wantPath)
	for _, f := range files {
		if filepath.ToSlash(f.Path) != normWant {
			continue
		}
		var buf bytes.Buffer
		for _, s := range f.SectionTemplates {
			// Render template sections into final code using optional FuncMap/Data
			tmpl := template.New(s.Name)
			// Provide default helper funcs used by shared templates (e.g., header)
			fm := template.FuncMap{
				"comment": gcodegen.Comment,
				"commandLine": func() string {
					return ""
				},
			}
			if s.FuncMap != nil {
				maps.Copy(fm, s.FuncMap)
			}
			tmpl = tmpl.Funcs(fm)
			pt, err := tmpl.Parse(s.Source)
			require.NoErrorf(t, err, "parse section %s", s.Name)
			var sb bytes.Buffer
			err = pt.Execute(&sb, s.Data)
			require.NoErrorf(t, err, "execute section %s", s.Name)
			buf.Write(sb.Bytes())
		}
		content := buf.String()
		require.NotEmptyf(t, content, "empty content for %s", wantPath)
		return content
	}
	require.Failf(t, "not found", "generated file not found: %s", wantPath)
	return "" // unreachable
}

// FileExists checks if a file exists in the generated files.
func FileExists(files []*gcodegen.File, wantPath string) bool {
	return FindFile(files, wantPath) != nil
}

// FindFile locates a generated file by path (slash-normalized).
func FindFile(files []*gcodegen.File, wantPath string) *gcodegen.File {
	normWant := filepath.ToSlash(wantPath)
	for _, f := range files {
		if filepath.ToSlash(f.Path) == normWant {
			return f
		}
	}
	return nil
}

// AssertGoSource checks that content is syntactically valid Go source and
// returns it formatted.
func AssertGoSource(t *testing.T, content string) string {
	t.Helper()
	formatted, err := format.Source([]byte(content))
	require.NoErrorf(t, err, "invalid Go source:\n%s", content)
	return string(formatted)
}
