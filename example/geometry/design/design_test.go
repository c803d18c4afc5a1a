package design_test

import (
	"bytes"
	"context"
	"encoding/json"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"goa.design/goa-builder/codegen"
	"goa.design/goa-builder/codegen/testhelpers"
	"goa.design/goa-builder/example/geometry/design"
	"goa.design/goa-builder/loader"
)

const root = "goa.design/goa-builder/example/geometry"

func run(t *testing.T, fn func(), format codegen.Format) *codegen.Result {
	t.Helper()
	res, err := codegen.Run(context.Background(), testhelpers.RunDesign(t, fn), codegen.Options{Root: root, Format: format})
	require.NoError(t, err)
	require.Empty(t, res.Diagnostics)
	return res
}

func TestYAMLMatchesDSL(t *testing.T) {
	fromYAML, err := loader.Load("design.yaml")
	require.NoError(t, err)

	encode := func(fn func()) string {
		b, err := json.Marshal(run(t, fn, codegen.FormatJSON).Modules)
		require.NoError(t, err)
		return string(b)
	}
	require.JSONEq(t, encode(design.Design), encode(fromYAML))
}

// TestCheckedInCode verifies that the checked in package matches the code
// the design produces, declaration by declaration. File headers and import
// blocks are left out: the header records the generating command line.
func TestCheckedInCode(t *testing.T) {
	res := run(t, design.Design, codegen.FormatGo)
	for _, f := range res.Files {
		generated := testhelpers.AssertGoSource(t, testhelpers.FileContent(t, res.Files, f.Path))
		checkedIn, err := os.ReadFile(filepath.Join("..", f.Path))
		require.NoErrorf(t, err, "missing generated file %s", f.Path)
		require.Equal(t, decls(t, generated), decls(t, string(checkedIn)), f.Path)
	}
}

// decls returns the formatted declarations of src other than imports,
// doc comments included.
func decls(t *testing.T, src string) []string {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", src, parser.ParseComments)
	require.NoError(t, err)
	var out []string
	for _, d := range file.Decls {
		if gd, ok := d.(*ast.GenDecl); ok && gd.Tok == token.IMPORT {
			continue
		}
		var buf bytes.Buffer
		require.NoError(t, format.Node(&buf, fset, d))
		out = append(out, buf.String())
	}
	return out
}
