package descriptor_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"goa.design/goa/v3/codegen"
	"gopkg.in/yaml.v3"

	"goa.design/goa-builder/codegen/contract"
	"goa.design/goa-builder/codegen/descriptor"
	"goa.design/goa-builder/codegen/testhelpers"
	. "goa.design/goa-builder/dsl"
)

func design() {
	Module("notes", func() {
		Package("example.com/notes/gen/builders")
		Goal("Note", func() {
			Constructor(PointerTo(Named("example.com/notes", "Note")))
			Param("title", String, func() { FieldRead("Title") })
			Param("body", String, func() { FieldRead("Body") })
		})
	})
}

func TestEncodeJSON(t *testing.T) {
	m := contract.Generate(testhelpers.BuildModule(t, "notes", design))
	b, err := descriptor.Encode(m, descriptor.FormatJSON)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	require.Equal(t, "notes", doc["name"])
	goals := doc["goals"].([]any)
	require.Len(t, goals, 1)
	goal := goals[0].(map[string]any)
	require.Equal(t, "Note", goal["name"])
	require.Contains(t, goal, "updater")
}

func TestEncodeYAML(t *testing.T) {
	m := contract.Generate(testhelpers.BuildModule(t, "notes", design))
	b, err := descriptor.Encode(m, descriptor.FormatYAML)
	require.NoError(t, err)
	var doc struct {
		Name    string `yaml:"name"`
		PkgPath string `yaml:"pkg_path"`
		Goals   []struct {
			Name     string `yaml:"name"`
			Contract struct {
				Steps []struct {
					Param    string `yaml:"param"`
					Terminal bool   `yaml:"terminal"`
				} `yaml:"steps"`
			} `yaml:"contract"`
		} `yaml:"goals"`
	}
	require.NoError(t, yaml.Unmarshal(b, &doc))
	require.Equal(t, "example.com/notes/gen/builders", doc.PkgPath)
	require.Len(t, doc.Goals[0].Contract.Steps, 2)
	require.Equal(t, "body", doc.Goals[0].Contract.Steps[1].Param)
	require.True(t, doc.Goals[0].Contract.Steps[1].Terminal)
}

func TestFile(t *testing.T) {
	m := contract.Generate(testhelpers.BuildModule(t, "notes", design))
	f, err := descriptor.File(m, "builders", descriptor.FormatYAML)
	require.NoError(t, err)
	require.Equal(t, filepath.Join("builders", "notes.builders.yaml"), f.Path)
	content := testhelpers.FileContent(t, []*codegen.File{f}, f.Path)
	require.Contains(t, content, "name: notes")

	_, err = descriptor.Encode(m, "toml")
	require.Error(t, err)
}
