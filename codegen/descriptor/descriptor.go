// Package descriptor renders the contract descriptors of a module as YAML
// or JSON documents, for consumption by back ends outside of Go.
package descriptor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"goa.design/goa/v3/codegen"
	"gopkg.in/yaml.v3"

	"goa.design/goa-builder/codegen/contract"
	"goa.design/goa-builder/codegen/naming"
)

// Format selects the document encoding.
type Format string

const (
	// FormatYAML encodes descriptors as YAML.
	FormatYAML Format = "yaml"
	// FormatJSON encodes descriptors as indented JSON.
	FormatJSON Format = "json"
)

// descriptorT renders the encoded document unchanged.
const descriptorT = `{{ .Content }}`

// File returns the descriptor document of m written under dir.
func File(m *contract.Module, dir string, format Format) (*codegen.File, error) {
	content, err := Encode(m, format)
	if err != nil {
		return nil, err
	}
	return &codegen.File{
		Path: filepath.Join(dir, naming.FileBase(m.Name, "module")+".builders."+string(format)),
		SectionTemplates: []*codegen.SectionTemplate{{
			Name:   "builder-descriptors",
			Source: descriptorT,
			Data:   map[string]string{"Content": string(content)},
		}},
	}, nil
}

// Encode encodes m using format.
func Encode(m *contract.Module, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return nil, fmt.Errorf("encode module %q: %w", m.Name, err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		b, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode module %q: %w", m.Name, err)
		}
		return append(b, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown descriptor format %q", format)
	}
}
