package golang

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

const (
	builderFileT = "builder"
	updaterFileT = "updater"
	scopeFileT   = "scope"
)

// Types
type (
	// templates reads templates from a provided filesystem.
	templates struct {
		FS fs.FS
	}
)

//go:embed templates/*.go.tpl
var templateFS embed.FS

// goTemplates is the single template reader used across the package.
var goTemplates = &templates{FS: templateFS}

// Read returns the template with the given name.
func (tr *templates) Read(name string) string {
	content, err := fs.ReadFile(tr.FS, path.Join("templates", name+".go.tpl"))
	if err != nil {
		panic(fmt.Sprintf("failed to load template %s: %v", name, err))
	}
	return string(content)
}
