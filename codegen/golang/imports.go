package golang

import (
	"path"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"goa.design/goa/v3/codegen"
)

var versionElem = regexp.MustCompile(`^v[0-9]+$`)

// importSet records the packages referenced by one generated file.
type importSet struct {
	local   string
	aliases map[string]string
	taken   map[string]bool
}

func newImportSet(local string) *importSet {
	return &importSet{
		local:   local,
		aliases: make(map[string]string),
		taken:   make(map[string]bool),
	}
}

// qualify returns the name used to refer to pkgPath, recording the import.
// It returns the empty string for the generated package itself.
func (s *importSet) qualify(pkgPath string) string {
	if pkgPath == "" || pkgPath == s.local {
		return ""
	}
	if a, ok := s.aliases[pkgPath]; ok {
		return a
	}
	base := pkgName(pkgPath)
	alias := base
	for i := 2; s.taken[alias]; i++ {
		alias = base + strconv.Itoa(i)
	}
	s.taken[alias] = true
	s.aliases[pkgPath] = alias
	return alias
}

// specs returns the recorded imports sorted by path.
func (s *importSet) specs() []*codegen.ImportSpec {
	paths := make([]string, 0, len(s.aliases))
	for p := range s.aliases {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	specs := make([]*codegen.ImportSpec, len(paths))
	for i, p := range paths {
		if alias := s.aliases[p]; alias != path.Base(p) {
			specs[i] = codegen.NewImport(alias, p)
		} else {
			specs[i] = codegen.SimpleImport(p)
		}
	}
	return specs
}

// pkgName guesses the package name of pkgPath from its last element,
// skipping major version suffixes and dropping characters not allowed in
// identifiers.
func pkgName(pkgPath string) string {
	elems := strings.Split(pkgPath, "/")
	name := elems[len(elems)-1]
	if versionElem.MatchString(name) && len(elems) > 1 {
		name = elems[len(elems)-2]
	}
	name = strings.TrimPrefix(name, "go-")
	name = strings.Map(func(r rune) rune {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, name)
	if name == "" {
		return "pkg"
	}
	return name
}
