package loader

import (
	"fmt"
	"go/token"
	"strings"

	"goa.design/goa-builder/expr"
)

var basics = map[string]bool{
	"bool": true, "string": true, "error": true, "any": true, "comparable": true,
	"byte": true, "rune": true, "uintptr": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"float32": true, "float64": true, "complex64": true, "complex128": true,
}

// ParseType parses a type written in Go syntax with package qualified
// names spelled out in full:
//
//	int
//	*example.com/geometry.Point
//	[]example.com/geometry.Pair[K, string]
//	map[string][]V
//	~int
//	?example.com/geometry.Shape
//
// Identifiers listed in vars denote type variables. A leading ? marks a
// named type whose values may be nil, such as an interface. A bare
// identifier that is neither a variable nor predeclared names a type of
// the generated package.
func ParseType(s string, vars map[string]bool) (*expr.TypeRef, error) {
	p := &typeParser{vars: vars}
	t, err := p.parse(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("type %q: %w", s, err)
	}
	return t, nil
}

type typeParser struct {
	vars map[string]bool
}

func (p *typeParser) parse(s string) (*expr.TypeRef, error) {
	switch {
	case s == "":
		return nil, fmt.Errorf("missing type")
	case strings.HasPrefix(s, "~"):
		t, err := p.parse(strings.TrimSpace(s[1:]))
		if err != nil {
			return nil, err
		}
		t.Approx = true
		return t, nil
	case strings.HasPrefix(s, "*"):
		elem, err := p.parse(strings.TrimSpace(s[1:]))
		if err != nil {
			return nil, err
		}
		return expr.Pointer(elem), nil
	case strings.HasPrefix(s, "[]"):
		elem, err := p.parse(strings.TrimSpace(s[2:]))
		if err != nil {
			return nil, err
		}
		return expr.Slice(elem), nil
	case strings.HasPrefix(s, "map["):
		end, err := closing(s, len("map"))
		if err != nil {
			return nil, err
		}
		key, err := p.parse(strings.TrimSpace(s[len("map["):end]))
		if err != nil {
			return nil, err
		}
		elem, err := p.parse(strings.TrimSpace(s[end+1:]))
		if err != nil {
			return nil, err
		}
		return expr.Map(key, elem), nil
	case strings.HasPrefix(s, "?"):
		t, err := p.parse(strings.TrimSpace(s[1:]))
		if err != nil {
			return nil, err
		}
		if t.Kind != expr.NamedKind {
			return nil, fmt.Errorf("? only applies to named types")
		}
		t.Nilable = true
		return t, nil
	}
	return p.named(s)
}

func (p *typeParser) named(s string) (*expr.TypeRef, error) {
	name, rest := s, ""
	if i := strings.IndexByte(s, '['); i >= 0 {
		end, err := closing(s, i)
		if err != nil {
			return nil, err
		}
		if end != len(s)-1 {
			return nil, fmt.Errorf("unexpected %q after type arguments", s[end+1:])
		}
		name, rest = s[:i], s[i+1:end]
		if strings.TrimSpace(rest) == "" {
			return nil, fmt.Errorf("empty type argument list")
		}
	}
	var args []*expr.TypeRef
	if rest != "" {
		for _, a := range split(rest) {
			t, err := p.parse(strings.TrimSpace(a))
			if err != nil {
				return nil, err
			}
			args = append(args, t)
		}
	}
	pkg, local := "", name
	slash := strings.LastIndexByte(name, '/')
	if dot := strings.LastIndexByte(name, '.'); dot > slash {
		pkg, local = name[:dot], name[dot+1:]
	}
	if !token.IsIdentifier(local) {
		return nil, fmt.Errorf("invalid identifier %q", local)
	}
	if pkg == "" && args == nil {
		switch {
		case p.vars[local]:
			return expr.Var(local), nil
		case basics[local]:
			return expr.Basic(local), nil
		}
	}
	return expr.Named(pkg, local, args...), nil
}

// closing returns the index of the bracket closing the one at open.
func closing(s string, open int) (int, error) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("unbalanced brackets")
}

// split splits a type argument list on top level commas.
func split(s string) []string {
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	return append(out, s[start:])
}

