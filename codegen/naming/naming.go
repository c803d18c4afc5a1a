package naming

import (
	"go/token"
	"strconv"
	"strings"

	"goa.design/goa/v3/codegen"
)

// FileBase returns the base of the names of the files generated for a goal
// or module called name: lower snake_case made of [a-z0-9_] only, without
// leading, trailing or repeated underscores. It returns fallback when
// nothing is left of name.
func FileBase(name, fallback string) string {
	s := strings.ToLower(codegen.SnakeCase(name))
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return '_'
	}, s)
	s = strings.Trim(s, "_")
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	if s == "" {
		return fallback
	}
	return s
}

// Ident returns the Go identifier for name, exported when exported is true.
func Ident(name string, exported bool) string {
	return codegen.Goify(name, exported)
}

// GoalKey returns the key used to detect goals whose generated identifiers
// would collide.
func GoalKey(goal string) string {
	return strings.ToLower(codegen.Goify(goal, true))
}

// StepInterface returns the name of the step interface accepting param.
func StepInterface(goal, param string, exported bool) string {
	return Ident(goal, exported) + "Builder" + Ident(param, true)
}

// BuilderImpl returns the name of the struct implementing every step.
func BuilderImpl(goal string) string {
	return Ident(goal, false) + "BuilderImpl"
}

// BuilderEntry returns the name of the function entering the builder chain.
func BuilderEntry(goal string, exported bool) string {
	if exported {
		return "New" + Ident(goal, true) + "Builder"
	}
	return "new" + Ident(goal, true) + "Builder"
}

// UpdaterInterface returns the name of the updater interface.
func UpdaterInterface(goal string, exported bool) string {
	return Ident(goal, exported) + "Updater"
}

// UpdaterImpl returns the name of the struct implementing the updater.
func UpdaterImpl(goal string) string {
	return Ident(goal, false) + "UpdaterImpl"
}

// UpdaterEntry returns the name of the function creating an updater.
func UpdaterEntry(goal string, exported bool) string {
	if exported {
		return "New" + Ident(goal, true) + "Updater"
	}
	return "new" + Ident(goal, true) + "Updater"
}

// Method returns the name of the method setting param.
func Method(param string) string {
	return Ident(param, true)
}

// EmptyMethod returns the name of the zero argument collection method.
func EmptyMethod(param string) string {
	return "Empty" + Ident(param, true)
}

// Local returns the name of the variable or field holding param.
func Local(param string) string {
	n := Ident(param, false)
	if token.IsKeyword(n) {
		n += "_"
	}
	return n
}

// reserved lists the identifiers used by generated method bodies.
var reserved = []string{"b", "u", "v", "err", "scope", "fmt", "guard", "iter", "pool"}

// Taken returns the set of identifiers generated bodies may not use for
// parameter locals: the reserved names and extra.
func Taken(extra ...string) map[string]bool {
	taken := make(map[string]bool, len(reserved)+len(extra))
	for _, n := range reserved {
		taken[n] = true
	}
	for _, n := range extra {
		taken[n] = true
	}
	return taken
}

// Singular derives the single element method name of a collection
// parameter: a trailing "s" is dropped, otherwise "Item" is appended.
func Singular(param string) string {
	if len(param) > 1 && strings.HasSuffix(param, "s") && !strings.HasSuffix(param, "ss") {
		return param[:len(param)-1]
	}
	return param + "Item"
}

// Unique returns base, or base followed by the smallest positive integer,
// such that the result is not in taken. The result is added to taken.
func Unique(base string, taken map[string]bool) string {
	name := base
	for i := 1; taken[name]; i++ {
		name = base + strconv.Itoa(i)
	}
	taken[name] = true
	return name
}
