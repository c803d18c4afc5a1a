package contract

import (
	"encoding/json"
	"errors"
	"fmt"

	"goa.design/goa-builder/codegen/ir"
	"goa.design/goa-builder/codegen/naming"
	"goa.design/goa-builder/codegen/step"
	"goa.design/goa-builder/codegen/typevar"
)

var (
	// ErrDuplicateGoal indicates a goal whose generated identifiers collide
	// with those of a goal declared earlier in the same module.
	ErrDuplicateGoal = errors.New("duplicate goal")
	// ErrNoParams indicates a goal without parameters.
	ErrNoParams = errors.New("goal declares no parameters")
	// ErrStepOrder indicates step index hints that are not a permutation.
	ErrStepOrder = step.ErrStepOrder
	// ErrBoundCycle indicates type variables bounded directly by each
	// other.
	ErrBoundCycle = typevar.ErrBoundCycle
	// ErrDuplicateTypeVar indicates a type variable declared twice.
	ErrDuplicateTypeVar = typevar.ErrDuplicateTypeVar
)

// Diagnostic reports a goal that could not be generated.
type Diagnostic struct {
	// Goal is the name of the offending goal.
	Goal string
	// Err describes the problem.
	Err error
}

// Error implements error.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("goal %q: %v", d.Goal, d.Err)
}

// Unwrap returns the underlying error.
func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// MarshalJSON renders the diagnostic with its error message.
func (d *Diagnostic) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.fields())
}

// MarshalYAML renders the diagnostic with its error message.
func (d *Diagnostic) MarshalYAML() (any, error) {
	return d.fields(), nil
}

func (d *Diagnostic) fields() map[string]string {
	return map[string]string{"goal": d.Goal, "error": d.Err.Error()}
}

// validator carries the names of the goals already accepted in the module
// being generated.
type validator struct {
	seen map[string]string
}

func newValidator() *validator {
	return &validator{seen: make(map[string]string)}
}

// validate checks the input validity of g and records its name.
func (v *validator) validate(g *ir.Goal) error {
	key := naming.GoalKey(g.Name)
	if first, ok := v.seen[key]; ok {
		return fmt.Errorf("%w: %q collides with %q", ErrDuplicateGoal, g.Name, first)
	}
	if len(g.Params) == 0 {
		return ErrNoParams
	}
	if _, err := step.Order(g.Params); err != nil {
		return err
	}
	v.seen[key] = g.Name
	return nil
}
