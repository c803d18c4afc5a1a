// Package guard defines the failures raised by generated builders when an
// argument violates its null policy.
package guard

import (
	"fmt"
	"reflect"
)

// NullArgumentError is raised, as a panic value, by generated builder and
// updater methods called with a nil argument for a parameter that rejects
// nil values.
type NullArgumentError struct {
	// Param names the parameter, suffixed with " (element)" when a
	// collection element is nil.
	Param string
}

// Error implements error.
func (e *NullArgumentError) Error() string {
	return fmt.Sprintf("null argument: %s", e.Param)
}

// NullArgument returns the error raised for param.
func NullArgument(param string) error {
	return &NullArgumentError{Param: param}
}

// IsNil reports whether v is nil. Generated code uses it for values whose
// type is a type parameter, which cannot be compared against nil directly.
func IsNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
