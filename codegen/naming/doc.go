// Package naming contains the naming conventions of the builder generator.
//
// The functions in this package centralize how goal and parameter names map
// to generated identifiers (step interfaces, implementations, entries and
// methods) so the core synthesizer and the Go back end agree on them.
package naming
