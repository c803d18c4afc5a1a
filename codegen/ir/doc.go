// Package ir provides the stable, deterministic intermediate representation
// consumed by the builder generator core.
//
// The IR is constructed from evaluated design roots and is immutable once
// built: every goal description, parameter and type reference is read-only
// input to the lifetime resolver, the step chain builder and the synthesizer.
package ir
