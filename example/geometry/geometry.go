// Package geometry holds the types the example design generates builders
// for. The generated package lives in gen/builders; run
//
//	goa-builder -design design/design.yaml -root goa.design/goa-builder/example/geometry
//
// from this directory to regenerate it.
package geometry

import "fmt"

type (
	// Point is a point on the integer grid.
	Point struct {
		X, Y int
	}

	// Polygon is a named closed path.
	Polygon struct {
		Name     string
		Vertices []*Point
	}

	// Pair associates a key with a value.
	Pair[K comparable, V any] struct {
		key   K
		value V
	}

	// Label is a text annotation anchored at a point. Its zero value is an
	// empty label at no point.
	Label struct {
		text   string
		anchor *Point
		tags   []string
	}

	// Box wraps a value with a caption.
	Box[T any] struct {
		Content T
		Label   string
	}
)

// MakePair returns the pair (key, value).
func MakePair[K comparable, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{key: key, value: value}
}

// Key returns the key of p.
func (p Pair[K, V]) Key() K {
	return p.key
}

// Value returns the value of p.
func (p Pair[K, V]) Value() V {
	return p.value
}

// String implements fmt.Stringer.
func (p *Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// SetText sets the text of l.
func (l *Label) SetText(text string) {
	l.text = text
}

// SetAnchor sets the point l is anchored at.
func (l *Label) SetAnchor(anchor *Point) {
	l.anchor = anchor
}

// SetTags sets the tags of l.
func (l *Label) SetTags(tags []string) {
	l.tags = tags
}

// Text returns the text of l.
func (l *Label) Text() string {
	return l.text
}

// Anchor returns the point l is anchored at.
func (l *Label) Anchor() *Point {
	return l.anchor
}

// Tags returns the tags of l.
func (l *Label) Tags() []string {
	return l.tags
}
