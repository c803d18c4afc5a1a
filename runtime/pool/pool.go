// Package pool provides the scope local instance pooling used by generated
// builders and updaters.
//
// A generated Scope holds one Slot per pooled implementation type. A Scope
// must only be used by one goroutine at a time: no synchronization happens
// here. Reentrant use from the same goroutine is safe: when a chain starts
// while another chain of the same goal is still in flight, Acquire discards
// the busy instance from the slot and returns a new one.
package pool

// Lease is embedded by pooled implementation types. It records whether the
// instance belongs to an unfinished chain.
type Lease struct {
	inUse bool
}

// InUse reports whether the instance belongs to an unfinished chain.
func (l *Lease) InUse() bool {
	return l.inUse
}

func (l *Lease) lease() *Lease {
	return l
}

// leaser is implemented by pointers to types embedding Lease.
type leaser interface {
	lease() *Lease
}

// Slot holds at most one pooled instance.
type Slot struct {
	cur leaser
}

// Acquire returns the instance held by s when it is idle, or stores and
// returns a new instance otherwise. The returned instance is marked in use
// until Release is called.
func Acquire[T any, P interface {
	*T
	leaser
}](s *Slot) P {
	if p, ok := s.cur.(P); ok && !p.lease().inUse {
		p.lease().inUse = true
		return p
	}
	p := P(new(T))
	p.lease().inUse = true
	s.cur = p
	return p
}

// Release marks the instance idle so the next Acquire on its slot reuses it.
// The caller must not use the instance afterwards.
func Release(l leaser) {
	l.lease().inUse = false
}
