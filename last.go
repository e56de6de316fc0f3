package enumerate

import "fmt"

// Last returns a copy of e positioned at the final live element of its
// sequence. If e is not live, Last returns an unchanged copy of e.
//
// Last needs time proportional to the remaining length of the sequence and
// does not terminate for infinite sequences. e is not changed.
func Last[T any](e Enumerator[T]) Enumerator[T] {
	last := e.Clone()
	for c := e.Clone(); c.HasCurrent(); c.Advance() {
		last = c.Clone()
	}
	return last
}

// End returns a copy of e advanced until it is no longer live, i.e. one
// position past the final element. e is not changed.
func End[T any](e Enumerator[T]) Enumerator[T] {
	c := e.Clone()
	for c.HasCurrent() {
		c.Advance()
	}
	return c
}

// Back returns the final element of the sequence of e.
// It panics with ErrEmpty if e is not live.
func Back[T any](e Enumerator[T]) T {
	last := Last(e)
	assert(last.HasCurrent(), ErrEmpty)
	return last.Current()
}

// ReverseEnd advances a copy of a size-aware enumerator by its size, yielding
// the position where a traversal in opposite direction would start from.
// If e does not implement Sized, ReverseEnd returns ErrNotSized.
func ReverseEnd[T any](e Enumerator[T]) (Enumerator[T], error) {
	sized, ok := e.(Sized)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotSized, e)
	}
	n := sized.Size()
	tracer().Debugf("reverse end: advancing by %d", n)
	return AdvanceBy(e, n), nil
}
