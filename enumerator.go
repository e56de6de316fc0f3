package enumerate

import "iter"

// Enumerator is a forward-only cursor over a sequence of T.
//
// An enumerator created by one of the constructors in this module is positioned
// at the first element of its sequence (or is not live for an empty sequence).
// Enumerators are single-owner values; use Clone to get an independent copy.
type Enumerator[T any] interface {
	// HasCurrent reports whether the enumerator denotes a valid element.
	HasCurrent() bool
	// Current returns the element at the current position. It is defined only
	// if HasCurrent is true.
	Current() T
	// Advance moves to the next position. Advancing an enumerator which is not
	// live should not change it.
	Advance()
	// Clone returns an independent copy of the enumerator in its current state.
	Clone() Enumerator[T]
}

// Sized is an optional capability of enumerators which know how many elements
// are left, including the current one.
type Sized interface {
	Size() int
}

// Next advances e and returns it in its new state.
func Next[T any](e Enumerator[T]) Enumerator[T] {
	e.Advance()
	return e
}

// PostNext returns a copy of e in its current state, then advances e.
func PostNext[T any](e Enumerator[T]) Enumerator[T] {
	prior := e.Clone()
	e.Advance()
	return prior
}

// AdvanceBy returns a copy of e advanced by at most n positions. e is not
// changed.
func AdvanceBy[T any](e Enumerator[T], n int) Enumerator[T] {
	c := e.Clone()
	for ; n > 0 && c.HasCurrent(); n-- {
		c.Advance()
	}
	return c
}

// Values returns an iterator over the remaining elements of e, suitable for
// range loops. The iteration works on a copy, so e is not changed.
func Values[T any](e Enumerator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := e.Clone(); c.HasCurrent(); c.Advance() {
			if !yield(c.Current()) {
				return
			}
		}
	}
}

// Collect returns the remaining elements of a finite enumerator e as a slice.
// e is not changed.
func Collect[T any](e Enumerator[T]) []T {
	var values []T
	for v := range Values(e) {
		values = append(values, v)
	}
	return values
}
