package source

import "github.com/npillmayer/enumerate"

// Slice enumerates the items of a slice from first to last.
type Slice[T any] struct {
	items []T
	pos   int
}

var (
	_ enumerate.Enumerator[int] = (*Slice[int])(nil)
	_ enumerate.Sized           = (*Slice[int])(nil)
)

// FromSlice creates an enumerator over items. items must not be modified
// while the enumerator (or one of its clones) is in use.
func FromSlice[T any](items []T) *Slice[T] {
	return &Slice[T]{items: items}
}

// Of creates an enumerator over its arguments.
func Of[T any](items ...T) *Slice[T] {
	return FromSlice(items)
}

// HasCurrent is part of interface enumerate.Enumerator.
func (s *Slice[T]) HasCurrent() bool {
	return s != nil && s.pos < len(s.items)
}

// Current is part of interface enumerate.Enumerator.
func (s *Slice[T]) Current() T {
	if !s.HasCurrent() {
		panic(enumerate.ErrNotLive)
	}
	return s.items[s.pos]
}

// Advance is part of interface enumerate.Enumerator.
func (s *Slice[T]) Advance() {
	if s.HasCurrent() {
		s.pos++
	}
}

// Clone is part of interface enumerate.Enumerator.
func (s *Slice[T]) Clone() enumerate.Enumerator[T] {
	if s == nil {
		return &Slice[T]{}
	}
	c := *s
	return &c
}

// Size returns the number of items left, including the current one.
func (s *Slice[T]) Size() int {
	if s == nil {
		return 0
	}
	return len(s.items) - s.pos
}

// Reversed enumerates the items of a slice from last to first.
type Reversed[T any] struct {
	items []T
	pos   int // index of the current item, -1 if exhausted
}

var (
	_ enumerate.Enumerator[int] = (*Reversed[int])(nil)
	_ enumerate.Sized           = (*Reversed[int])(nil)
)

// Reverse creates an enumerator over items in reverse order.
func Reverse[T any](items []T) *Reversed[T] {
	return &Reversed[T]{items: items, pos: len(items) - 1}
}

// HasCurrent is part of interface enumerate.Enumerator.
func (r *Reversed[T]) HasCurrent() bool {
	return r != nil && r.pos >= 0
}

// Current is part of interface enumerate.Enumerator.
func (r *Reversed[T]) Current() T {
	if !r.HasCurrent() {
		panic(enumerate.ErrNotLive)
	}
	return r.items[r.pos]
}

// Advance is part of interface enumerate.Enumerator.
func (r *Reversed[T]) Advance() {
	if r.HasCurrent() {
		r.pos--
	}
}

// Clone is part of interface enumerate.Enumerator.
func (r *Reversed[T]) Clone() enumerate.Enumerator[T] {
	if r == nil {
		return &Reversed[T]{pos: -1}
	}
	c := *r
	return &c
}

// Size returns the number of items left, including the current one.
func (r *Reversed[T]) Size() int {
	if r == nil {
		return 0
	}
	return r.pos + 1
}

// Empty returns an enumerator which is never live.
func Empty[T any]() *Slice[T] {
	return &Slice[T]{}
}
