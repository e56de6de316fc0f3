package source

import "github.com/npillmayer/enumerate"

// Counted limits an enumerator to a maximum number of elements.
type Counted[T any] struct {
	src enumerate.Enumerator[T]
	n   int
}

var (
	_ enumerate.Enumerator[int] = (*Counted[int])(nil)
	_ enumerate.Sized           = (*Counted[int])(nil)
)

// Count creates an enumerator over at most n elements of e. Count works on a
// copy of e. Negative counts are treated as 0.
func Count[T any](e enumerate.Enumerator[T], n int) *Counted[T] {
	if n < 0 {
		tracer().Infof("count: negative count %d, using 0", n)
		n = 0
	}
	return &Counted[T]{src: e.Clone(), n: n}
}

// HasCurrent is part of interface enumerate.Enumerator.
func (c *Counted[T]) HasCurrent() bool {
	return c != nil && c.n > 0 && c.src.HasCurrent()
}

// Current is part of interface enumerate.Enumerator.
func (c *Counted[T]) Current() T {
	if !c.HasCurrent() {
		panic(enumerate.ErrNotLive)
	}
	return c.src.Current()
}

// Advance is part of interface enumerate.Enumerator.
func (c *Counted[T]) Advance() {
	if c.HasCurrent() {
		c.n--
		c.src.Advance()
	}
}

// Clone is part of interface enumerate.Enumerator.
func (c *Counted[T]) Clone() enumerate.Enumerator[T] {
	if c == nil {
		return &Counted[T]{src: &Slice[T]{}}
	}
	return &Counted[T]{src: c.src.Clone(), n: c.n}
}

// Size returns the declared number of elements left. If the underlying
// enumerator knows its size and it is smaller, that size is returned.
func (c *Counted[T]) Size() int {
	if c == nil {
		return 0
	}
	if sized, ok := c.src.(enumerate.Sized); ok {
		return min(c.n, sized.Size())
	}
	return c.n
}
