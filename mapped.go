package enumerate

// Mapped is an enumerator over the elements of another enumerator, transformed
// by a function. The function is applied lazily whenever Current is called.
type Mapped[S, T any] struct {
	src Enumerator[S]
	fn  func(S) T
}

var _ Enumerator[int] = (*Mapped[string, int])(nil)

// Map creates an enumerator over fn(x) for every element x of e.
// Map works on a copy of e.
func Map[S, T any](e Enumerator[S], fn func(S) T) *Mapped[S, T] {
	assert(e != nil && fn != nil, ErrIllegalArguments)
	return &Mapped[S, T]{src: e.Clone(), fn: fn}
}

// HasCurrent is part of interface Enumerator.
func (m *Mapped[S, T]) HasCurrent() bool {
	return m != nil && m.src.HasCurrent()
}

// Current returns fn applied to the current element of the source.
func (m *Mapped[S, T]) Current() T {
	assert(m.HasCurrent(), ErrNotLive)
	return m.fn(m.src.Current())
}

// Advance is part of interface Enumerator.
func (m *Mapped[S, T]) Advance() {
	if m.HasCurrent() {
		m.src.Advance()
	}
}

// Clone is part of interface Enumerator.
func (m *Mapped[S, T]) Clone() Enumerator[T] {
	return &Mapped[S, T]{src: m.src.Clone(), fn: m.fn}
}
