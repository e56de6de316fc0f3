package enumerate

// Accumulator is an enumerator over the running fold of another enumerator.
//
// At every live position, Current returns
//
//	op(…op(op(seed, e[0]), e[1])…, e[i])
//
// where i is the position of the underlying source. The accumulator is live
// exactly when its source is live.
type Accumulator[T any] struct {
	src     Enumerator[T]
	op      Operator[T]
	running T
}

var _ Enumerator[int] = (*Accumulator[int])(nil)

// Accumulate creates a running fold of e with operator op, starting with seed.
//
// The accumulator works on a copy of e. The seed is folded with the first
// element right away, so the accumulator is positioned at the first running
// value without an explicit advance. If e is not live, the accumulator is not
// live either and its Value is the seed.
func Accumulate[T any](op Operator[T], e Enumerator[T], seed T) *Accumulator[T] {
	assert(op != nil && e != nil, ErrIllegalArguments)
	acc := &Accumulator[T]{
		src:     e.Clone(),
		op:      op,
		running: seed,
	}
	if acc.src.HasCurrent() {
		acc.running = op.Apply(seed, acc.src.Current())
	} else {
		tracer().Debugf("accumulate: source is empty")
	}
	return acc
}

// FoldMonoid creates a running fold of e with the monoid's Add, starting with
// the monoid's Zero.
func FoldMonoid[T any](m Monoid[T], e Enumerator[T]) *Accumulator[T] {
	assert(m != nil, ErrIllegalArguments)
	return Accumulate[T](monoidOperator[T]{m: m}, e, m.Zero())
}

// HasCurrent is part of interface Enumerator.
func (acc *Accumulator[T]) HasCurrent() bool {
	return acc != nil && acc.src.HasCurrent()
}

// Current returns the running value. It panics with ErrNotLive if the
// accumulator is not live.
func (acc *Accumulator[T]) Current() T {
	assert(acc.HasCurrent(), ErrNotLive)
	return acc.running
}

// Value returns the running value without checking for liveness. For an empty
// source this is the seed, for an exhausted source it is the final fold result.
func (acc *Accumulator[T]) Value() T {
	return acc.running
}

// Advance moves the source to its next position and folds the new element into
// the running value. Advancing an accumulator which is not live is a no-op.
//
// Liveness of the source is re-checked after its advance, so the source is
// never read in its exhausted state.
func (acc *Accumulator[T]) Advance() {
	if !acc.HasCurrent() {
		return
	}
	acc.src.Advance()
	if !acc.src.HasCurrent() {
		tracer().Debugf("accumulate: source exhausted")
		return
	}
	acc.running = acc.op.Apply(acc.running, acc.src.Current())
}

// Next advances acc and returns it in its new state.
func (acc *Accumulator[T]) Next() *Accumulator[T] {
	acc.Advance()
	return acc
}

// PostNext returns a copy of acc in its current state, then advances acc.
func (acc *Accumulator[T]) PostNext() *Accumulator[T] {
	prior := acc.Copy()
	acc.Advance()
	return prior
}

// Clone is part of interface Enumerator.
func (acc *Accumulator[T]) Clone() Enumerator[T] {
	return acc.Copy()
}

// Copy returns an independent copy of acc.
func (acc *Accumulator[T]) Copy() *Accumulator[T] {
	if acc == nil {
		return nil
	}
	return &Accumulator[T]{
		src:     acc.src.Clone(),
		op:      acc.op,
		running: acc.running,
	}
}

// Source returns a copy of the underlying enumerator at the accumulator's
// current position.
func (acc *Accumulator[T]) Source() Enumerator[T] {
	return acc.src.Clone()
}
