package enumerate

import "cmp"

// Sum returns the running sum of e, starting with 0.
func Sum[T Number](e Enumerator[T]) *Accumulator[T] {
	return SumFrom(e, 0)
}

// SumFrom returns the running sum of e, starting with seed.
func SumFrom[T Number](e Enumerator[T], seed T) *Accumulator[T] {
	return Accumulate[T](Plus[T]{}, e, seed)
}

// Product returns the running product of e, starting with 1.
func Product[T Number](e Enumerator[T]) *Accumulator[T] {
	return ProductFrom(e, 1)
}

// ProductFrom returns the running product of e, starting with seed.
func ProductFrom[T Number](e Enumerator[T], seed T) *Accumulator[T] {
	return Accumulate[T](Times[T]{}, e, seed)
}

// RunningMin returns the running minimum of e, starting with the maximum
// value of T.
func RunningMin[T Number](e Enumerator[T]) *Accumulator[T] {
	return RunningMinFrom(e, MaxOf[T]())
}

// RunningMinFrom returns the running minimum of e, starting with seed.
func RunningMinFrom[T cmp.Ordered](e Enumerator[T], seed T) *Accumulator[T] {
	return Accumulate[T](Min[T]{}, e, seed)
}

// RunningMax returns the running maximum of e, starting with the minimum
// value of T.
func RunningMax[T Number](e Enumerator[T]) *Accumulator[T] {
	return RunningMaxFrom(e, MinOf[T]())
}

// RunningMaxFrom returns the running maximum of e, starting with seed.
func RunningMaxFrom[T cmp.Ordered](e Enumerator[T], seed T) *Accumulator[T] {
	return Accumulate[T](Max[T]{}, e, seed)
}
