package enumerate

import "cmp"

// Operator combines an accumulated value with the next element of a sequence.
//
// Operators are values: they are copied whenever an accumulator is cloned.
// Operators which depend on parameters should carry them as fields, e.g.
//
//	type horner struct{ X int }
//
//	func (h horner) Apply(acc, x int) int { return h.X*acc + x }
//
// Apply is always called as Apply(accumulated, next), never the other way
// round, so Apply need not be commutative.
type Operator[T any] interface {
	Apply(acc, x T) T
}

// OperatorFunc adapts an ordinary function to an Operator.
type OperatorFunc[T any] func(acc, x T) T

// Apply calls f(acc, x).
func (f OperatorFunc[T]) Apply(acc, x T) T {
	return f(acc, x)
}

// Monoid defines an associative operation with a neutral element.
//
// For values s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
type Monoid[T any] interface {
	Zero() T
	Add(left, right T) T
}

// Number is a constraint for the numeric types supported by the arithmetic
// folds.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Plus adds numbers. Together with 0 it forms a monoid.
type Plus[T Number] struct{}

// Apply returns acc + x.
func (Plus[T]) Apply(acc, x T) T { return acc + x }

// Zero returns 0.
func (Plus[T]) Zero() T { return 0 }

// Add returns left + right.
func (Plus[T]) Add(left, right T) T { return left + right }

// Times multiplies numbers. Together with 1 it forms a monoid.
type Times[T Number] struct{}

// Apply returns acc * x.
func (Times[T]) Apply(acc, x T) T { return acc * x }

// Zero returns 1, the neutral element of multiplication.
func (Times[T]) Zero() T { return 1 }

// Add returns left * right.
func (Times[T]) Add(left, right T) T { return left * right }

// Min selects the smaller of two values.
type Min[T cmp.Ordered] struct{}

// Apply returns the smaller of acc and x.
func (Min[T]) Apply(acc, x T) T { return min(acc, x) }

// Max selects the larger of two values.
type Max[T cmp.Ordered] struct{}

// Apply returns the larger of acc and x.
func (Max[T]) Apply(acc, x T) T { return max(acc, x) }

// monoidOperator folds with a monoid's Add.
type monoidOperator[T any] struct {
	m Monoid[T]
}

func (op monoidOperator[T]) Apply(acc, x T) T {
	return op.m.Add(acc, x)
}
