/*
Package enumerate offers lazy, composable cursors over sequences.

# Enumerators

An enumerator is a forward-only position marker over a sequence. It knows
whether it currently denotes a live element, can yield that element and can
advance to the next position. Enumerators have value semantics: Clone creates
an independent copy, and advancing a copy never affects the original.

	e := source.FromSlice([]int{1, 2, 3})
	for e.HasCurrent() {
	    fmt.Println(e.Current())
	    e.Advance()
	}

# Running folds

Accumulate wraps an enumerator and yields, at every position, the fold of a
seed with all elements consumed so far:

	s := enumerate.Sum(source.FromSlice([]int{1, 2, 3}))   // 1, 3, 6
	p := enumerate.Product(source.FromSlice([]int{1, 2, 3})) // 1, 2, 6

The fold is inclusive and eager: the first value is available right after
construction, without an explicit advance. Operators are applied strictly left
to right as op(accumulated, next), so non-commutative operators such as
recurrences are fine. An accumulator is an enumerator itself and composes with
further adaptors.

# Terminal positions

Last, End and Back find the final live position, the exhausted position one
step past it, and the final value of any finite enumerator.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package enumerate

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is T for generic code, where T usually names a type parameter.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// EnumError is an error type for the enumerate module.
type EnumError string

func (e EnumError) Error() string {
	return string(e)
}

// ErrNotLive is raised (as a panic value) when the current value of an
// exhausted enumerator is requested.
const ErrNotLive = EnumError("enumerator is not live")

// ErrEmpty is raised (as a panic value) when the back of an empty sequence is
// requested.
const ErrEmpty = EnumError("sequence is empty")

// ErrNotSized is flagged whenever a size-aware enumerator is required but the
// enumerator cannot tell its size.
const ErrNotSized = EnumError("enumerator does not know its size")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = EnumError("illegal arguments")

// assert panics with err if condition does not hold.
func assert(condition bool, err EnumError) {
	if !condition {
		panic(err)
	}
}
