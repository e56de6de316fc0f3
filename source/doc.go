/*
Package source provides concrete enumerators over in-memory sequences.

All enumerators of this package are positioned at their first element after
construction. Clones share the read-only backing data, but never any position
state.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package source

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'enumerate'
func tracer() tracing.Trace {
	return tracing.Select("enumerate")
}
