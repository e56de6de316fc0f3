/*
Package textsrc provides enumerators over fragments of text.

Text is segmented eagerly at construction time, because the Unicode segmenters
used are stateful and cannot be copied mid-stream. The resulting enumerators
are cheap to clone and compose with the running folds of package enumerate,
e.g. to compute the running display width of line-break segments.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package textsrc

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'enumerate'
func tracer() tracing.Trace {
	return tracing.Select("enumerate")
}

// ErrHTML signals that HTML input could not be parsed.
var ErrHTML = errors.New("textsrc: cannot parse HTML")
