package textsrc

import (
	"bufio"
	"strings"
	"sync"

	"github.com/npillmayer/enumerate"
	"github.com/npillmayer/enumerate/source"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// Segments creates an enumerator over the line-break segments of text, as
// defined by UAX#14. Every segment carries its trailing spaces, so the
// segments concatenate to text.
func Segments(text string) *source.Slice[string] {
	segs, _ := segmentText(text)
	return source.FromSlice(segs)
}

// segmentText splits text at UAX#14 break opportunities and flags every
// segment which is followed by a mandatory break.
func segmentText(text string) ([]string, []bool) {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	segs := make([]string, 0, 16)
	must := make([]bool, 0, 16)
	for segmenter.Next() {
		p1, _ := segmenter.Penalties()
		seg := string(segmenter.Bytes())
		segs = append(segs, seg)
		must = append(must, p1 <= uax14.PenaltyForMustBreak/2 || endsWithHardBreak(seg))
	}
	if err := segmenter.Err(); err != nil {
		tracer().Errorf("segments: segmenter returned error: %s", err)
	}
	tracer().Debugf("segments: %d segments from %d bytes", len(segs), len(text))
	return segs, must
}

// endsWithHardBreak is true for UAX#14 classes BK, CR, LF and NL.
func endsWithHardBreak(seg string) bool {
	if seg == "" {
		return false
	}
	switch seg[len(seg)-1] {
	case '\n', '\r', '\v', '\f':
		return true
	}
	return strings.HasSuffix(seg, "\u0085") || strings.HasSuffix(seg, "\u2028") ||
		strings.HasSuffix(seg, "\u2029")
}

var setupGraphemes sync.Once

// Widths creates an enumerator over the display widths of the fragments of e,
// measured in en (fixed-width positions) as defined by UAX#11.
// If ctx is nil, uax11.LatinContext is used. Empty fragments have width 0.
func Widths(e enumerate.Enumerator[string], ctx *uax11.Context) *enumerate.Mapped[string, int] {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	return enumerate.Map(e, func(frag string) int {
		return measure(frag, ctx)
	})
}

func measure(frag string, ctx *uax11.Context) int {
	if frag == "" { // grapheme strings cannot be empty
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(frag), ctx)
}

// LineFill is a fold operator for first-fit line filling. The accumulated
// value is the width already occupied on the current line. A fragment which
// does not fit starts a new line, unless the line is still empty.
//
// LineFill is not commutative: it depends on the order of fragments.
type LineFill struct {
	Width int // target line width
}

// Apply is part of interface enumerate.Operator.
func (lf LineFill) Apply(acc, w int) int {
	if acc > 0 && acc+w > lf.Width {
		return w
	}
	return acc + w
}

// Fragment is a line-break segment measured for line filling. Folded with
// LineFill.Fill, Width is the width occupied on the current line.
type Fragment struct {
	Width     int  // display width in en
	MustBreak bool // a mandatory line break follows
	NewLine   bool // set by Fill: the fragment starts a line other than the first
}

// Fill is LineFill.Apply for fragments. A fragment following a mandatory
// break always starts a new line.
func (lf LineFill) Fill(acc, f Fragment) Fragment {
	if acc.MustBreak || (acc.Width > 0 && acc.Width+f.Width > lf.Width) {
		return Fragment{Width: f.Width, MustBreak: f.MustBreak, NewLine: true}
	}
	return Fragment{Width: acc.Width + f.Width, MustBreak: f.MustBreak}
}

// Fragments creates an enumerator over the measured line-break segments of
// text. If ctx is nil, uax11.LatinContext is used.
func Fragments(text string, ctx *uax11.Context) *source.Slice[Fragment] {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	segs, must := segmentText(text)
	frags := make([]Fragment, len(segs))
	for i, seg := range segs {
		frags[i] = Fragment{Width: measure(seg, ctx), MustBreak: must[i]}
	}
	return source.FromSlice(frags)
}

func fillLines(text string, width int, ctx *uax11.Context) *enumerate.Accumulator[Fragment] {
	op := enumerate.OperatorFunc[Fragment](LineFill{Width: width}.Fill)
	return enumerate.Accumulate[Fragment](op, Fragments(text, ctx), Fragment{})
}

// Columns creates an enumerator over the running line fill of the
// line-break segments of text, for lines of the given width. Mandatory
// breaks (e.g. newlines) end a line regardless of its fill.
// A value which is not greater than its predecessor marks the start of a
// new line.
func Columns(text string, width int, ctx *uax11.Context) *enumerate.Mapped[Fragment, int] {
	return enumerate.Map[Fragment, int](fillLines(text, width, ctx), func(f Fragment) int {
		return f.Width
	})
}

// Breaks returns the byte positions of text where lines start when filling
// lines of the given width first-fit. Mandatory breaks are honoured. The first
// line, starting at 0, is not reported.
func Breaks(text string, width int, ctx *uax11.Context) []int {
	segs := Segments(text)
	fill := fillLines(text, width, ctx)
	var breaks []int
	pos := 0
	for ; fill.HasCurrent() && segs.HasCurrent(); fill.Advance() {
		if fill.Current().NewLine {
			tracer().Debugf("break @ %d", pos)
			breaks = append(breaks, pos)
		}
		pos += len(segs.Current())
		segs.Advance()
	}
	return breaks
}
