package textsrc

import (
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/enumerate"
	"github.com/npillmayer/enumerate/source"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
)

func TestSegments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "enumerate")
	defer teardown()

	text := "The quick brown fox"
	segs := enumerate.Collect[string](Segments(text))
	if joined := strings.Join(segs, ""); joined != text {
		t.Fatalf("segments do not concatenate to text: %q", joined)
	}
	var words []string
	for _, s := range segs {
		if w := strings.TrimSpace(s); w != "" {
			words = append(words, w)
		}
	}
	if want := []string{"The", "quick", "brown", "fox"}; !slices.Equal(words, want) {
		t.Fatalf("segment words=%v want=%v", words, want)
	}
}

func TestSegmentsEmpty(t *testing.T) {
	if Segments("").HasCurrent() {
		t.Fatalf("segments of empty text are live")
	}
}

func TestWidths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "enumerate")
	defer teardown()

	widths := Widths(source.Of("abc", "de", ""), nil)
	if got, want := enumerate.Collect[int](widths), []int{3, 2, 0}; !slices.Equal(got, want) {
		t.Fatalf("widths=%v want=%v", got, want)
	}
	sum := enumerate.Sum[int](Widths(source.Of("abc", "de"), uax11.LatinContext))
	if b := enumerate.Back[int](sum); b != 5 {
		t.Fatalf("total width=%d want=5", b)
	}
}

func TestLineFill(t *testing.T) {
	lf := LineFill{Width: 10}
	type tc struct {
		acc, w, want int
	}
	cases := []tc{
		{acc: 0, w: 4, want: 4},
		{acc: 4, w: 6, want: 10},
		{acc: 4, w: 7, want: 7},
		{acc: 0, w: 12, want: 12},
		{acc: 12, w: 1, want: 1},
	}
	for _, c := range cases {
		if got := lf.Apply(c.acc, c.w); got != c.want {
			t.Fatalf("linefill(%d, %d)=%d want=%d", c.acc, c.w, got, c.want)
		}
	}
	fill := enumerate.Accumulate[int](lf, source.Of(4, 4, 4, 9, 1), 0)
	if got, want := enumerate.Collect[int](fill), []int{4, 8, 4, 9, 10}; !slices.Equal(got, want) {
		t.Fatalf("line fill=%v want=%v", got, want)
	}
}

func TestColumnsAndBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "enumerate")
	defer teardown()

	text := "aaa bbb ccc"
	cols := enumerate.Collect[int](Columns(text, 8, nil))
	if len(cols) == 0 || cols[len(cols)-1] != 3 {
		t.Fatalf("columns=%v, want last line to be 3 en wide", cols)
	}
	breaks := Breaks(text, 8, nil)
	if want := []int{8}; !slices.Equal(breaks, want) {
		t.Fatalf("breaks=%v want=%v", breaks, want)
	}
	if b := Breaks(text, 80, nil); len(b) != 0 {
		t.Fatalf("expected no breaks for wide lines, got %v", b)
	}
}

func TestWidthsOfEmptyFragments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "enumerate")
	defer teardown()

	if got, want := enumerate.Collect[int](Widths(source.Of("ab", ""), nil)), []int{2, 0}; !slices.Equal(got, want) {
		t.Fatalf("widths=%v want=%v", got, want)
	}
	if got := enumerate.Collect[int](Widths(source.Of("", ""), nil)); !slices.Equal(got, []int{0, 0}) {
		t.Fatalf("widths of empty fragments=%v, want zeros", got)
	}
}

func TestBreaksAtNewline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "enumerate")
	defer teardown()

	frags := enumerate.Collect[Fragment](Fragments("x\ny z", nil))
	if len(frags) == 0 || !frags[0].MustBreak {
		t.Fatalf("expected first fragment to end with a mandatory break, got %+v", frags)
	}
	if b := Breaks("x\ny z", 4, nil); !slices.Equal(b, []int{2}) {
		t.Fatalf("breaks=%v want=[2]", b)
	}
	if b := Breaks("x\ny z", 80, nil); !slices.Equal(b, []int{2}) {
		t.Fatalf("mandatory break ignored for wide lines: breaks=%v want=[2]", b)
	}
}

func TestLineFillFragments(t *testing.T) {
	lf := LineFill{Width: 10}
	fill := enumerate.Accumulate[Fragment](enumerate.OperatorFunc[Fragment](lf.Fill),
		source.Of(
			Fragment{Width: 4},
			Fragment{Width: 2, MustBreak: true},
			Fragment{Width: 3},
			Fragment{Width: 8},
		), Fragment{})
	var widths []int
	var starts []bool
	for _, f := range enumerate.Collect[Fragment](fill) {
		widths = append(widths, f.Width)
		starts = append(starts, f.NewLine)
	}
	if want := []int{4, 6, 3, 8}; !slices.Equal(widths, want) {
		t.Fatalf("fill=%v want=%v", widths, want)
	}
	if want := []bool{false, false, true, true}; !slices.Equal(starts, want) {
		t.Fatalf("new lines=%v want=%v", starts, want)
	}
}
