package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/npillmayer/enumerate"
	"golang.org/x/term"
)

// table prints fold results as aligned, colored rows.
type table struct {
	w          io.Writer
	labelWidth int
	index      *color.Color
	label      *color.Color
	value      *color.Color
	running    *color.Color
}

func newTable(w io.Writer, colored bool) *table {
	tab := &table{
		w:          w,
		labelWidth: labelWidthFor(w),
		index:      color.New(color.Faint),
		label:      color.New(color.FgBlue),
		value:      color.New(color.FgWhite),
		running:    color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{tab.index, tab.label, tab.value, tab.running} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return tab
}

// Header prints the column titles.
func (tab *table) Header(op string) {
	fmt.Fprintf(tab.w, "%5s  %-*s  %12s  %12s\n", "#", tab.labelWidth, "element", "value", op)
}

// Row prints one position of the fold.
func (tab *table) Row(i int, label string, value, running float64) {
	tab.index.Fprintf(tab.w, "%5d", i)
	fmt.Fprint(tab.w, "  ")
	tab.label.Fprintf(tab.w, "%-*s", tab.labelWidth, truncate(label, tab.labelWidth))
	fmt.Fprint(tab.w, "  ")
	tab.value.Fprintf(tab.w, "%12s", format(value))
	fmt.Fprint(tab.w, "  ")
	tab.running.Fprintf(tab.w, "%12s", format(running))
	fmt.Fprintln(tab.w)
}

// Total prints a single final value.
func (tab *table) Total(v float64) {
	tab.running.Fprintln(tab.w, format(v))
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

// labelWidthFor sizes the element column from the width of the terminal, if
// w is one.
func labelWidthFor(w io.Writer) int {
	const others = 5 + 2 + 2 + 12 + 2 + 12
	linewidth := 65
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if tw, _, err := term.GetSize(fd); err == nil && tw > others+10 {
				linewidth = tw - 1
			}
		}
	}
	enumerate.T().Debugf("runfold: line width %d en", linewidth)
	if linewidth-others < 10 {
		return 10
	}
	return linewidth - others
}
