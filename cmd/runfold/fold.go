package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/enumerate"
	"github.com/npillmayer/enumerate/source"
	"github.com/npillmayer/enumerate/textsrc"
	"github.com/spf13/cobra"
)

var (
	errUnknownOp = errors.New("runfold: unknown operation")
	errSeed      = errors.New("runfold: illegal seed")
	errInput     = errors.New("runfold: illegal input")
)

// sequence is the input to fold: labels for display and the values to fold.
type sequence struct {
	labels []string
	values []float64
}

func run(cmd *cobra.Command, input string, opts options) error {
	r, closer, err := openInput(cmd, input)
	if err != nil {
		return err
	}
	defer closer()
	seq, err := readSequence(r, opts)
	if err != nil {
		return err
	}
	acc, err := newFold(opts, source.FromSlice(seq.values))
	if err != nil {
		return err
	}
	enumerate.T().Debugf("runfold: folding %d values with %s", len(seq.values), opts.op)
	tab := newTable(cmd.OutOrStdout(), !opts.noColor)
	if opts.last {
		if !acc.HasCurrent() {
			return fmt.Errorf("%w: no values", errInput)
		}
		tab.Total(enumerate.Back[float64](acc))
		return nil
	}
	tab.Header(opts.op)
	labels := source.FromSlice(seq.labels)
	for i := 0; acc.HasCurrent(); i++ {
		tab.Row(i, labels.Current(), acc.Source().Current(), acc.Current())
		acc.Advance()
		labels.Advance()
	}
	return nil
}

func openInput(cmd *cobra.Command, input string) (io.Reader, func(), error) {
	if input == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func readSequence(r io.Reader, opts options) (sequence, error) {
	switch {
	case opts.html:
		texts, err := textsrc.HTMLText(r)
		if err != nil {
			return sequence{}, err
		}
		return widthSequence(texts), nil
	case opts.text:
		b, err := io.ReadAll(r)
		if err != nil {
			return sequence{}, err
		}
		return widthSequence(textsrc.Segments(string(b))), nil
	}
	var seq sequence
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return sequence{}, fmt.Errorf("%w: %q is not a number", errInput, scanner.Text())
		}
		seq.labels = append(seq.labels, scanner.Text())
		seq.values = append(seq.values, v)
	}
	return seq, scanner.Err()
}

// widthSequence labels every fragment of frags with its display width.
func widthSequence(frags enumerate.Enumerator[string]) sequence {
	var seq sequence
	widths := textsrc.Widths(frags, nil)
	for ; frags.HasCurrent(); frags.Advance() {
		seq.labels = append(seq.labels, strconv.Quote(frags.Current()))
		seq.values = append(seq.values, float64(widths.Current()))
		widths.Advance()
	}
	return seq
}

// newFold creates the running fold selected by opts over e.
func newFold(opts options, e enumerate.Enumerator[float64]) (*enumerate.Accumulator[float64], error) {
	var seed *float64
	if opts.seed != "" {
		s, err := strconv.ParseFloat(opts.seed, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errSeed, opts.seed)
		}
		seed = &s
	}
	switch opts.op {
	case "sum":
		if seed != nil {
			return enumerate.SumFrom(e, *seed), nil
		}
		return enumerate.Sum(e), nil
	case "product":
		if seed != nil {
			return enumerate.ProductFrom(e, *seed), nil
		}
		return enumerate.Product(e), nil
	case "min":
		if seed != nil {
			return enumerate.RunningMinFrom(e, *seed), nil
		}
		return enumerate.RunningMin(e), nil
	case "max":
		if seed != nil {
			return enumerate.RunningMaxFrom(e, *seed), nil
		}
		return enumerate.RunningMax(e), nil
	case "fill":
		if opts.width <= 0 {
			return nil, fmt.Errorf("%w: width must be positive", errInput)
		}
		fill := lineFill{textsrc.LineFill{Width: opts.width}}
		if seed != nil {
			return enumerate.Accumulate[float64](fill, e, *seed), nil
		}
		return enumerate.Accumulate[float64](fill, e, 0), nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownOp, opts.op)
}

// lineFill applies a first-fit line filler to whole-numbered widths.
type lineFill struct {
	textsrc.LineFill
}

func (lf lineFill) Apply(acc, w float64) float64 {
	return float64(lf.LineFill.Apply(int(acc), int(w)))
}
