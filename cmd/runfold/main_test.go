package main

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/enumerate"
	"github.com/npillmayer/enumerate/source"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	cmd.SetIn(strings.NewReader(input))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunfoldLast(t *testing.T) {
	type tc struct {
		op   string
		want string
	}
	cases := []tc{
		{op: "sum", want: "6"},
		{op: "product", want: "6"},
		{op: "min", want: "1"},
		{op: "max", want: "3"},
	}
	for _, c := range cases {
		out, err := execute(t, "1 2\n3", "--last", "--op", c.op)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.op, err)
		}
		if strings.TrimSpace(out) != c.want {
			t.Fatalf("%s: output=%q want=%q", c.op, out, c.want)
		}
	}
}

func TestRunfoldTable(t *testing.T) {
	out, err := execute(t, "1 2 3", "--op", "sum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got %d lines:\n%s", len(lines), out)
	}
	var running []string
	for _, l := range lines[1:] {
		f := strings.Fields(l)
		running = append(running, f[len(f)-1])
	}
	if want := []string{"1", "3", "6"}; !slices.Equal(running, want) {
		t.Fatalf("running column=%v want=%v", running, want)
	}
}

func TestRunfoldSeed(t *testing.T) {
	out, err := execute(t, "1 2 3", "--last", "--seed", "10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "16" {
		t.Fatalf("output=%q want=16", out)
	}
}

func TestRunfoldErrors(t *testing.T) {
	if _, err := execute(t, "1 2", "--op", "median"); !errors.Is(err, errUnknownOp) {
		t.Fatalf("expected errUnknownOp, got %v", err)
	}
	if _, err := execute(t, "1 x", "--op", "sum"); !errors.Is(err, errInput) {
		t.Fatalf("expected errInput, got %v", err)
	}
	if _, err := execute(t, "1 2", "--seed", "abc"); !errors.Is(err, errSeed) {
		t.Fatalf("expected errSeed, got %v", err)
	}
	if _, err := execute(t, "", "--last"); !errors.Is(err, errInput) {
		t.Fatalf("expected errInput for empty input, got %v", err)
	}
}

func TestRunfoldHTML(t *testing.T) {
	out, err := execute(t, "<p>abc <i>de</i></p>", "--html", "--last")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "6" {
		t.Fatalf("output=%q want=6", out)
	}
}

func TestNewFoldFill(t *testing.T) {
	acc, err := newFold(options{op: "fill", width: 10}, source.Of[float64](4, 4, 4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := enumerate.Collect[float64](acc), []float64{4, 8, 4}; !slices.Equal(got, want) {
		t.Fatalf("fill=%v want=%v", got, want)
	}
	if _, err = newFold(options{op: "fill"}, source.Of[float64](1)); !errors.Is(err, errInput) {
		t.Fatalf("expected errInput for zero width, got %v", err)
	}
}

func TestTruncate(t *testing.T) {
	if s := truncate("abcdef", 4); s != "abc…" {
		t.Fatalf("truncate=%q want=%q", s, "abc…")
	}
	if s := truncate("abc", 4); s != "abc" {
		t.Fatalf("truncate=%q want=%q", s, "abc")
	}
}

func TestRunfoldEnvironment(t *testing.T) {
	t.Setenv("RUNFOLD_OP", "max")
	out, err := execute(t, "1 3 2", "--last")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "3" {
		t.Fatalf("RUNFOLD_OP=max: output=%q want=3", out)
	}
	out, err = execute(t, "1 3 2", "--last", "--op", "sum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "6" {
		t.Fatalf("flag should override environment: output=%q want=6", out)
	}
}

func TestRunfoldText(t *testing.T) {
	out, err := execute(t, "hello world", "--text", "--last")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "11" {
		t.Fatalf("output=%q want=11", out)
	}
	out, err = execute(t, "hello world", "--text", "--op", "max", "--last")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "6" {
		t.Fatalf("widest segment: output=%q want=6", out)
	}
}

func TestLabelWidthForNonTerminal(t *testing.T) {
	if w := labelWidthFor(&bytes.Buffer{}); w != 30 {
		t.Fatalf("label width=%d want=30", w)
	}
	tab := newTable(&bytes.Buffer{}, false)
	if tab.labelWidth != 30 {
		t.Fatalf("table label width=%d want=30", tab.labelWidth)
	}
}
