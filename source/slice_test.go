package source

import (
	"slices"
	"testing"

	"github.com/npillmayer/enumerate"
)

func TestSliceForward(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	if s.Size() != 3 {
		t.Fatalf("size=%d want=3", s.Size())
	}
	var got []int
	for ; s.HasCurrent(); s.Advance() {
		got = append(got, s.Current())
	}
	if want := []int{1, 2, 3}; !slices.Equal(got, want) {
		t.Fatalf("forward=%v want=%v", got, want)
	}
	if s.Size() != 0 {
		t.Fatalf("size at end=%d want=0", s.Size())
	}
	s.Advance()
	if s.HasCurrent() || s.Size() != 0 {
		t.Fatalf("advancing past end changed the cursor")
	}
}

func TestSliceCloneIndependence(t *testing.T) {
	s := Of("x", "y")
	c := s.Clone()
	c.Advance()
	if s.Current() != "x" || c.Current() != "y" {
		t.Fatalf("clone not independent: %q, %q", s.Current(), c.Current())
	}
}

func TestReverse(t *testing.T) {
	r := Reverse([]int{1, 2, 3})
	if r.Size() != 3 {
		t.Fatalf("size=%d want=3", r.Size())
	}
	got := enumerate.Collect[int](r)
	if want := []int{3, 2, 1}; !slices.Equal(got, want) {
		t.Fatalf("reverse=%v want=%v", got, want)
	}
	if Reverse([]int{}).HasCurrent() {
		t.Fatalf("reverse of empty slice is live")
	}
}

func TestEmpty(t *testing.T) {
	e := Empty[string]()
	if e.HasCurrent() || e.Size() != 0 {
		t.Fatalf("empty cursor is live")
	}
	defer func() {
		if r := recover(); r != enumerate.ErrNotLive {
			t.Fatalf("expected panic with ErrNotLive, got %v", r)
		}
	}()
	_ = e.Current()
}
