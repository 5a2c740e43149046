package zipper

import (
	"slices"
	"testing"
)

func TestFromSeq(t *testing.T) {
	z := FromSeq(slices.Values([]int{3, 1, 4, 1, 5}))
	if got := focused(t, z); got != 3 {
		t.Errorf("FromSeq should focus the first yielded element, got %d", got)
	}
	if z.Len() != 5 {
		t.Errorf("Expected Len 5, got %d", z.Len())
	}

	empty := FromSeq(slices.Values([]int(nil)))
	if _, ok := empty.Focus(); ok {
		t.Error("FromSeq over an empty sequence should build an empty zipper")
	}
}

func TestAllYieldsRotationOrder(t *testing.T) {
	z := FromSlice(intRange(10))
	z.Refocus(func(i int) bool { return i == 5 })

	got := slices.Collect(z.All())
	want := []int{5, 6, 7, 8, 9, 0, 1, 2, 3, 4}
	if !slices.Equal(got, want) {
		t.Errorf("All should yield rotation order from the focus: got %v, want %v", got, want)
	}

	// Iteration must not move the focus.
	if v := focused(t, z); v != 5 {
		t.Errorf("Iterating should leave the focus at 5, got %d", v)
	}
}

func TestAllStopsOnEarlyBreak(t *testing.T) {
	z := FromSlice(intRange(10))
	z.Refocus(func(i int) bool { return i == 8 })

	var got []int
	for v := range z.All() {
		got = append(got, v)
		if len(got) == 4 {
			break
		}
	}
	if !slices.Equal(got, []int{8, 9, 0, 1}) {
		t.Errorf("A broken-off iteration should yield the first elements only, got %v", got)
	}
}

func TestBackwardYieldsReverseRotationOrder(t *testing.T) {
	z := FromSlice(intRange(10))
	z.Refocus(func(i int) bool { return i == 5 })

	got := slices.Collect(z.Backward())
	want := []int{5, 4, 3, 2, 1, 0, 9, 8, 7, 6}
	if !slices.Equal(got, want) {
		t.Errorf("Backward should yield reverse order from the focus: got %v, want %v", got, want)
	}
}

func TestSliceRoundTrip(t *testing.T) {
	input := []int{2, 7, 1, 8, 2, 8}
	z := FromSlice(input)
	z.StepForwards().StepForwards().StepBackwards().StepForwards()

	out := z.Slice()
	if len(out) != len(input) {
		t.Fatalf("Reconstruction should keep the element count: got %d, want %d", len(out), len(input))
	}

	// Same multiset as the input.
	a, b := slices.Clone(input), slices.Clone(out)
	slices.Sort(a)
	slices.Sort(b)
	if !slices.Equal(a, b) {
		t.Errorf("Reconstruction changed the element multiset: got %v from %v", out, input)
	}

	// And a rebuilt zipper is indistinguishable from the current rotation.
	if !Equal(z, FromSlice(out)) {
		t.Errorf("Rebuilding from Slice should reproduce the rotation: %s vs %v", z, out)
	}

	if New[int]().Slice() != nil {
		t.Error("The empty zipper should reconstruct to nil")
	}
}
