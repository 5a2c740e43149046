package zipper

import (
	"iter"
	"slices"
)

// FromSeq creates a zipper from any finite sequence producer, focused
// on the first yielded element. An empty sequence yields an empty
// zipper. The sequence must be finite.
func FromSeq[T any](seq iter.Seq[T]) *Zipper[T] {
	return FromSlice(slices.Collect(seq))
}

// All yields every element in rotation order, starting at the focus and
// following the ring forward until all elements have been yielded. The
// focus does not move.
func (z *Zipper[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !z.ok {
			return
		}
		if !yield(z.focus) {
			return
		}
		for i := len(z.after) - 1; i >= 0; i-- {
			if !yield(z.after[i]) {
				return
			}
		}
		for i := 0; i < len(z.before); i++ {
			if !yield(z.before[i]) {
				return
			}
		}
	}
}

// Backward yields every element starting at the focus and following the
// ring in reverse. The focus does not move.
func (z *Zipper[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !z.ok {
			return
		}
		if !yield(z.focus) {
			return
		}
		for i := len(z.before) - 1; i >= 0; i-- {
			if !yield(z.before[i]) {
				return
			}
		}
		for i := 0; i < len(z.after); i++ {
			if !yield(z.after[i]) {
				return
			}
		}
	}
}

// Slice returns the elements in rotation order starting at the focus.
// The empty zipper returns nil.
func (z *Zipper[T]) Slice() []T {
	return slices.Collect(z.All())
}
