// Package zipper provides a cursor over a finite sequence reinterpreted
// as a ring: stepping past the last element wraps to the first, and
// stepping before the first wraps to the last. The focused element plus
// its two-sided context make repositioning O(1) without any cyclic
// linked structure, which suits navigation through UI elements such as
// tabs or windows where iteration should never abruptly end.
package zipper

import (
	"fmt"
	"slices"
	"strings"
)

// Direction selects which way a step moves relative to the order of the
// source sequence.
type Direction uint8

const (
	Forward Direction = iota
	Reverse
)

// Zipper is a ring cursor over a fixed set of elements. The elements on
// either side of the focus are kept as stacks with the nearest element
// on top, so a step is a push and a pop; crossing the seam between the
// original last and first elements drains one stack into the other.
//
// The element count is fixed at construction. The zero value is an
// empty zipper and is ready to use.
type Zipper[T any] struct {
	before []T // elements preceding the focus, nearest on top (end)
	after  []T // elements following the focus, nearest on top (end)
	focus  T
	ok     bool // false only for the empty zipper
}

// New creates an empty zipper.
func New[T any]() *Zipper[T] {
	return &Zipper[T]{}
}

// FromSlice creates a zipper focused on the first element of items,
// with the remaining elements ahead of it in order. The input slice is
// copied, never aliased. An empty or nil slice yields an empty zipper.
func FromSlice[T any](items []T) *Zipper[T] {
	z := New[T]()
	if len(items) == 0 {
		return z
	}
	z.focus = items[0]
	z.ok = true
	rest := items[1:]
	z.after = make([]T, len(rest))
	for i, v := range rest {
		z.after[len(rest)-1-i] = v
	}
	return z
}

// Focus returns the currently focused element. The second return is
// false only when the zipper is empty.
func (z *Zipper[T]) Focus() (T, bool) {
	return z.focus, z.ok
}

// Len returns the number of elements in the ring.
func (z *Zipper[T]) Len() int {
	if !z.ok {
		return 0
	}
	return len(z.before) + len(z.after) + 1
}

// Step moves the focus one element in the given direction, wrapping
// around the seam when either side runs out. Empty and single-element
// zippers are unchanged. A seam crossing drains one context stack into
// the other and costs O(n); alternating steps back and forth across the
// seam re-pay that cost each time.
func (z *Zipper[T]) Step(dir Direction) *Zipper[T] {
	if dir == Reverse {
		return z.StepBackwards()
	}
	return z.StepForwards()
}

// StepForwards moves the focus to the next element in ring order.
func (z *Zipper[T]) StepForwards() *Zipper[T] {
	if !z.ok || len(z.before)+len(z.after) == 0 {
		return z
	}
	if len(z.after) == 0 {
		// Seam: the next element forward is the original first.
		return z.ResetStart()
	}
	z.before = append(z.before, z.focus)
	z.focus = z.after[len(z.after)-1]
	z.after = z.after[:len(z.after)-1]
	return z
}

// StepBackwards moves the focus to the previous element in ring order.
func (z *Zipper[T]) StepBackwards() *Zipper[T] {
	if !z.ok || len(z.before)+len(z.after) == 0 {
		return z
	}
	if len(z.before) == 0 {
		// Seam: the next element backward is the original last.
		return z.ResetEnd()
	}
	z.after = append(z.after, z.focus)
	z.focus = z.before[len(z.before)-1]
	z.before = z.before[:len(z.before)-1]
	return z
}

// Refocus moves the focus forward to the nearest element satisfying
// match, the current focus included. If no element matches, the zipper
// walks the full ring once and ends up exactly where it started.
func (z *Zipper[T]) Refocus(match func(T) bool) *Zipper[T] {
	if !z.ok || match(z.focus) {
		return z
	}
	n := z.Len()
	for i := 1; i < n; i++ {
		if match(z.StepForwards().focus) {
			return z
		}
	}
	// Full circle: one more step restores the original focus.
	return z.StepForwards()
}

// RefocusBackwards is Refocus walking the ring in reverse. For a
// predicate with exactly one match it yields the same rotation order as
// Refocus; with several matches it finds the nearest one behind the
// focus instead of ahead of it.
func (z *Zipper[T]) RefocusBackwards(match func(T) bool) *Zipper[T] {
	if !z.ok || match(z.focus) {
		return z
	}
	n := z.Len()
	for i := 1; i < n; i++ {
		if match(z.StepBackwards().focus) {
			return z
		}
	}
	return z.StepBackwards()
}

// ResetStart moves the focus back to the first element of the sequence
// the zipper was constructed from.
func (z *Zipper[T]) ResetStart() *Zipper[T] {
	if !z.ok || len(z.before) == 0 {
		return z
	}
	z.after = append(z.after, z.focus)
	for len(z.before) > 1 {
		z.after = append(z.after, z.before[len(z.before)-1])
		z.before = z.before[:len(z.before)-1]
	}
	z.focus = z.before[0]
	z.before = z.before[:0]
	return z
}

// ResetEnd moves the focus to the last element of the sequence the
// zipper was constructed from.
func (z *Zipper[T]) ResetEnd() *Zipper[T] {
	if !z.ok || len(z.after) == 0 {
		return z
	}
	z.before = append(z.before, z.focus)
	for len(z.after) > 1 {
		z.before = append(z.before, z.after[len(z.after)-1])
		z.after = z.after[:len(z.after)-1]
	}
	z.focus = z.after[0]
	z.after = z.after[:0]
	return z
}

// At returns the element i positions ahead of the focus in ring order
// without moving the focus. Negative values index behind the focus, and
// any i wraps modulo Len, so At(0) is the focus and At(-1) the element
// a single backward step away. The second return is false only when the
// zipper is empty.
func (z *Zipper[T]) At(i int) (T, bool) {
	var zero T
	if !z.ok {
		return zero, false
	}
	n := z.Len()
	i = ((i % n) + n) % n
	switch {
	case i == 0:
		return z.focus, true
	case i <= len(z.after):
		return z.after[len(z.after)-i], true
	default:
		return z.before[i-len(z.after)-1], true
	}
}

// Clone returns a deep copy sharing no state with the receiver.
func (z *Zipper[T]) Clone() *Zipper[T] {
	return &Zipper[T]{
		before: slices.Clone(z.before),
		after:  slices.Clone(z.after),
		focus:  z.focus,
		ok:     z.ok,
	}
}

// String renders the ring in rotation order starting at the focus, as a
// bracketed comma-separated list.
func (z *Zipper[T]) String() string {
	parts := make([]string, 0, z.Len())
	for v := range z.All() {
		parts = append(parts, fmt.Sprint(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// EqualFunc reports whether the two zippers hold equal elements in the
// same rotation order, each read from its own current focus, using eq
// to compare elements. Two zippers focused on different elements of the
// same ring are not equal.
func (z *Zipper[T]) EqualFunc(o *Zipper[T], eq func(T, T) bool) bool {
	n := z.Len()
	if n != o.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		a, _ := z.At(i)
		b, _ := o.At(i)
		if !eq(a, b) {
			return false
		}
	}
	return true
}

// Equal reports whether the two zippers hold the same elements in the
// same rotation order, each read from its own current focus. Two empty
// zippers are equal.
func Equal[T comparable](a, b *Zipper[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}
