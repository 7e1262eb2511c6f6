// Package mmsort implements in-place sorting and selection with worst-case
// optimal comparison counts: O(n log n) for a full sort and O(n) for the
// k-th order statistic, on every input. Pivots come from a repeated-step
// median of medians estimator with thinning, so no fallback algorithm is
// needed to defeat adversarial inputs.
package mmsort

import (
	"cmp"

	"github.com/zeebo/errs/v2"
)

// T is the capability an ordering operation needs from its input: compare
// the elements at two positions and swap the elements at two positions.
// Positions are always in [0, n) for the n passed alongside.
type T struct {
	Less func(i, j int) bool
	Swap func(i, j int)
}

// Sort permutes positions [0, n) into non-decreasing order. Calling with
// n <= 1 is a no-op, so a T with nil funcs is safe for degenerate sizes.
func Sort(data T, n int) {
	if n <= 1 {
		return
	}
	quicksort(data, 0, n, approxSqrt(uint(n)))
}

// Select permutes positions [0, n) so that the k-th smallest element lands
// at position k, everything left of it compares <= it, and everything right
// of it compares >= it. Neither side is otherwise ordered. It returns the
// position k and true, or 0 and false without touching data when k is not
// a valid rank.
func Select(data T, n, k int) (int, bool) {
	if k < 0 || k >= n {
		return 0, false
	}
	if n == 1 {
		return 0, true
	}
	return findKth(data, 0, n, k, approxSqrt(uint(n))), true
}

// Less sorts x by the provided ordering.
func Less[S ~[]E, E any](x S, less func(i, j int) bool) {
	Sort(T{
		Less: less,
		Swap: func(i, j int) { x[i], x[j] = x[j], x[i] },
	}, len(x))
}

// Slice sorts a slice of naturally ordered elements.
func Slice[S ~[]E, E cmp.Ordered](x S) {
	Sort(T{
		Less: func(i, j int) bool { return x[i] < x[j] },
		Swap: func(i, j int) { x[i], x[j] = x[j], x[i] },
	}, len(x))
}

// SelectLess moves the k-th smallest element of x under the provided
// ordering to x[k] and returns its position. ok is false and x is left
// alone when k is not a valid rank for x.
func SelectLess[S ~[]E, E any](x S, k int, less func(i, j int) bool) (int, bool) {
	return Select(T{
		Less: less,
		Swap: func(i, j int) { x[i], x[j] = x[j], x[i] },
	}, len(x), k)
}

// SelectSlice moves the k-th smallest element of x to x[k] and returns its
// position. ok is false and x is left alone when k is not a valid rank.
func SelectSlice[S ~[]E, E cmp.Ordered](x S, k int) (int, bool) {
	return Select(T{
		Less: func(i, j int) bool { return x[i] < x[j] },
		Swap: func(i, j int) { x[i], x[j] = x[j], x[i] },
	}, len(x), k)
}

// Kth returns the k-th smallest value in x, partially reordering x as a
// side effect. It errors only when k is not a valid rank for x.
func Kth[S ~[]E, E cmp.Ordered](x S, k int) (E, error) {
	i, ok := SelectSlice(x, k)
	if !ok {
		var zero E
		return zero, errs.Errorf("rank %d out of range for %d elements", k, len(x))
	}
	return x[i], nil
}
