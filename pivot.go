package mmsort

// Size tiers for pickPivot. Below tinyPivot the middle element is adequate;
// below smallPivot a median of three; below the thinning-scaled bound a
// median of five; beyond that the full repeated-step scheme.
const (
	tinyPivot  = 15
	smallPivot = 80
	flatPivot  = 200
)

// pickPivot returns a position in [a, b) whose element is guaranteed to
// fall within a bounded rank distance of the true median of the range.
//
// Large ranges use a repeated-step 3-5-2 median of medians: groups of 7 are
// drawn from three fixed zones of the range, each group is folded through
// medians of 3 plus a median of 5 into one representative, representatives
// are packed into the contiguous middle zone, and the median of that zone
// is found by recursive selection. The zone geometry depends only on the
// range length, never on the data.
//
// s >= 2 is the thinning factor: larger values sample fewer groups, paying
// slightly weaker pivot quality for fewer comparisons. Callers decay it as
// ranges shrink.
func pickPivot(data T, a, b, s int) int {
	if s < 2 {
		s = 2
	}
	n := b - a

	if n < tinyPivot {
		return a + n/2
	}
	if n < smallPivot {
		return median3(data, a, a+n/2, b-1)
	}
	if n < 30*s || n < flatPivot {
		return median5(data, a, a+n/4, a+n/2, a+3*n/4, b-1)
	}

	nnext := n / (15 * s)
	p := a
	q := a + 7*(n/15)
	r := b - 7*nnext

	for i := 0; i < nnext; i++ {
		x0 := median3(data, p+i*7+0, p+i*7+1, p+i*7+2)
		x1 := median3(data, p+i*7+3, p+i*7+4, p+i*7+5)
		x2 := median3(data, p+i*7+6, q+i, r+i*7+0)
		x3 := median3(data, r+i*7+1, r+i*7+2, r+i*7+3)
		x4 := median3(data, r+i*7+4, r+i*7+5, r+i*7+6)

		if m := median5(data, x0, x1, x2, x3, x4); m != q+i {
			data.Swap(q+i, m)
		}
	}

	// median of the packed pseudo-medians
	return findKth(data, q, q+nnext, nnext/2, 2)
}
