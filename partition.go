package mmsort

// partition is Hoare's partition of [a, b) around the element at pivot.
// The pivot element is parked at a, two cursors converge swapping elements
// that sit on the wrong side, and the pivot is swapped into the meeting
// point p. On return [a, p) compares <= data at p and (p, b) compares >=
// it. Equal elements may be swapped past each other; they satisfy both
// sides, so runs of duplicates still split near the middle.
func partition(data T, a, b, pivot int) int {
	if pivot != a {
		data.Swap(a, pivot)
	}
	lo, hi := a, b

loop:
	for {
		for {
			hi--
			if lo == hi {
				break loop
			}
			if !data.Less(a, hi) {
				break
			}
		}
		for {
			lo++
			if lo == hi {
				break loop
			}
			if !data.Less(lo, a) {
				break
			}
		}
		data.Swap(lo, hi)
	}

	data.Swap(a, lo)
	return lo
}
