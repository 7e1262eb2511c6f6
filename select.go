package mmsort

// Below this many elements quickselect finishes with an insertion sort.
const selectCutoff = 7

// findKth places the k-th smallest element of [a, b) at position a+k and
// returns that position, with [a, a+k) comparing <= it and (a+k, b)
// comparing >= it. Requires 0 <= k < b-a. Exactly one side survives each
// partition, so the loop makes O(b-a) comparisons in total, worst case.
func findKth(data T, a, b, k, s int) int {
	for {
		if b-a < selectCutoff {
			insertionSort(data, a, b)
			return a + k
		}

		p := partition(data, a, b, pickPivot(data, a, b, s))
		nl := p - a

		switch {
		case k < nl:
			b = a + nl
		case k > nl:
			a, k = p+1, k-nl-1
		default:
			return p
		}

		// The surviving side no longer benefits from wide sampling,
		// so thinning drops to its floor.
		s = 2
	}
}
