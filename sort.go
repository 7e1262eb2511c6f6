package mmsort

import "math/bits"

// Below this many elements quicksort finishes with an insertion sort.
const sortCutoff = 16

// Thinning never drops below this floor while sorting.
const thinFloor = 10

// insertionSort sorts [a, b) by swapping adjacent out-of-order pairs.
func insertionSort(data T, a, b int) {
	for i := a + 1; i < b; i++ {
		for j := i; j > a && data.Less(j, j-1); j-- {
			data.Swap(j, j-1)
		}
	}
}

// approxSqrt is a power-of-two estimate of the square root: 2 raised to
// half the bit length. It seeds the thinning factor, which only needs the
// right order of magnitude.
func approxSqrt(n uint) int {
	return 1 << ((bits.Len(n) - 1) / 2)
}

// quicksort sorts [a, b). The shorter side of every partition is handled
// by the recursive call and the longer side by continuing the loop, which
// bounds stack depth to O(log n) on any input. Thinning decays by 12/17
// per level, an approximation of sqrt(1/2), so pivot selection gets
// cheaper as ranges shrink while keeping its quality guarantee.
func quicksort(data T, a, b, s int) {
	for {
		if s < thinFloor {
			s = thinFloor
		}
		if b-a < sortCutoff {
			insertionSort(data, a, b)
			return
		}

		p := partition(data, a, b, pickPivot(data, a, b, s))
		s = s * 12 / 17

		if p-a < b-p {
			quicksort(data, a, p, s)
			a = p + 1
		} else {
			quicksort(data, p+1, b, s)
			b = p
		}
	}
}
