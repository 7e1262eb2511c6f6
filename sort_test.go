package mmsort

import (
	"math"
	"math/bits"
	"slices"
	"testing"

	"github.com/zeebo/assert"

	"github.com/n7kurosawa/quicksort-mm/testhelp"
)

func TestSort(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 7, 15, 16, 17, 100, 1000, 1 << 16}

	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			for _, n := range sizes {
				x := shape(n)
				fp := testhelp.Fingerprint(x)

				Slice(x)

				assert.Equal(t, fp, testhelp.Fingerprint(x))
				assert.That(t, slices.IsSorted(x))

				// sorting again changes nothing
				again := slices.Clone(x)
				Slice(again)
				assert.That(t, slices.Equal(again, x))
			}
		})
	}
}

// Pivot quality keeps the comparison count within a constant multiple of
// n log n on every input shape, with no fallback algorithm. The limit is
// far above the proven worst-case constant but far below quadratic.
func TestSortComparisons(t *testing.T) {
	const n = 1 << 17
	limit := 32 * n * bits.Len(n)

	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			x := shape(n)
			var c int
			Less(x, testhelp.Count(&c, func(i, j int) bool { return x[i] < x[j] }))

			t.Logf("comparisons: %d (%.2f n log2 n)", c, float64(c)/(float64(n)*math.Log2(n)))
			assert.That(t, c <= limit)
			assert.That(t, slices.IsSorted(x))
		})
	}
}
