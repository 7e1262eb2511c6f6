package mmsort

import (
	"slices"
	"testing"

	"github.com/zeebo/assert"

	"github.com/n7kurosawa/quicksort-mm/testhelp"
)

func TestSelect(t *testing.T) {
	const n = 500

	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			ref := shape(n)
			sorted := slices.Clone(ref)
			slices.Sort(sorted)

			for k := 0; k < n; k++ {
				x := slices.Clone(ref)

				i, ok := SelectSlice(x, k)

				assert.That(t, ok)
				assert.Equal(t, k, i)
				assert.Equal(t, sorted[k], x[i])
				assert.Equal(t, testhelp.Fingerprint(ref), testhelp.Fingerprint(x))
				for j := 0; j < i; j++ {
					assert.That(t, x[j] <= x[i])
				}
				for j := i + 1; j < n; j++ {
					assert.That(t, x[j] >= x[i])
				}
			}
		})
	}
}

// Selection stays within a constant multiple of n comparisons on every
// input shape and rank, worst case included.
func TestSelectComparisons(t *testing.T) {
	const n = 1 << 17
	const limit = 64 * n

	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			for _, k := range []int{0, n / 3, n / 2, n - 1} {
				x := shape(n)
				var c int

				i, ok := SelectLess(x, k, testhelp.Count(&c, func(i, j int) bool { return x[i] < x[j] }))

				assert.That(t, ok)
				assert.Equal(t, k, i)
				t.Logf("k=%d comparisons: %d (%.2f n)", k, c, float64(c)/n)
				assert.That(t, c <= limit)
			}
		})
	}
}
