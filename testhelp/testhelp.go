// Package testhelp provides input shapes and measurement helpers shared by
// the ordering tests and benchmarks.
package testhelp

import (
	"encoding/binary"

	"github.com/zeebo/mwc"
	"github.com/zeebo/xxh3"
)

var rng = mwc.Rand()

func Random(n int) []uint64 {
	v := make([]uint64, n)
	for i := range v {
		v[i] = rng.Uint64()
	}
	return v
}

func Sorted(n int) []uint64 {
	v := make([]uint64, n)
	for i := range v {
		v[i] = uint64(i)
	}
	return v
}

func Reversed(n int) []uint64 {
	v := make([]uint64, n)
	for i := range v {
		v[i] = uint64(n - i)
	}
	return v
}

func Equal(n int) []uint64 {
	v := make([]uint64, n)
	for i := range v {
		v[i] = 42
	}
	return v
}

// OrganPipe rises to the middle and falls back down.
func OrganPipe(n int) []uint64 {
	v := make([]uint64, n)
	for i := range v {
		if i < n/2 {
			v[i] = uint64(i)
		} else {
			v[i] = uint64(n - i)
		}
	}
	return v
}

// Sawtooth cycles through 0..period-1.
func Sawtooth(n, period int) []uint64 {
	v := make([]uint64, n)
	for i := range v {
		v[i] = uint64(i % period)
	}
	return v
}

// Fingerprint is an order-independent hash of the multiset of values: the
// wrapping sum of every value's hash. Two slices fingerprint equal exactly
// when they are permutations of each other, up to collisions.
func Fingerprint(x []uint64) uint64 {
	var buf [8]byte
	var sum uint64
	for _, v := range x {
		binary.LittleEndian.PutUint64(buf[:], v)
		sum += xxh3.Hash(buf[:])
	}
	return sum
}

// Count wraps less so that every call increments *n.
func Count(n *int, less func(i, j int) bool) func(i, j int) bool {
	return func(i, j int) bool {
		*n++
		return less(i, j)
	}
}
