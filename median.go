package mmsort

// median3 returns the position among a, b, c holding the middle value,
// using at most 3 comparisons. The data is not mutated.
func median3(data T, a, b, c int) int {
	if data.Less(a, b) {
		switch {
		case data.Less(b, c):
			return b
		case data.Less(a, c):
			return c
		default:
			return a
		}
	}
	switch {
	case data.Less(a, c):
		return a
	case data.Less(b, c):
		return c
	default:
		return b
	}
}

// median5 returns the position among a..e holding the middle value, using
// at most 6 comparisons. Only the local position variables are shuffled to
// track which holds the smaller value; the data is not mutated.
func median5(data T, a, b, c, d, e int) int {
	if data.Less(b, a) {
		a, b = b, a
	}
	if data.Less(d, c) {
		c, d = d, c
	}
	if data.Less(c, a) {
		a, c = c, a
		b, d = d, b
	}
	if data.Less(e, b) {
		b, e = e, b
	}
	if data.Less(c, b) {
		if data.Less(d, b) {
			return d
		}
		return b
	}
	if data.Less(e, c) {
		return e
	}
	return c
}
