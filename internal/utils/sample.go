package utils

import "math/rand"

// Sample returns up to n items picked uniformly without replacement from
// items, drawing from rnd. The input slice is left untouched.
func Sample[T any](items []T, n int, rnd *rand.Rand) []T {
	if n <= 0 || len(items) == 0 {
		return []T{}
	}
	if n > len(items) {
		n = len(items)
	}

	idx := rnd.Perm(len(items))[:n]
	out := make([]T, 0, n)
	for _, i := range idx {
		out = append(out, items[i])
	}
	return out
}

// Shuffle returns a shuffled copy of items.
func Shuffle[T any](items []T, rnd *rand.Rand) []T {
	out := make([]T, len(items))
	copy(out, items)
	rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
