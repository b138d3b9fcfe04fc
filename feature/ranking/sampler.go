package ranking

import (
	"math"
	"slices"
)

// SeededIndex returns the swap partner for position i of a seeded
// Fisher-Yates pass: floor(seed*(i+1)) mod (i+1), folded into [0, i].
func SeededIndex(seed float64, i int) int {
	n := float64(i + 1)
	j := math.Mod(math.Floor(seed*n), n)
	if math.IsNaN(j) {
		// seed*n overflowed to ±Inf
		return 0
	}
	if j < 0 {
		j += n
	}
	return int(j)
}

// Shuffle permutes items in place, walking i from len-1 down to 1 and
// swapping i with SeededIndex(seed, i). The result depends only on the seed
// and the input order.
func Shuffle[T any](items []T, seed float64) {
	for i := len(items) - 1; i > 0; i-- {
		j := SeededIndex(seed, i)
		items[i], items[j] = items[j], items[i]
	}
}

// PickPair returns the first two elements of a seeded shuffle of items.
// The input slice is not modified.
func PickPair[T any](items []T, seed float64) (T, T, error) {
	var zero T
	if len(items) < 2 {
		return zero, zero, ErrInsufficientData
	}
	if math.IsNaN(seed) || math.IsInf(seed, 0) {
		return zero, zero, ErrInvalidSeed
	}

	shuffled := slices.Clone(items)
	Shuffle(shuffled, seed)
	return shuffled[0], shuffled[1], nil
}
