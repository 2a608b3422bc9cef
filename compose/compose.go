package compose

import "iter"

// Pair is one composition (I, J) of I + J.
type Pair struct {
	I int
	J int
}

// Count returns the number of two part compositions of n.
func Count(n int) int {
	if n < 0 {
		return 0
	}
	return n + 1
}

// Compose2 yields the pairs (0, n), (1, n-1), ... (n, 0).
//
// A negative n yields nothing. Callers that treat a negative total as an error
// must check for it themselves.
func Compose2(n int) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for i := 0; i <= n; i++ {
			if !yield(Pair{I: i, J: n - i}) {
				return
			}
		}
	}
}

// Pairs returns the compositions yielded by Compose2 as a slice.
func Pairs(n int) []Pair {
	pairs := make([]Pair, 0, Count(n))
	for p := range Compose2(n) {
		pairs = append(pairs, p)
	}
	return pairs
}
