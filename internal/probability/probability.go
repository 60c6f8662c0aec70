// Package probability provides exact combinatorial primitives for
// sampling-without-replacement prize pools.
package probability

import "math"

// Combination returns the binomial coefficient C(n, k), computed with the
// multiplicative product form rather than factorials so intermediate values
// stay in float64 range. Returns 0 when k > n or k < 0.
func Combination(n, k int64) float64 {
	if k > n || k < 0 {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}

	// Symmetry: C(n,k) = C(n,n-k)
	if k > n-k {
		k = n - k
	}

	result := 1.0
	for i := int64(0); i < k; i++ {
		result *= float64(n-i) / float64(i+1)
	}
	return math.Round(result)
}

// HypergeometricProbability returns the probability of drawing exactly k
// successes in n draws without replacement from a population of N items
// containing K successes:
//
//	P(X = k) = C(K,k) * C(N-K,n-k) / C(N,n)
//
// Returns 0 for empty populations, zero draws, or when k exceeds K or n.
func HypergeometricProbability(N, K, n, k int64) float64 {
	if N <= 0 || K <= 0 || n <= 0 || k < 0 {
		return 0
	}
	if k > K || k > n {
		return 0
	}

	denominator := Combination(N, n)
	if denominator == 0 {
		return 0
	}
	return Combination(K, k) * Combination(N-K, n-k) / denominator
}

// WinProbability returns the exact probability that one randomly drawn
// ticket matches one of the remaining prizes for a tier. This is the
// hypergeometric probability with n=1, k=1 rather than the naive
// remaining/total division, which is only a first-order approximation and
// diverges as the pool shrinks.
func WinProbability(totalTickets, remainingPrizes int64) float64 {
	if totalTickets <= 0 || remainingPrizes <= 0 {
		return 0
	}
	return HypergeometricProbability(totalTickets, remainingPrizes, 1, 1)
}
