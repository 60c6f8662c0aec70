package probability

import (
	"math"
	"testing"
)

func TestCombination_KnownValues(t *testing.T) {
	cases := []struct {
		n, k int64
		want float64
	}{
		{5, 2, 10},
		{10, 0, 1},
		{10, 10, 1},
		{10, 1, 10},
		{52, 5, 2598960},
		{1000000, 1, 1000000},
	}

	for _, tc := range cases {
		got := Combination(tc.n, tc.k)
		if got != tc.want {
			t.Errorf("Combination(%d, %d) = %f, want %f", tc.n, tc.k, got, tc.want)
		}
	}
}

func TestCombination_OutOfRange(t *testing.T) {
	if got := Combination(5, 6); got != 0 {
		t.Errorf("expected 0 for k > n, got %f", got)
	}
	if got := Combination(5, -1); got != 0 {
		t.Errorf("expected 0 for k < 0, got %f", got)
	}
}

func TestCombination_Symmetry(t *testing.T) {
	if Combination(20, 6) != Combination(20, 14) {
		t.Error("C(20,6) should equal C(20,14)")
	}
}

func TestHypergeometricProbability_KnownValue(t *testing.T) {
	// Drawing 2 from 10 items with 5 successes, exactly 1 success:
	// C(5,1)*C(5,1)/C(10,2) = 25/45
	got := HypergeometricProbability(10, 5, 2, 1)
	want := 25.0 / 45.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %f, got %f", want, got)
	}
}

func TestHypergeometricProbability_DegenerateInputs(t *testing.T) {
	cases := []struct {
		name       string
		N, K, n, k int64
	}{
		{"zero population", 0, 5, 1, 1},
		{"zero successes", 100, 0, 1, 1},
		{"zero draws", 100, 5, 0, 1},
		{"k exceeds K", 100, 2, 5, 3},
		{"k exceeds n", 100, 50, 1, 2},
	}

	for _, tc := range cases {
		if got := HypergeometricProbability(tc.N, tc.K, tc.n, tc.k); got != 0 {
			t.Errorf("%s: expected 0, got %f", tc.name, got)
		}
	}
}

func TestHypergeometricProbability_SumsToOne(t *testing.T) {
	// Over all k the PMF must sum to 1.
	var sum float64
	for k := int64(0); k <= 3; k++ {
		sum += HypergeometricProbability(20, 7, 3, k)
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("PMF should sum to 1, got %f", sum)
	}
}

func TestWinProbability_SingleDraw(t *testing.T) {
	// With n=1, k=1 the hypergeometric reduces to remaining/total exactly.
	got := WinProbability(1000, 10)
	if math.Abs(got-0.01) > 1e-12 {
		t.Errorf("expected 0.01, got %f", got)
	}
}

func TestWinProbability_Zeros(t *testing.T) {
	if got := WinProbability(0, 10); got != 0 {
		t.Errorf("expected 0 with no tickets, got %f", got)
	}
	if got := WinProbability(1000, 0); got != 0 {
		t.Errorf("expected 0 with no prizes, got %f", got)
	}
}

func TestWinProbability_NeverExceedsOne(t *testing.T) {
	if got := WinProbability(10, 10); got > 1 {
		t.Errorf("probability above 1: %f", got)
	}
}
