package testutil

import (
	"math"
	"testing"

	algofft "github.com/cwbudde/algo-fft"
)

// Tolerance returns a default absolute tolerance for values of order one
// computed in F: 1e-4 for float32, 1e-10 for float64.
func Tolerance[F algofft.Float]() float64 {
	var zero F
	if _, ok := any(zero).(float32); ok {
		return 1e-4
	}
	return 1e-10
}

// RequireNearlyEqual fails t if got and want differ by more than eps
// (absolute tolerance). name labels the value in the failure message.
func RequireNearlyEqual[F algofft.Float](t *testing.T, name string, got, want F, eps float64) {
	t.Helper()
	diff := math.Abs(float64(got) - float64(want))
	if diff > eps || math.IsNaN(diff) {
		t.Fatalf("%s: got %v, want %v (diff %v > eps %v)", name, got, want, diff, eps)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[F algofft.Float](t *testing.T, data ...F) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
