package testutil

import (
	"math"
	"math/rand"

	algofft "github.com/cwbudde/algo-fft"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine[F algofft.Float](freqHz, sampleRate, amplitude float64, length int) []F {
	out := make([]F, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = F(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DeterministicNoise generates white noise in [-amplitude, amplitude) with a
// fixed seed for reproducibility.
func DeterministicNoise[F algofft.Float](seed int64, amplitude float64, length int) []F {
	out := make([]F, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = F((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Ramp returns 0, 1, ..., n-1.
func Ramp[F algofft.Float](n int) []F {
	out := make([]F, n)
	for i := range out {
		out[i] = F(i)
	}
	return out
}

// Square returns an alternating +value/-value sequence starting at +value.
func Square[F algofft.Float](value F, length int) []F {
	out := make([]F, length)
	for i := range out {
		if i%2 == 0 {
			out[i] = value
		} else {
			out[i] = -value
		}
	}
	return out
}

// DC generates a constant-valued signal.
func DC[F algofft.Float](value F, length int) []F {
	out := make([]F, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones[F algofft.Float](n int) []F {
	return DC(F(1), n)
}

// Float64s widens samples to float64, e.g. to compute a reference with a
// float64-only library.
func Float64s[F algofft.Float](samples []F) []float64 {
	out := make([]float64, len(samples))
	for i, x := range samples {
		out[i] = float64(x)
	}
	return out
}
