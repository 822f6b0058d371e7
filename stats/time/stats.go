package time

import (
	"math"

	"github.com/cwbudde/algo-stats/stats/estimator"
)

// Stats holds time-domain signal statistics.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	DC_dB          float64
	RMS            float64
	RMS_dB         float64
	Max            float64
	MaxPos         int
	Min            float64
	MinPos         int
	Peak           float64 // max(|max|, |min|)
	Peak_dB        float64
	Range          float64 // max - min
	Range_dB       float64
	CrestFactor    float64 // peak / RMS (linear)
	CrestFactor_dB float64
	Energy         float64 // sum of squares
	Power          float64 // mean of squares
	ZeroCrossings  int
	Variance       float64 // population variance, not clamped
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// emptyStats returns a zero-valued Stats with -Inf for all dB fields.
func emptyStats() Stats {
	return Stats{
		DC_dB:          math.Inf(-1),
		RMS_dB:         math.Inf(-1),
		Peak_dB:        math.Inf(-1),
		Range_dB:       math.Inf(-1),
		CrestFactor_dB: math.Inf(-1),
	}
}

// StreamingStatsT accumulates time-domain statistics incrementally across
// multiple blocks of samples. No samples are retained: the mean, power and
// variance come from a running [estimator.MeanSquaredErrorT], the rest from
// a handful of scalar trackers.
type StreamingStatsT[F estimator.Number] struct {
	moments       estimator.MeanSquaredErrorT[F]
	maxVal        F
	maxPos        int
	minVal        F
	minPos        int
	zeroCrossings int
	lastSample    F
}

// StreamingStats is the float64 specialization.
type StreamingStats = StreamingStatsT[float64]

// StreamingStats32 is the float32 specialization.
type StreamingStats32 = StreamingStatsT[float32]

// NewStreamingStats creates a new StreamingStats accumulator.
func NewStreamingStats[F estimator.Number]() *StreamingStatsT[F] {
	return &StreamingStatsT[F]{}
}

// Update adds a block of samples to the running statistics.
func (s *StreamingStatsT[F]) Update(samples []F) {
	for _, x := range samples {
		s.UpdateSample(x)
	}
}

// UpdateSample adds a single sample to the running statistics.
func (s *StreamingStatsT[F]) UpdateSample(x F) {
	pos := s.Len()
	s.moments.Update(x)

	if pos == 0 {
		s.maxVal, s.maxPos = x, 0
		s.minVal, s.minPos = x, 0
		s.lastSample = x

		return
	}

	if x > s.maxVal {
		s.maxVal = x
		s.maxPos = pos
	}

	if x < s.minVal {
		s.minVal = x
		s.minPos = pos
	}

	// Zero crossings: check against previous sample, which may belong to
	// the previous block.
	if s.lastSample*x < 0 {
		s.zeroCrossings++
	}

	s.lastSample = x
}

// Len returns the number of samples accumulated so far.
func (s *StreamingStatsT[F]) Len() int {
	return int(s.moments.Average.Count())
}

// Result computes the statistics of all samples accumulated so far.
func (s *StreamingStatsT[F]) Result() Stats {
	n := s.Len()
	if n == 0 {
		return emptyStats()
	}

	mean := float64(s.moments.Average.Evaluate())
	power := float64(s.moments.SecondMoment())
	maxVal := float64(s.maxVal)
	minVal := float64(s.minVal)

	rms := math.Sqrt(power)
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))
	rangeVal := maxVal - minVal

	var crest, crestdB float64
	if rms != 0 {
		crest = peak / rms
		crestdB = ampTodB(crest)
	}

	return Stats{
		Length:         n,
		DC:             mean,
		DC_dB:          ampTodB(mean),
		RMS:            rms,
		RMS_dB:         ampTodB(rms),
		Max:            maxVal,
		MaxPos:         s.maxPos,
		Min:            minVal,
		MinPos:         s.minPos,
		Peak:           peak,
		Peak_dB:        ampTodB(peak),
		Range:          rangeVal,
		Range_dB:       ampTodB(rangeVal),
		CrestFactor:    crest,
		CrestFactor_dB: crestdB,
		Energy:         power * float64(n),
		Power:          power,
		ZeroCrossings:  s.zeroCrossings,
		Variance:       float64(s.moments.Evaluate()),
	}
}

// Reset clears all accumulated data, allowing the StreamingStats to be reused.
func (s *StreamingStatsT[F]) Reset() {
	*s = StreamingStatsT[F]{}
}
