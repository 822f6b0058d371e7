package estimator

// MeanSquaredErrorT estimates the mean squared deviation of a stream of
// samples from their running mean, i.e. the population variance
// E[x²] - E[x]². No Bessel correction is applied.
//
// The result is not clamped: for nearly constant streams, cancellation in
// the subtraction can produce a tiny negative value. Callers needing a
// non-negative result must clamp it themselves.
//
// The zero value is ready to use.
type MeanSquaredErrorT[F Number] struct {
	// Average is the running mean of the same samples. It shares its sample
	// counter with the squared accumulator and must only be read, e.g. via
	// Average.Evaluate or Average.Count.
	Average AverageT[F]

	state F // running mean of squared samples
}

// MeanSquaredError is the float64 specialization.
type MeanSquaredError = MeanSquaredErrorT[float64]

// MeanSquaredError32 is the float32 specialization.
type MeanSquaredError32 = MeanSquaredErrorT[float32]

var (
	_ Estimator[float64] = (*MeanSquaredError)(nil)
	_ Estimator[float32] = (*MeanSquaredError32)(nil)
)

// NewMeanSquaredError creates an estimator with no samples.
func NewMeanSquaredError[F Number]() *MeanSquaredErrorT[F] {
	return &MeanSquaredErrorT[F]{}
}

// Evaluate returns the running population variance, or 0 if there are no
// samples.
func (m *MeanSquaredErrorT[F]) Evaluate() F {
	mean := m.Average.state

	return m.state - F(mean*mean)
}

// SecondMoment returns the running mean of squared samples.
func (m *MeanSquaredErrorT[F]) SecondMoment() F {
	return m.state
}

// Update folds sample into both accumulators. They advance on one shared
// counter with the same weight so they always describe the same samples.
func (m *MeanSquaredErrorT[F]) Update(sample F) {
	ratio, newN := m.Average.advance()
	m.state = step(m.state, ratio, sample*sample, newN)
	m.Average.state = step(m.Average.state, ratio, sample, newN)
}

// Reset returns the estimator to its zero-sample state.
func (m *MeanSquaredErrorT[F]) Reset() {
	*m = MeanSquaredErrorT[F]{}
}
