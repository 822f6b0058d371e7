package estimator

// AverageT estimates the arithmetic mean of a stream of samples.
//
// The zero value is ready to use.
type AverageT[F Number] struct {
	state      F
	numSamples uint64
}

// Average is the float64 specialization.
type Average = AverageT[float64]

// Average32 is the float32 specialization.
type Average32 = AverageT[float32]

var (
	_ Estimator[float64] = (*Average)(nil)
	_ Estimator[float32] = (*Average32)(nil)
)

// NewAverage creates an average with no samples.
func NewAverage[F Number]() *AverageT[F] {
	return &AverageT[F]{}
}

// Evaluate returns the mean of all samples seen so far, or 0 if there are
// none.
func (a *AverageT[F]) Evaluate() F {
	return a.state
}

// Count returns the number of samples seen since construction or the last
// Reset. The counter is not guarded against wrapping past math.MaxUint64.
func (a *AverageT[F]) Count() uint64 {
	return a.numSamples
}

// Update folds sample into the running mean.
func (a *AverageT[F]) Update(sample F) {
	ratio, newN := a.advance()
	a.state = step(a.state, ratio, sample, newN)
}

// Reset returns the average to its zero-sample state.
func (a *AverageT[F]) Reset() {
	*a = AverageT[F]{}
}

// advance increments the sample counter and returns the weight old/new for
// the previous mean together with the new count.
func (a *AverageT[F]) advance() (ratio, newN F) {
	oldN := F(a.numSamples)
	a.numSamples++
	newN = F(a.numSamples)

	return oldN / newN, newN
}

// step computes acc*ratio + sample/n. The explicit conversion rounds the
// product before the sum so that no platform fuses it into an FMA.
func step[F Number](acc, ratio, sample, n F) F {
	return F(acc*ratio) + sample/n
}
