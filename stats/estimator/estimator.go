package estimator

import algofft "github.com/cwbudde/algo-fft"

// Number is the sample and result type of an estimator. Any floating-point
// type works: the update rules only need +, *, /, the zero value and a
// conversion from the sample count.
type Number interface {
	algofft.Float
}

// Estimator is a streaming statistic.
type Estimator[F Number] interface {
	// Evaluate returns the current estimate in constant time. It returns 0
	// before the first Update, which carries no statistical meaning.
	Evaluate() F

	// Update incorporates one sample.
	Update(sample F)

	// Reset discards all accumulated state.
	Reset()
}

// Feed updates e with every sample in order.
func Feed[F Number, E Estimator[F]](e E, samples []F) {
	for _, x := range samples {
		e.Update(x)
	}
}
