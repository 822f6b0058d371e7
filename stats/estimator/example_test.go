package estimator_test

import (
	"fmt"

	"github.com/cwbudde/algo-stats/stats/estimator"
)

func ExampleAverage() {
	avg := estimator.NewAverage[float64]()
	for _, x := range []float64{0, 1, 2, 3, 4} {
		avg.Update(x)
	}
	fmt.Printf("mean=%.1f n=%d\n", avg.Evaluate(), avg.Count())

	// Output:
	// mean=2.0 n=5
}

func ExampleMeanSquaredError() {
	mse := estimator.NewMeanSquaredError[float32]()
	estimator.Feed(mse, []float32{0, 1, 2, 3, 4})
	fmt.Printf("mean=%.1f meansq=%.1f var=%.1f\n",
		mse.Average.Evaluate(), mse.SecondMoment(), mse.Evaluate())

	mse.Reset()
	fmt.Printf("after reset: var=%.1f n=%d\n", mse.Evaluate(), mse.Average.Count())

	// Output:
	// mean=2.0 meansq=6.0 var=2.0
	// after reset: var=0.0 n=0
}
