package time_test

import (
	"fmt"

	timestats "github.com/cwbudde/algo-stats/stats/time"
)

func ExampleStreamingStats() {
	s := timestats.NewStreamingStats[float64]()
	s.Update([]float64{1, -1})
	s.Update([]float64{1, -1})
	m := s.Result()
	fmt.Printf("len=%d dc=%.1f rms=%.1f zc=%d\n", m.Length, m.DC, m.RMS, m.ZeroCrossings)

	// Output:
	// len=4 dc=0.0 rms=1.0 zc=3
}
