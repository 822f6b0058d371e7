// Package estimator provides streaming (online) statistical estimators that
// are updated one sample at a time without retaining history.
//
// Estimators:
//   - Average: running arithmetic mean.
//   - MeanSquaredError: running population variance (second central moment),
//     built on an embedded Average plus a running mean of squares.
//
// Every estimator implements [Estimator] and is generic over [Number], so the
// same code serves float32 and float64 streams. The float64 and float32
// specializations are available as Average/Average32 and
// MeanSquaredError/MeanSquaredError32.
//
// Estimators are not safe for concurrent use. Callers sharing one instance
// across goroutines must serialize Update, Evaluate and Reset themselves.
package estimator
