// Package time provides streaming time-domain signal statistics (DC, RMS,
// peak, crest factor, zero crossings, variance) computed block by block
// without storing the signal.
package time
