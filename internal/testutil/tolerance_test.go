package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTolerance(t *testing.T) {
	assert.Equal(t, 1e-4, Tolerance[float32]())
	assert.Equal(t, 1e-10, Tolerance[float64]())
}

func TestRequireNearlyEqual(t *testing.T) {
	RequireNearlyEqual(t, "exact", 2.0, 2.0, 0)
	RequireNearlyEqual(t, "close", float32(1.00001), 1, 1e-4)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, 0.0, -1.5, 1e300)
	RequireFinite[float32](t)
}
