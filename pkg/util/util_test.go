package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeDiv(t *testing.T) {
	cases := []struct {
		n, d, want float64
	}{
		{10, 2, 5},
		{1, -4, -0.25},
		{1, 0, 0},
		{1, 1e-13, 0},
		{1, -1e-13, 0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, SafeDiv(tc.n, tc.d), 1e-12, "n=%v d=%v", tc.n, tc.d)
	}
}

func TestInterp(t *testing.T) {
	xs := []float64{1, 5, 10}
	ys := []float64{2, 10, 20}

	// exact points
	assert.InDelta(t, 2.0, Interp(xs, ys, 1), 1e-12)
	assert.InDelta(t, 10.0, Interp(xs, ys, 5), 1e-12)
	assert.InDelta(t, 20.0, Interp(xs, ys, 10), 1e-12)

	// between points
	assert.InDelta(t, 6.0, Interp(xs, ys, 3), 1e-12)
	assert.InDelta(t, 15.0, Interp(xs, ys, 7.5), 1e-12)

	// clamped ends
	assert.InDelta(t, 2.0, Interp(xs, ys, -4), 1e-12)
	assert.InDelta(t, 20.0, Interp(xs, ys, 100), 1e-12)
}

func TestInterp_DegenerateTables(t *testing.T) {
	assert.Equal(t, 0.0, Interp(nil, nil, 1))
	assert.Equal(t, 0.0, Interp([]float64{1, 2}, []float64{1}, 1))
	assert.Equal(t, 3.0, Interp([]float64{1}, []float64{3}, 7))
}
