package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHannWindowEndpoints(t *testing.T) {
	w := HannWindow(8)
	assert.Len(t, w, 8)
	assert.InDelta(t, 0, w[0], 1e-9)
	assert.InDelta(t, 0, w[len(w)-1], 1e-9)
	// Peak near the center.
	mid := w[len(w)/2]
	assert.Greater(t, mid, w[0])
}

func TestHannWindowDegenerate(t *testing.T) {
	assert.Equal(t, []float64{1}, HannWindow(1))
	assert.Len(t, HannWindow(0), 0)
}

func TestApplyWindow(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	win := []float64{0.5, 1, 1, 0.5}
	dst := make([]float64, 4)
	ApplyWindow(dst, src, win)
	assert.Equal(t, []float64{0.5, 2, 3, 2}, dst)
}
