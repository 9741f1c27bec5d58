package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegralImageSumMatchesBruteForce(t *testing.T) {
	width := 4
	rows := [][]float64{
		{1, 2, 3, 4},
		{0, 1, 0, 1},
		{2, 2, 2, 2},
		{5, 0, 5, 0},
		{1, 1, 1, 1},
	}
	img := NewIntegralImage(8, width)
	for _, r := range rows {
		img.Append(r)
	}

	brute := func(x1, y1, x2, y2 int) float64 {
		var sum float64
		for y := y1; y < y2; y++ {
			for x := x1; x < x2; x++ {
				sum += rows[y][x]
			}
		}
		return sum
	}

	cases := [][4]int{
		{0, 0, 4, 5},
		{0, 0, 2, 2},
		{1, 1, 3, 4},
		{0, 3, 4, 5},
		{2, 0, 4, 1},
	}
	for _, c := range cases {
		want := brute(c[0], c[1], c[2], c[3])
		got := img.Sum(c[0], c[1], c[2], c[3])
		assert.InDelta(t, want, got, 1e-9, "range %v", c)
	}
}

func TestIntegralImageRingWraparound(t *testing.T) {
	img := NewIntegralImage(3, 2)
	for i := 0; i < 10; i++ {
		img.Append([]float64{float64(i), float64(i) * 2})
	}
	assert.Equal(t, 10, img.Count())
	// Only the last 3 rows remain resident; sum over the last 2 rows must
	// still be correct.
	got := img.Sum(0, 8, 2, 10)
	want := float64(8+9) + float64(8*2+9*2)
	assert.InDelta(t, want, got, 1e-9)
}
