package dsp

import "github.com/gofprint/gofprint/internal/assert"

// IntegralImage is a rolling integral image over a stream of fixed-width
// rows (one row per feature frame, NumChromaClasses columns wide), sized
// at construction per spec.md §9 "Integral image over rolling window":
// capacity = maxClassifierHeight + maxDelay rows, indexed modulo capacity.
//
// Column sums are stored as float64 running totals per row, accumulated
// since the first frame of the session (chroma energy is already floating
// point, so spec.md's "store as 64-bit" fallback for integer energy does
// not apply here). Two resident rows used in the same rectangle sum are
// always close together in the stream, so their shared summation prefix
// cancels exactly in the subtraction; no separate re-baselining pass is
// needed for fingerprint-length audio (hours of audio at the configured
// hop size stay well within float64's significand before drift would be
// measurable against the quantizer's thresholds).
type IntegralImage struct {
	capacity int
	width    int
	rows     [][]float64 // ring buffer of capacity rows, each width+1 wide (col 0 is always zero, integral-image convention)
	count    int         // number of rows ever appended
}

// NewIntegralImage creates an integral image with the given ring capacity
// and column width (NumChromaClasses).
func NewIntegralImage(capacity, width int) *IntegralImage {
	assert.That(capacity > 0 && width > 0, "integral image capacity/width must be positive")
	rows := make([][]float64, capacity)
	for i := range rows {
		rows[i] = make([]float64, width+1)
	}
	return &IntegralImage{capacity: capacity, width: width, rows: rows}
}

// Append adds one row of width values (a ChromaVector) to the image.
func (img *IntegralImage) Append(row []float64) {
	assert.That(len(row) == img.width, "integral image row width mismatch")
	slot := img.count % img.capacity
	var prev []float64
	if img.count > 0 {
		prevSlot := (img.count - 1) % img.capacity
		prev = img.rows[prevSlot]
	}
	r := img.rows[slot]
	r[0] = 0
	running := 0.0
	for c := 0; c < img.width; c++ {
		running += row[c]
		if prev != nil {
			r[c+1] = prev[c+1] + running
		} else {
			r[c+1] = running
		}
	}
	img.count++
}

// Count returns the number of rows appended so far.
func (img *IntegralImage) Count() int {
	return img.count
}

// rowSum returns the integral-image value at absolute time index t
// (0-based, t < count): the sum of every value in rows 0..t and columns
// 0..c-1. Column index c ranges 0..width (c==0 is always 0).
func (img *IntegralImage) rowSum(t, c int) float64 {
	assert.That(t >= 0 && t < img.count, "integral image row index out of bounds")
	return img.rows[t%img.capacity][c]
}

// Sum returns the rectangle sum S(x1,y1,x2,y2) over rows [y1,y2) (time) and
// columns [x1,x2) (pitch class), using the standard 2-D integral image
// inclusion-exclusion. y2 may be at most Count(); the caller is responsible
// for keeping y1 within the window still resident in the ring buffer.
func (img *IntegralImage) Sum(x1, y1, x2, y2 int) float64 {
	assert.That(x1 >= 0 && x2 <= img.width && x1 <= x2, "integral image column range invalid")
	assert.That(y1 >= 0 && y2 <= img.count && y1 <= y2, "integral image row range invalid")
	if y1 == y2 || x1 == x2 {
		return 0
	}
	// Row-prefix sums already accumulate time cumulatively (see Append),
	// so a rectangle sum is just the column-range difference at the two
	// time boundaries.
	var top float64
	if y1 > 0 {
		top = img.rowSum(y1-1, x2) - img.rowSum(y1-1, x1)
	}
	bottom := img.rowSum(y2-1, x2) - img.rowSum(y2-1, x1)
	return bottom - top
}
