package dsp

import "math"

// HannWindow returns a precomputed Hann-like analysis window of the given
// size. Computed once per algorithm configuration at construction time and
// stored by value — the fingerprinting core never recomputes it per frame.
//
// Reference shape: w[i] = 0.5 * (1 - cos(2*pi*i/(size-1))), the same family
// the teacher's filter-shape table draws BP_WINDOW_HAMMING/BP_WINDOW_COSINE
// from, generalized here to the single window the fingerprinter uses.
func HannWindow(size int) []float64 {
	w := make([]float64, size)
	if size <= 1 {
		for i := range w {
			w[i] = 1
		}
		return w
	}
	denom := float64(size - 1)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/denom))
	}
	return w
}

// ApplyWindow multiplies src by the window in place, writing into dst.
// dst and src may be the same slice. Both must have len(win) elements.
func ApplyWindow(dst, src, win []float64) {
	for i := range win {
		dst[i] = src[i] * win[i]
	}
}
