package fingerprint

import "github.com/gofprint/gofprint/internal/dsp"

// apply evaluates one Haar-like rectangle classifier against the integral
// image, over the time window [tEnd-Width, tEnd) and the chroma band
// [Y, Y+Height), per spec.md §4.3 filter types 0..5:
//
//	0 - single block
//	1 - two bands stacked in frequency (top - bottom)
//	2 - two bands split in time (left - right)
//	3 - three bands in frequency (top - 2*mid + bottom)
//	4 - three bands in time (left - 2*mid + right)
//	5 - checkerboard quadrants ((tl+br) - (tr+bl))
func (cl *ClassifierSpec) apply(img *dsp.IntegralImage, tEnd int) float64 {
	// img.Sum(x1,y1,x2,y2) takes x as the chroma-column range and y as the
	// time-row range; Width/Height here describe time/frequency extent
	// respectively, so they map onto y/x in that call.
	y1 := tEnd - cl.Width
	y2 := tEnd
	x1 := cl.Y
	x2 := cl.Y + cl.Height

	switch cl.FilterType {
	case 0:
		return img.Sum(x1, y1, x2, y2)
	case 1:
		xm := x1 + cl.Height/2
		if xm == x1 || xm == x2 {
			return img.Sum(x1, y1, x2, y2)
		}
		top := img.Sum(x1, y1, xm, y2)
		bot := img.Sum(xm, y1, x2, y2)
		return top - bot
	case 2:
		ym := y1 + cl.Width/2
		if ym == y1 || ym == y2 {
			return img.Sum(x1, y1, x2, y2)
		}
		left := img.Sum(x1, y1, x2, ym)
		right := img.Sum(x1, ym, x2, y2)
		return left - right
	case 3:
		h := cl.Height
		xa := x1 + h/3
		xb := x1 + 2*h/3
		if xa <= x1 || xb <= xa || xb >= x2 {
			return img.Sum(x1, y1, x2, y2)
		}
		top := img.Sum(x1, y1, xa, y2)
		mid := img.Sum(xa, y1, xb, y2)
		bot := img.Sum(xb, y1, x2, y2)
		return top - 2*mid + bot
	case 4:
		w := cl.Width
		ya := y1 + w/3
		yb := y1 + 2*w/3
		if ya <= y1 || yb <= ya || yb >= y2 {
			return img.Sum(x1, y1, x2, y2)
		}
		left := img.Sum(x1, y1, x2, ya)
		mid := img.Sum(x1, ya, x2, yb)
		right := img.Sum(x1, yb, x2, y2)
		return left - 2*mid + right
	default: // 5
		xm := x1 + cl.Height/2
		ym := y1 + cl.Width/2
		if xm == x1 || xm == x2 || ym == y1 || ym == y2 {
			return img.Sum(x1, y1, x2, y2)
		}
		tl := img.Sum(x1, y1, xm, ym)
		tr := img.Sum(xm, y1, x2, ym)
		bl := img.Sum(x1, ym, xm, y2)
		br := img.Sum(xm, ym, x2, y2)
		return (tl + br) - (tr + bl)
	}
}

// quantize maps a classifier's real-valued output to a 2-bit symbol using
// its three thresholds (t0 < v < t1 < v < t2 style comparison ladder).
func (cl *ClassifierSpec) quantize(v float64) uint32 {
	switch {
	case v < cl.Thresholds[0]:
		return 0
	case v < cl.Thresholds[1]:
		return 1
	case v < cl.Thresholds[2]:
		return 2
	default:
		return 3
	}
}

// grayCode maps a 2-bit quantizer symbol to its Gray-coded equivalent, so
// that adjacent quantizer levels differ from their neighbors by exactly
// one bit — this is what keeps the bit-packed codec's delta stream small
// for audio that is nearly, but not exactly, identical.
func grayCode(v uint32) uint32 {
	return v ^ (v >> 1)
}
