// fft.go wraps gonum's real-input FFT for the fingerprinter's windowed
// spectral analysis stage, grounded on the same gonum.org/v1/gonum/dsp/fourier
// usage pattern as austinkregel/local-media's audio analyzer: one *fourier.FFT
// held for the lifetime of the pipeline, reused frame after frame so the hot
// path allocates only the output magnitude buffer.
package dsp

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FFT computes magnitude spectra of real-valued frames of a fixed size.
type FFT struct {
	frameSize int
	fft       *fourier.FFT
	coeffs    []complex128 // scratch for the forward-transform output
}

// NewFFT returns an FFT sized for frames of frameSize real samples.
func NewFFT(frameSize int) *FFT {
	return &FFT{
		frameSize: frameSize,
		fft:       fourier.NewFFT(frameSize),
	}
}

// Bins returns the number of magnitude bins this FFT produces: frameSize/2+1.
func (f *FFT) Bins() int {
	return f.frameSize/2 + 1
}

// Magnitudes computes |FFT(frame)| for frame's first frameSize/2+1 bins,
// writing into out (which must have len(out) == f.Bins()). frame must have
// exactly f.frameSize samples (already windowed by the caller).
func (f *FFT) Magnitudes(frame []float64, out []float64) {
	f.coeffs = f.fft.Coefficients(f.coeffs, frame)
	for i := range out {
		c := f.coeffs[i]
		re, im := real(c), imag(c)
		out[i] = math.Sqrt(re*re + im*im)
	}
}
