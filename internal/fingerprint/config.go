// Package fingerprint implements the fingerprinter core: the staged DSP
// graph from internal-rate mono PCM to a sequence of 32-bit
// sub-fingerprints (spec.md §4.3).
package fingerprint

import "github.com/gofprint/gofprint/internal/dsp"

// InternalSampleRate is the fixed internal sample rate the front-end
// resamples to before framing, per spec.md §3.
const InternalSampleRate = 11025

// FrameSize and Hop are the STFT frame size and hop length in internal
// samples, per spec.md §3 ("Frame size 4096, hop 1365").
const (
	FrameSize = 4096
	Hop       = 1365
)

// NumClassifiers is the number of Haar-like classifiers evaluated per
// feature frame, each contributing 2 bits to a SubFingerprint.
const NumClassifiers = 16

// ClassifierSpec parameterizes one Haar-like rectangle classifier:
// filterType selects the rectangle arrangement (spec.md §4.3, filter_type
// in {0..5}), y/height select the pitch-class band, width selects how many
// trailing feature frames the classifier looks back over.
type ClassifierSpec struct {
	FilterType int
	Y          int
	Height     int
	Width      int
	Thresholds [3]float64 // quantizer thresholds t0 < t1 < t2
}

// Config is an immutable parameter pack selected entirely by algorithm id,
// per spec.md §9 "Algorithm id dispatch": a tagged record, not a
// polymorphic hierarchy. Computed once at Context construction and shared
// read-only afterward.
type Config struct {
	Algorithm int

	SampleRate int
	FrameSize  int
	Hop        int

	Window []float64 // precomputed analysis window, len == FrameSize

	MinFreq, MaxFreq float64
	Chroma           *dsp.ChromaFilter

	Smoothing    bool
	SmoothRadius int // Gaussian smoothing radius in feature frames (0 if !Smoothing)
	SmoothSigma  float64

	Classifiers [NumClassifiers]ClassifierSpec

	MaxWidth int // largest classifier Width, drives warm-up length and integral-image ring capacity
}

// NewConfig builds the full parameter pack for the given algorithm id
// (0..4). Algorithms 1..4 share frame size, hop, and sample rate with
// algorithm 0 (legacy) but differ in chroma bandwidth, smoothing, and
// classifier/quantizer tuning, matching spec.md §4.3 "Algorithms 1..4
// differ only in parameter choices; algorithm 0 is legacy."
func NewConfig(algorithm int) (*Config, bool) {
	if algorithm < 0 || algorithm > 4 {
		return nil, false
	}

	c := &Config{
		Algorithm:  algorithm,
		SampleRate: InternalSampleRate,
		FrameSize:  FrameSize,
		Hop:        Hop,
		Window:     dsp.HannWindow(FrameSize),
	}

	switch algorithm {
	case 0: // legacy: narrower chroma band, no smoothing
		c.MinFreq, c.MaxFreq = 28, 3520
		c.Smoothing = false
	case 1:
		c.MinFreq, c.MaxFreq = 28, 3520
		c.Smoothing = true
		c.SmoothRadius, c.SmoothSigma = 2, 1.5
	case 2:
		c.MinFreq, c.MaxFreq = 28, 3520
		c.Smoothing = true
		c.SmoothRadius, c.SmoothSigma = 3, 2.0
	case 3:
		c.MinFreq, c.MaxFreq = 20, 5000
		c.Smoothing = true
		c.SmoothRadius, c.SmoothSigma = 2, 1.5
	default: // 4
		c.MinFreq, c.MaxFreq = 20, 5000
		c.Smoothing = true
		c.SmoothRadius, c.SmoothSigma = 3, 2.0
	}

	c.Chroma = dsp.NewChromaFilter(c.SampleRate, c.FrameSize, c.MinFreq, c.MaxFreq)
	c.Classifiers = buildClassifiers(algorithm)

	for _, cl := range c.Classifiers {
		if cl.Width > c.MaxWidth {
			c.MaxWidth = cl.Width
		}
	}
	return c, true
}

// buildClassifiers generates the 16-entry classifier table for an
// algorithm. The original chromaprint classifier constants are the result
// of offline empirical tuning against a reference music corpus and are not
// reproduced verbatim here (not available in this environment); this
// table is a structurally equivalent, deterministic stand-in that varies
// filter type, pitch-class band, and time width systematically across the
//16 classifiers, scaled per algorithm.
func buildClassifiers(algorithm int) [NumClassifiers]ClassifierSpec {
	var table [NumClassifiers]ClassifierSpec

	widths := []int{10, 14, 18, 22, 26, 30}
	heights := []int{1, 2, 3, 4}

	scale := 1.0
	switch algorithm {
	case 0:
		scale = 0.9
	case 3, 4:
		scale = 1.15
	}

	for i := 0; i < NumClassifiers; i++ {
		filterType := i % 6
		height := heights[i%len(heights)]
		if height > dsp.NumChromaClasses {
			height = dsp.NumChromaClasses
		}
		y := (i * 3) % (dsp.NumChromaClasses - height + 1)
		width := widths[(i/2)%len(widths)]

		base := 0.15 + 0.02*float64(i)
		table[i] = ClassifierSpec{
			FilterType: filterType,
			Y:          y,
			Height:     height,
			Width:      width,
			Thresholds: [3]float64{
				-base * scale,
				0,
				base * scale,
			},
		}
	}
	return table
}
