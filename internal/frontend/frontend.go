// Package frontend implements the audio front-end stage of the
// fingerprinting pipeline: channel mixdown to mono, resampling to the
// internal sample rate, and optional leading-silence removal, as described
// in spec.md §4.2.
package frontend

import (
	"github.com/gofprint/gofprint/internal/dsp"
)

// MaxInputSampleRate is the highest sample rate Start will accept.
const MaxInputSampleRate = 96000

// Frontend mixes down, resamples, and optionally trims leading silence
// before handing internal-rate mono samples to the fingerprinter core.
type Frontend struct {
	sampleRate   int
	channels     int
	internalRate int

	resampler *dsp.Resampler
	silence   *dsp.SilenceRemover

	mixBuf []int16 // scratch for mixdown, sized to the largest Consume call seen
}

// New creates a front-end targeting internalRate, with silence removal
// enabled (threshold > 0) or disabled (threshold == 0). silenceWindow is
// the RMS window length in internal-rate samples (normally internalRate,
// i.e. one second, per spec.md §4.1).
func New(sampleRate, channels, internalRate int, silenceThreshold, silenceWindow int) *Frontend {
	f := &Frontend{
		sampleRate:   sampleRate,
		channels:     channels,
		internalRate: internalRate,
		resampler:    dsp.NewResampler(sampleRate, internalRate),
	}
	if silenceThreshold > 0 {
		f.silence = dsp.NewSilenceRemover(silenceWindow, silenceThreshold)
	}
	return f
}

// Valid reports whether sampleRate/channels are acceptable per spec.md
// §4.2: sampleRate in [internalRate/2, 96000], channels >= 1.
func Valid(sampleRate, channels, internalRate int) bool {
	if channels < 1 {
		return false
	}
	if sampleRate < internalRate/2 || sampleRate > MaxInputSampleRate {
		return false
	}
	return true
}

// mixdown sums interleaved channel samples into mono, clamped to int16
// range, matching chromaprint's "sum of channels" front-end contract.
func (f *Frontend) mixdown(interleaved []int16) []int16 {
	if f.channels == 1 {
		return interleaved
	}
	n := len(interleaved) / f.channels
	if cap(f.mixBuf) < n {
		f.mixBuf = make([]int16, n)
	}
	out := f.mixBuf[:n]
	for i := 0; i < n; i++ {
		var sum int32
		for c := 0; c < f.channels; c++ {
			sum += int32(interleaved[i*f.channels+c])
		}
		if sum > 32767 {
			sum = 32767
		} else if sum < -32768 {
			sum = -32768
		}
		out[i] = int16(sum)
	}
	return out
}

// Consume mixes, resamples, and (if enabled) silence-trims n_samples_total
// interleaved int16 samples, returning the resulting internal-rate mono
// samples ready for the fingerprinter core.
func (f *Frontend) Consume(interleaved []int16) []int16 {
	mono := f.mixdown(interleaved)
	resampled := f.resampler.Consume(mono)
	return f.applySilence(resampled)
}

// Finish flushes the resampler's tail (zero-padded) and returns any
// remaining output samples.
func (f *Frontend) Finish() []int16 {
	resampled := f.resampler.Finish()
	return f.applySilence(resampled)
}

func (f *Frontend) applySilence(resampled []float64) []int16 {
	out := make([]int16, 0, len(resampled))
	for _, v := range resampled {
		s := quantize(v)
		if f.silence == nil || f.silence.Process(s) {
			out = append(out, s)
		}
	}
	return out
}

func quantize(v float64) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
