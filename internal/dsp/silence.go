package dsp

import "math"

// SilenceRemover implements the streaming leading-silence trim of
// spec.md §4.1: a running RMS over a sliding window of sampleRate samples,
// emitting output only once RMS first exceeds the threshold. The Open
// Question on hysteresis is resolved as "once unsilenced, stay
// unsilenced" — state is monotone for the life of the remover. Exact-zero
// samples seen while still silent are dropped without entering the RMS
// window, so prepending any amount of zero samples ahead of the real
// signal leaves the remover's state, and so what gets through, unchanged.
type SilenceRemover struct {
	threshold  float64 // RMS threshold in the same units as input samples
	window     []int64 // ring buffer of squared samples
	windowSize int
	pos        int
	filled     int
	sumSq      float64
	unsilenced bool
}

// NewSilenceRemover creates a remover with the given RMS window length in
// samples and threshold (0..32767).
func NewSilenceRemover(windowSize int, threshold int) *SilenceRemover {
	return &SilenceRemover{
		threshold:  float64(threshold),
		window:     make([]int64, windowSize),
		windowSize: windowSize,
	}
}

// Process feeds one sample and reports whether it should be emitted
// downstream (false while still trimming leading silence).
func (s *SilenceRemover) Process(sample int16) bool {
	if s.unsilenced {
		return true
	}
	if sample == 0 {
		return false
	}
	sq := int64(sample) * int64(sample)
	old := s.window[s.pos]
	s.window[s.pos] = sq
	s.pos = (s.pos + 1) % s.windowSize
	s.sumSq += float64(sq - old)
	if s.filled < s.windowSize {
		s.filled++
	}
	rms := math.Sqrt(s.sumSq / float64(s.filled))
	if rms > s.threshold {
		s.unsilenced = true
	}
	return s.unsilenced
}

// Unsilenced reports whether the remover has latched open.
func (s *SilenceRemover) Unsilenced() bool {
	return s.unsilenced
}
