package gofprint

import "github.com/gofprint/gofprint/internal/matcher"

// MatcherSegment is one aligned, scored region of agreement between two
// fingerprints given to a Matcher, per spec.md §4.5.
type MatcherSegment struct {
	Pos1, Pos2 int // starting item index into fingerprint slot 0 and 1 respectively
	Duration   int // length in items
	Offset     int // Pos1 - Pos2, the alignment this segment was found at
	Score      int // 0..100, 100 == identical
}

// Pos1Millis, Pos2Millis, DurationMillis convert a segment's item-indexed
// fields to milliseconds, given the algorithm's fixed item duration.
func (s MatcherSegment) Pos1Millis(algo Algorithm) float64 {
	return float64(s.Pos1) * (Fingerprint{Algorithm: algo}).ItemDurationMillis()
}

func (s MatcherSegment) Pos2Millis(algo Algorithm) float64 {
	return float64(s.Pos2) * (Fingerprint{Algorithm: algo}).ItemDurationMillis()
}

func (s MatcherSegment) DurationMillis(algo Algorithm) float64 {
	return float64(s.Duration) * (Fingerprint{Algorithm: algo}).ItemDurationMillis()
}

// Matcher aligns two fingerprints and reports their matching segments.
// Use it as: NewMatcher -> SetFingerprint(0, a) -> SetFingerprint(1, b) ->
// Run -> Segments.
type Matcher struct {
	fps      [2]*Fingerprint
	segments []MatcherSegment
	ran      bool
}

// NewMatcher creates an empty Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// SetFingerprint assigns a fingerprint to slot 0 or 1.
func (m *Matcher) SetFingerprint(slot int, fp Fingerprint) error {
	if slot != 0 && slot != 1 {
		return ErrUnknownOption
	}
	f := fp
	m.fps[slot] = &f
	m.ran = false
	return nil
}

// Run aligns the two previously set fingerprints, populating Segments.
func (m *Matcher) Run() error {
	if m.fps[0] == nil || m.fps[1] == nil {
		return ErrFingerprintNotSet
	}
	a, b := m.fps[0], m.fps[1]
	if a.Algorithm != b.Algorithm {
		return ErrAlgorithmMismatch
	}
	if len(a.Items) == 0 || len(b.Items) == 0 {
		return ErrEmptyFingerprint
	}

	raw := matcher.Align(a.Items, b.Items)
	segs := make([]MatcherSegment, len(raw))
	for i, s := range raw {
		segs[i] = MatcherSegment{
			Pos1:     s.Pos1,
			Pos2:     s.Pos2,
			Duration: s.Duration,
			Offset:   s.Offset,
			Score:    s.Score,
		}
	}
	m.segments = segs
	m.ran = true
	return nil
}

// Segments returns the matching segments found by the last Run call.
func (m *Matcher) Segments() []MatcherSegment {
	return m.segments
}
