package gofprint

import "github.com/gofprint/gofprint/internal/fingerprint"

// Fingerprint is the raw, uncompressed result of fingerprinting an audio
// stream: the algorithm it was produced with, and the 32-bit
// sub-fingerprint for every hop of internal-rate audio consumed.
type Fingerprint struct {
	Algorithm Algorithm
	Items     []uint32
}

// ItemDurationMillis returns how many milliseconds of audio a single
// fingerprint item corresponds to: 1000 * Hop / InternalSampleRate, the constant
// step every sub-fingerprint advances by regardless of algorithm id.
func (f Fingerprint) ItemDurationMillis() float64 {
	return 1000 * float64(fingerprint.Hop) / float64(fingerprint.InternalSampleRate)
}

// Duration returns the total audio duration the fingerprint covers, in
// milliseconds.
func (f Fingerprint) Duration() float64 {
	return float64(len(f.Items)) * f.ItemDurationMillis()
}
