// Package gofprint computes compact, noise-robust acoustic fingerprints of
// PCM audio streams and compares two such fingerprints to locate aligned
// matching segments.
//
// A Context consumes raw PCM through a staged DSP pipeline — resampling,
// silence trimming, windowed FFT, chroma folding, and Haar-like feature
// classification — and produces a sequence of 32-bit sub-fingerprints. A
// Matcher then aligns two fingerprints by Hamming-distance histogramming
// and reports the matching segments with a bit-error-derived score.
//
// Fingerprints are deterministic given input PCM and an algorithm id; there
// is no learning or adaptation. This package requires no cgo dependencies.
//
// # Lifecycle
//
// A Context is used as: new -> [SetOption]* -> Start -> Feed* -> Finish ->
// Fingerprint -> Clear -> (Start again), mirroring the C-style façade this
// package's design is modeled on. A Matcher is used as: new ->
// SetFingerprint(0, a) -> SetFingerprint(1, b) -> Run -> Segments.
//
// # Algorithms
//
// Algorithm ids 0 through 4 each select a full, immutable configuration
// (frame size, hop, chroma parameters, classifier table, quantizer
// thresholds). Id 0 is legacy; 1 through 4 differ only in parameter
// choices. Two fingerprints can only be matched against each other when
// they share an algorithm id.
package gofprint
