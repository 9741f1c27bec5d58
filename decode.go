package gofprint

import (
	"errors"

	"github.com/gofprint/gofprint/internal/codec"
)

// DecompressFingerprint reverses CompressedFingerprint, reconstructing a
// Fingerprint from its bit-packed wire encoding.
func DecompressFingerprint(data []byte) (Fingerprint, error) {
	algo, items, err := codec.Decompress(data)
	if err != nil {
		switch {
		case errors.Is(err, codec.ErrTruncated):
			return Fingerprint{}, ErrTruncated
		case errors.Is(err, codec.ErrBadExceptionSymbol):
			return Fingerprint{}, ErrBadExceptionSymbol
		case errors.Is(err, codec.ErrLengthMismatch):
			return Fingerprint{}, ErrLengthMismatch
		default:
			return Fingerprint{}, err
		}
	}
	a := Algorithm(algo)
	if !a.valid() {
		return Fingerprint{}, ErrUnknownAlgorithm
	}
	return Fingerprint{Algorithm: a, Items: items}, nil
}

// DecodeBase64Fingerprint combines DecodeBase64 and DecompressFingerprint.
func DecodeBase64Fingerprint(s string) (Fingerprint, error) {
	raw, err := DecodeBase64(s)
	if err != nil {
		return Fingerprint{}, err
	}
	return DecompressFingerprint(raw)
}

// SimHash returns the fingerprint's 32-bit SimHash summary, a coarse,
// order-insensitive similarity digest distinct from the item-by-item
// Matcher comparison.
func (f Fingerprint) SimHash() uint32 {
	return codec.SimHash(f.Items)
}
