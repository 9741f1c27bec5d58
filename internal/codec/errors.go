package codec

import "errors"

// Sentinel errors returned (wrapped) by Decompress on malformed input.
var (
	ErrTruncated          = errors.New("codec: truncated fingerprint data")
	ErrBadExceptionSymbol = errors.New("codec: invalid bit position symbol")
	// ErrLengthMismatch is returned when the bytes consumed decoding the
	// declared item count don't account for the whole payload — trailing
	// garbage the declared length doesn't explain.
	ErrLengthMismatch = errors.New("codec: decoded length does not match payload size")
)
