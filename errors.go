package gofprint

import "errors"

// Public error values for the gofprint package, grouped by the error kind
// taxonomy of the fingerprinting design: configuration, state, input,
// decode, and match-mismatch errors. All recoverable errors surface as a
// returned error at the façade; nothing is swallowed silently inside the
// DSP pipeline.
var (
	// Configuration errors.

	// ErrUnknownOption is returned by SetOption for any name other than
	// "silence_threshold".
	ErrUnknownOption = errors.New("gofprint: unknown option")
	// ErrOptionOutOfRange is returned when an option value is outside its
	// valid range (e.g. silence_threshold outside 0..32767).
	ErrOptionOutOfRange = errors.New("gofprint: option value out of range")
	// ErrUnsupportedSampleRate is returned by Start for a sample rate
	// outside [internalRate/2, 96000].
	ErrUnsupportedSampleRate = errors.New("gofprint: unsupported sample rate")
	// ErrInvalidChannels is returned by Start for a channel count below 1.
	ErrInvalidChannels = errors.New("gofprint: invalid channel count")
	// ErrUnknownAlgorithm is returned for an algorithm id outside 0..4.
	ErrUnknownAlgorithm = errors.New("gofprint: unknown algorithm id")

	// State errors — lifecycle methods invoked out of order.

	// ErrNotStarted is returned by Feed or Finish before Start.
	ErrNotStarted = errors.New("gofprint: context not started")
	// ErrAlreadyStarted is returned by Start on a context already running.
	ErrAlreadyStarted = errors.New("gofprint: context already started")
	// ErrNotFinished is returned by Fingerprint before Finish.
	ErrNotFinished = errors.New("gofprint: fingerprint requested before finish")

	// Input errors.

	// ErrInvalidBuffer is returned by Feed when the number of samples is
	// not a multiple of the channel count. A nil or empty buffer is not an
	// error; Feed ignores it.
	ErrInvalidBuffer = errors.New("gofprint: invalid input buffer")

	// Decode errors.

	// ErrTruncated is returned when a compressed buffer ends before its
	// declared streams are fully read.
	ErrTruncated = errors.New("gofprint: truncated compressed fingerprint")
	// ErrLengthMismatch is returned when the bytes consumed decoding the
	// header's declared item count do not account for the whole payload
	// (trailing bytes remain).
	ErrLengthMismatch = errors.New("gofprint: decoded item count does not match header")
	// ErrBadExceptionSymbol is returned when an exception stream symbol
	// decodes to a bit position above 32.
	ErrBadExceptionSymbol = errors.New("gofprint: exception symbol out of range")

	// Match-mismatch errors.

	// ErrAlgorithmMismatch is returned by Matcher.Run when the two
	// fingerprints were produced by different algorithm ids.
	ErrAlgorithmMismatch = errors.New("gofprint: fingerprints use different algorithms")
	// ErrEmptyFingerprint is returned by Matcher.Run when either input
	// fingerprint has zero items.
	ErrEmptyFingerprint = errors.New("gofprint: empty fingerprint")
	// ErrFingerprintNotSet is returned by Matcher.Run before both
	// fingerprints have been set.
	ErrFingerprintNotSet = errors.New("gofprint: matcher fingerprint not set")
)
