package gofprint

import (
	"github.com/gofprint/gofprint/internal/codec"
	"github.com/gofprint/gofprint/internal/fingerprint"
	"github.com/gofprint/gofprint/internal/frontend"
)

type contextState int

const (
	stateCreated contextState = iota
	stateStarted
	stateFinished
)

// Context fingerprints one audio stream at a time. Use it as: NewContext
// -> [SetOption]* -> Start -> Feed* -> Finish -> Fingerprint -> Clear ->
// (Start again), mirroring the C-style lifecycle this package's design is
// modeled on (spec.md §6).
type Context struct {
	algorithm Algorithm
	cfg       *fingerprint.Config

	silenceThreshold int // 0..32767, 0 disables silence trimming

	state    contextState
	front    *frontend.Frontend
	core     *fingerprint.Core
	items    []uint32
	sampleRate int
	channels   int
}

// NewContext creates a Context for the given algorithm.
func NewContext(algorithm Algorithm) (*Context, error) {
	cfg, err := algorithm.config()
	if err != nil {
		return nil, err
	}
	return &Context{algorithm: algorithm, cfg: cfg}, nil
}

// SetOption sets a named tunable. The only option defined is
// "silence_threshold" (0..32767, RMS threshold below which leading audio
// is dropped before fingerprinting; 0 disables trimming). SetOption must
// be called before Start.
func (c *Context) SetOption(name string, value int) error {
	if c.state != stateCreated {
		return ErrAlreadyStarted
	}
	switch name {
	case "silence_threshold":
		if value < 0 || value > 32767 {
			return ErrOptionOutOfRange
		}
		c.silenceThreshold = value
	default:
		return ErrUnknownOption
	}
	return nil
}

// Start begins a fingerprinting session for PCM at sampleRate with the
// given channel count. sampleRate must be within
// [InternalSampleRate/2, 96000] and channels >= 1.
func (c *Context) Start(sampleRate, channels int) error {
	if c.state != stateCreated {
		return ErrAlreadyStarted
	}
	if channels < 1 {
		return ErrInvalidChannels
	}
	if !frontend.Valid(sampleRate, channels, fingerprint.InternalSampleRate) {
		return ErrUnsupportedSampleRate
	}
	logCPUFeatures()

	c.sampleRate, c.channels = sampleRate, channels
	c.front = frontend.New(sampleRate, channels, fingerprint.InternalSampleRate,
		c.silenceThreshold, fingerprint.InternalSampleRate)
	c.core = fingerprint.NewCore(c.cfg)
	c.items = nil
	c.state = stateStarted
	return nil
}

// Feed appends interleaved PCM samples to the current session.
func (c *Context) Feed(samples []int16) error {
	if c.state != stateStarted {
		return ErrNotStarted
	}
	if len(samples) == 0 {
		return nil
	}
	if len(samples)%c.channels != 0 {
		return ErrInvalidBuffer
	}
	mono := c.front.Consume(samples)
	c.items = append(c.items, c.core.Feed(mono)...)
	return nil
}

// Finish flushes buffered audio through the pipeline. After Finish, the
// session's Fingerprint is available; Feed may no longer be called.
func (c *Context) Finish() error {
	if c.state != stateStarted {
		return ErrNotStarted
	}
	tail := c.front.Finish()
	c.items = append(c.items, c.core.Feed(tail)...)
	c.items = append(c.items, c.core.Finish()...)
	c.state = stateFinished
	return nil
}

// Fingerprint returns the raw (uncompressed) fingerprint for the finished
// session.
func (c *Context) Fingerprint() (Fingerprint, error) {
	if c.state != stateFinished {
		return Fingerprint{}, ErrNotFinished
	}
	return Fingerprint{Algorithm: c.algorithm, Items: c.items}, nil
}

// CompressedFingerprint returns the bit-packed wire encoding of the
// finished session's fingerprint.
func (c *Context) CompressedFingerprint() ([]byte, error) {
	fp, err := c.Fingerprint()
	if err != nil {
		return nil, err
	}
	return codec.Compress(int(fp.Algorithm), fp.Items), nil
}

// Base64Fingerprint returns the URL-safe base64 encoding of
// CompressedFingerprint.
func (c *Context) Base64Fingerprint() (string, error) {
	compressed, err := c.CompressedFingerprint()
	if err != nil {
		return "", err
	}
	return EncodeBase64(compressed), nil
}

// Clear resets the Context so it can be reused for a new audio stream
// with the same algorithm and options.
func (c *Context) Clear() {
	c.state = stateCreated
	c.front = nil
	c.core = nil
	c.items = nil
}
