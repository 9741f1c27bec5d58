package gofprint_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/gofprint/gofprint"
	"github.com/gofprint/gofprint/internal/codec"
)

func sineWave(freq float64, sampleRate, n int, amp float64) []int16 {
	out := make([]int16, n)
	for i := range out {
		v := amp * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
		out[i] = int16(v)
	}
	return out
}

func fingerprintSine(t testingT, algo gofprint.Algorithm, freq float64, sampleRate, n int) gofprint.Fingerprint {
	ctx, err := gofprint.NewContext(algo)
	require.NoError(t, err)
	require.NoError(t, ctx.Start(sampleRate, 1))
	require.NoError(t, ctx.Feed(sineWave(freq, sampleRate, n, 9000)))
	require.NoError(t, ctx.Finish())
	fp, err := ctx.Fingerprint()
	require.NoError(t, err)
	return fp
}

type testingT interface {
	require.TestingT
}

func TestContextLifecycleErrors(t *testing.T) {
	ctx, err := gofprint.NewContext(gofprint.Algorithm1)
	require.NoError(t, err)

	assert.ErrorIs(t, ctx.Feed([]int16{1, 2}), gofprint.ErrNotStarted)
	assert.ErrorIs(t, ctx.Finish(), gofprint.ErrNotStarted)

	require.NoError(t, ctx.Start(44100, 2))
	assert.ErrorIs(t, ctx.Start(44100, 2), gofprint.ErrAlreadyStarted)
	assert.ErrorIs(t, ctx.SetOption("silence_threshold", 10), gofprint.ErrAlreadyStarted)

	_, err = ctx.Fingerprint()
	assert.ErrorIs(t, err, gofprint.ErrNotFinished)
}

func TestContextRejectsBadOptionsAndRates(t *testing.T) {
	ctx, err := gofprint.NewContext(gofprint.Algorithm1)
	require.NoError(t, err)

	assert.ErrorIs(t, ctx.SetOption("nonsense", 1), gofprint.ErrUnknownOption)
	assert.ErrorIs(t, ctx.SetOption("silence_threshold", -1), gofprint.ErrOptionOutOfRange)
	assert.ErrorIs(t, ctx.Start(1, 1), gofprint.ErrUnsupportedSampleRate)
	assert.ErrorIs(t, ctx.Start(44100, 0), gofprint.ErrInvalidChannels)
}

func TestUnknownAlgorithmRejected(t *testing.T) {
	_, err := gofprint.NewContext(gofprint.Algorithm(99))
	assert.ErrorIs(t, err, gofprint.ErrUnknownAlgorithm)
}

// Fingerprinting determinism, per spec.md §8: the same audio fingerprinted
// twice with the same algorithm yields identical items.
func TestFingerprintDeterminism(t *testing.T) {
	a := fingerprintSine(t, gofprint.Algorithm1, 440, 44100, 44100*10)
	b := fingerprintSine(t, gofprint.Algorithm1, 440, 44100, 44100*10)
	assert.Equal(t, a.Items, b.Items)
	assert.NotEmpty(t, a.Items)
}

// Seed-test scenario 2 (spec.md §8.2): the base64 encoding of a 30-item,
// algorithm-2 fingerprint matches a recorded golden blob. See
// internal/codec's TestCompressGoldenThirtyItemFingerprint for the derivation
// of the underlying byte sequence this string encodes.
func TestBase64FingerprintGoldenThirtyItems(t *testing.T) {
	fp := gofprint.Fingerprint{Algorithm: gofprint.Algorithm2, Items: make([]uint32, 30)}
	data := codec.Compress(int(fp.Algorithm), fp.Items)
	assert.Equal(t, "AgAAHgAAAAAAAAAAAAAAAA", gofprint.EncodeBase64(data))
}

// Codec round-trip through the public façade.
func TestCompressedFingerprintRoundTrip(t *testing.T) {
	ctx, err := gofprint.NewContext(gofprint.Algorithm2)
	require.NoError(t, err)
	require.NoError(t, ctx.Start(44100, 1))
	require.NoError(t, ctx.Feed(sineWave(550, 44100, 44100*10, 7000)))
	require.NoError(t, ctx.Finish())

	fp, err := ctx.Fingerprint()
	require.NoError(t, err)

	b64, err := ctx.Base64Fingerprint()
	require.NoError(t, err)

	decoded, err := gofprint.DecodeBase64Fingerprint(b64)
	require.NoError(t, err)
	assert.Equal(t, fp.Algorithm, decoded.Algorithm)
	assert.Equal(t, fp.Items, decoded.Items)
}

// Seed-test scenario 1 (spec.md §8.2): 10 seconds of silence at 44100Hz
// stereo, with silence_threshold set, fingerprints to zero items.
func TestFingerprintSilenceYieldsNoItems(t *testing.T) {
	ctx, err := gofprint.NewContext(gofprint.Algorithm1)
	require.NoError(t, err)
	require.NoError(t, ctx.SetOption("silence_threshold", 100))
	require.NoError(t, ctx.Start(44100, 2))

	silence := make([]int16, 44100*2*10) // 10s, stereo, interleaved zeros
	require.NoError(t, ctx.Feed(silence))
	require.NoError(t, ctx.Finish())

	fp, err := ctx.Fingerprint()
	require.NoError(t, err)
	assert.Len(t, fp.Items, 0)
}

func TestSimHashStableAcrossCalls(t *testing.T) {
	fp := fingerprintSine(t, gofprint.Algorithm0, 660, 44100, 44100)
	assert.Equal(t, fp.SimHash(), fp.SimHash())
}

func TestMatcherFindsSelfMatch(t *testing.T) {
	fp := fingerprintSine(t, gofprint.Algorithm3, 880, 44100, 44100*20)

	m := gofprint.NewMatcher()
	require.NoError(t, m.SetFingerprint(0, fp))
	require.NoError(t, m.SetFingerprint(1, fp))
	require.NoError(t, m.Run())

	segs := m.Segments()
	require.NotEmpty(t, segs)
	total := 0
	for _, s := range segs {
		total += s.Duration
		assert.Equal(t, 100, s.Score)
	}
	assert.Equal(t, len(fp.Items), total)
}

func TestMatcherRejectsAlgorithmMismatch(t *testing.T) {
	a := fingerprintSine(t, gofprint.Algorithm1, 440, 44100, 44100)
	b := fingerprintSine(t, gofprint.Algorithm2, 440, 44100, 44100)

	m := gofprint.NewMatcher()
	require.NoError(t, m.SetFingerprint(0, a))
	require.NoError(t, m.SetFingerprint(1, b))
	assert.ErrorIs(t, m.Run(), gofprint.ErrAlgorithmMismatch)
}

func TestMatcherRejectsEmptyFingerprint(t *testing.T) {
	m := gofprint.NewMatcher()
	require.NoError(t, m.SetFingerprint(0, gofprint.Fingerprint{Algorithm: gofprint.Algorithm1}))
	require.NoError(t, m.SetFingerprint(1, gofprint.Fingerprint{Algorithm: gofprint.Algorithm1, Items: []uint32{1}}))
	assert.ErrorIs(t, m.Run(), gofprint.ErrEmptyFingerprint)
}

// Codec round-trip property test directly over the decode/encode helpers
// with synthetic item sequences, per spec.md §8.
func TestBase64RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 64).Draw(rt, "n")
		items := make([]uint32, n)
		for i := range items {
			items[i] = rapid.Uint32().Draw(rt, "item")
		}
		fp := gofprint.Fingerprint{Algorithm: gofprint.Algorithm1, Items: items}

		data := codec.Compress(int(fp.Algorithm), fp.Items)
		b64 := gofprint.EncodeBase64(data)
		decoded, err := gofprint.DecodeBase64Fingerprint(b64)
		require.NoError(rt, err)
		assert.Equal(rt, fp.Algorithm, decoded.Algorithm)
		if n == 0 {
			assert.Empty(rt, decoded.Items)
		} else {
			assert.Equal(rt, fp.Items, decoded.Items)
		}
	})
}
