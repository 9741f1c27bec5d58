package fingerprint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sineWave(freq float64, sampleRate, n int, amp float64) []int16 {
	out := make([]int16, n)
	for i := range out {
		v := amp * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
		out[i] = int16(v)
	}
	return out
}

func TestNewConfigAllAlgorithms(t *testing.T) {
	for a := 0; a <= 4; a++ {
		cfg, ok := NewConfig(a)
		require.True(t, ok, "algorithm %d", a)
		assert.Equal(t, FrameSize, cfg.FrameSize)
		assert.Equal(t, Hop, cfg.Hop)
		assert.Equal(t, NumClassifiers, len(cfg.Classifiers))
		assert.Greater(t, cfg.MaxWidth, 0)
	}
}

func TestNewConfigRejectsUnknownAlgorithm(t *testing.T) {
	_, ok := NewConfig(5)
	assert.False(t, ok)
	_, ok = NewConfig(-1)
	assert.False(t, ok)
}

func TestCoreProducesSubfingerprintsForLongEnoughSignal(t *testing.T) {
	cfg, _ := NewConfig(1)
	core := NewCore(cfg)

	samples := sineWave(440, InternalSampleRate, InternalSampleRate*5, 8000)
	items := core.Feed(samples)
	items = append(items, core.Finish()...)

	assert.NotEmpty(t, items)
}

// Fingerprinting determinism: the same PCM input through a fresh Core of
// the same Config always yields the same sub-fingerprint sequence.
func TestCoreIsDeterministic(t *testing.T) {
	cfg, _ := NewConfig(2)
	samples := sineWave(220, InternalSampleRate, InternalSampleRate*5, 6000)

	run := func() []uint32 {
		c := NewCore(cfg)
		items := c.Feed(samples)
		return append(items, c.Finish()...)
	}

	a := run()
	b := run()
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}

func TestCoreResetAllowsReuse(t *testing.T) {
	cfg, _ := NewConfig(0)
	samples := sineWave(330, InternalSampleRate, InternalSampleRate, 5000)

	c := NewCore(cfg)
	first := c.Feed(samples)
	first = append(first, c.Finish()...)

	c.Reset()
	second := c.Feed(samples)
	second = append(second, c.Finish()...)

	assert.Equal(t, first, second)
}
