package fingerprint

import "github.com/gofprint/gofprint/internal/dsp"

// Core runs the per-algorithm DSP graph from internal-rate mono samples to
// a stream of 32-bit sub-fingerprints: ring buffer -> window -> FFT ->
// chroma fold -> (optional smoothing) -> integral image -> 16 classifiers
// -> Gray code -> pack, per spec.md §4.3.
type Core struct {
	cfg *Config
	fft *dsp.FFT

	buf        []int16 // samples seen so far, buf[0] == absolute sample frameStart-relative base
	base       int64   // absolute sample index of buf[0]
	frameStart int64   // absolute sample index the next frame begins at

	frameBuf []float64 // scratch: windowed frame, len == FrameSize
	mags     []float64 // scratch: FFT bin magnitudes

	smoother *dsp.GaussianSmoother
	history  [][]float64 // trailing raw chroma vectors, len <= SmoothRadius+1, used only when cfg.Smoothing
	rawCount int         // total raw chroma vectors folded so far

	img *dsp.IntegralImage
}

// NewCore builds a fresh pipeline instance for cfg. A Core is single-use
// per fingerprinting session; Reset rebuilds its internal state for reuse.
func NewCore(cfg *Config) *Core {
	c := &Core{}
	c.init(cfg)
	return c
}

func (c *Core) init(cfg *Config) {
	c.cfg = cfg
	c.fft = dsp.NewFFT(cfg.FrameSize)
	c.frameBuf = make([]float64, cfg.FrameSize)
	c.mags = make([]float64, cfg.FrameSize/2+1)
	c.img = dsp.NewIntegralImage(cfg.MaxWidth+2, dsp.NumChromaClasses)
	c.buf = c.buf[:0]
	c.base = 0
	c.frameStart = 0
	c.rawCount = 0
	c.history = nil
	if cfg.Smoothing {
		c.smoother = dsp.NewGaussianSmoother(2*cfg.SmoothRadius+1, cfg.SmoothSigma)
	} else {
		c.smoother = nil
	}
}

// Reset discards all buffered/history state so the Core can be reused for
// a new fingerprinting session with the same Config.
func (c *Core) Reset() {
	c.init(c.cfg)
}

// Feed appends internal-rate mono samples and returns any sub-fingerprints
// that can now be produced.
func (c *Core) Feed(samples []int16) []uint32 {
	c.buf = append(c.buf, samples...)
	return c.drain()
}

// Finish signals no more samples are coming; any already-buffered partial
// frame is simply left unproduced (too short to window), matching
// chromaprint's "trailing partial frame is dropped, not padded" framing
// contract (distinct from the resampler's zero-pad flush).
func (c *Core) Finish() []uint32 {
	return c.drain()
}

func (c *Core) drain() []uint32 {
	var out []uint32
	cfg := c.cfg
	for c.frameStart+int64(cfg.FrameSize) <= c.base+int64(len(c.buf)) {
		start := c.frameStart - c.base
		frame := c.buf[start : start+int64(cfg.FrameSize)]

		for i, s := range frame {
			c.frameBuf[i] = float64(s) * cfg.Window[i]
		}
		c.fft.Magnitudes(c.frameBuf, c.mags)

		raw := make([]float64, dsp.NumChromaClasses)
		cfg.Chroma.Fold(c.mags, raw)
		dsp.NormalizeL2(raw)

		row := raw
		if c.smoother != nil {
			c.history = append(c.history, raw)
			if len(c.history) > cfg.SmoothRadius+1 {
				c.history = c.history[1:]
			}
			count := c.rawCount + 1
			t := count - 1
			get := func(i int) []float64 {
				k := t - i
				j := len(c.history) - 1 - k
				if j < 0 {
					j = 0
				}
				return c.history[j]
			}
			smoothed := make([]float64, dsp.NumChromaClasses)
			c.smoother.Smooth(t, count, get, smoothed)
			row = smoothed
		}
		c.rawCount++
		c.img.Append(row)

		if c.img.Count() >= cfg.MaxWidth {
			out = append(out, c.pack())
		}

		c.frameStart += int64(cfg.Hop)
	}

	// Trim consumed history from the front of buf.
	trimTo := c.frameStart - c.base
	if trimTo > 0 {
		if trimTo > int64(len(c.buf)) {
			trimTo = int64(len(c.buf))
		}
		c.buf = c.buf[trimTo:]
		c.base += trimTo
	}
	return out
}

// pack evaluates all 16 classifiers against the current integral image
// state and packs their Gray-coded 2-bit outputs into a SubFingerprint,
// classifier 0 occupying the two most significant bits.
func (c *Core) pack() uint32 {
	tEnd := c.img.Count()
	var fp uint32
	for i := range c.cfg.Classifiers {
		cl := &c.cfg.Classifiers[i]
		v := cl.apply(c.img, tEnd)
		sym := grayCode(cl.quantize(v))
		fp |= sym << uint(30-2*i)
	}
	return fp
}
