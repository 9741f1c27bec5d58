// Command fpctl is a thin CLI demo over the gofprint package: fingerprint
// raw PCM read from stdin, or match a pair of previously fingerprinted
// streams.
package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/gofprint/gofprint"
)

var cli struct {
	Fingerprint fingerprintCmd `cmd:"" help:"Fingerprint raw int16le PCM read from stdin."`
	Match       matchCmd       `cmd:"" help:"Match two base64 fingerprints and print their segments."`
}

type fingerprintCmd struct {
	Algorithm       int `help:"Algorithm id (0-4)." default:"1"`
	SampleRate      int `help:"Input PCM sample rate." default:"44100" short:"r"`
	Channels        int `help:"Input PCM channel count." default:"2" short:"c"`
	SilenceThreshold int `help:"RMS silence-trim threshold (0 disables)." default:"0"`
}

func (f *fingerprintCmd) Run() error {
	ctx, err := gofprint.NewContext(gofprint.Algorithm(f.Algorithm))
	if err != nil {
		return err
	}
	if f.SilenceThreshold > 0 {
		if err := ctx.SetOption("silence_threshold", f.SilenceThreshold); err != nil {
			return err
		}
	}
	if err := ctx.Start(f.SampleRate, f.Channels); err != nil {
		return err
	}

	buf := make([]byte, 1<<16)
	var samples []int16
	r := os.Stdin
	for {
		n, err := r.Read(buf)
		if n > 0 {
			samples = samples[:0]
			for i := 0; i+1 < n; i += 2 {
				samples = append(samples, int16(binary.LittleEndian.Uint16(buf[i:i+2])))
			}
			if feedErr := ctx.Feed(samples); feedErr != nil {
				return feedErr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}

	if err := ctx.Finish(); err != nil {
		return err
	}
	b64, err := ctx.Base64Fingerprint()
	if err != nil {
		return err
	}
	log.Debug("fingerprinted stream", "algorithm", f.Algorithm, "sample_rate", f.SampleRate)
	fmt.Println(b64)
	return nil
}

type matchCmd struct {
	FP1 string `arg:"" help:"Base64 fingerprint 1."`
	FP2 string `arg:"" help:"Base64 fingerprint 2."`
}

func (m *matchCmd) Run() error {
	fp1, err := gofprint.DecodeBase64Fingerprint(m.FP1)
	if err != nil {
		return err
	}
	fp2, err := gofprint.DecodeBase64Fingerprint(m.FP2)
	if err != nil {
		return err
	}

	mm := gofprint.NewMatcher()
	if err := mm.SetFingerprint(0, fp1); err != nil {
		return err
	}
	if err := mm.SetFingerprint(1, fp2); err != nil {
		return err
	}
	if err := mm.Run(); err != nil {
		return err
	}
	for _, s := range mm.Segments() {
		fmt.Printf("%d %d %d %d\n", s.Pos1, s.Pos2, s.Duration, s.Score)
	}
	return nil
}

func main() {
	k := kong.Parse(&cli, kong.Name("fpctl"), kong.Description("Acoustic fingerprinting and matching."))
	if err := k.Run(); err != nil {
		log.Fatal(err)
	}
}
