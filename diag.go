package gofprint

import (
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/cpu"
)

// logCPUFeaturesOnce logs the CPU SIMD features available on this host at
// debug level, once per process. Diagnostic only — the DSP pipeline here
// is pure Go with no per-architecture code paths, unlike the teacher's
// cgo/SIMD dispatch, so nothing downstream branches on this.
var logCPUFeaturesOnce sync.Once

func logCPUFeatures() {
	logCPUFeaturesOnce.Do(func() {
		switch {
		case cpu.X86.HasAVX2:
			log.Debug("cpu features", "avx2", true, "sse42", cpu.X86.HasSSE42)
		case cpu.ARM64.HasASIMD:
			log.Debug("cpu features", "asimd", true)
		default:
			log.Debug("cpu features", "baseline", true)
		}
	})
}
