// Package assert holds the single invariant-check helper shared across the
// fingerprinting pipeline. Failures here are programmer errors (e.g. an
// integral-image index out of bounds), never data-dependent conditions —
// those are reported through ordinary error returns instead.
package assert

import "fmt"

// That panics with msg if cond is false.
func That(cond bool, msg string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("gofprint: invariant violated: "+msg, args...))
	}
}
