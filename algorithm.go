package gofprint

import "github.com/gofprint/gofprint/internal/fingerprint"

// Algorithm selects the full, immutable configuration a Context
// fingerprints with: frame size, hop, chroma parameters, classifier table,
// and quantizer thresholds. Two fingerprints can only be matched against
// each other when they share an Algorithm.
type Algorithm int

// Algorithm ids, per spec.md §3. Algorithm0 is legacy; Algorithm1 through
// Algorithm4 differ only in parameter choices.
const (
	Algorithm0 Algorithm = iota
	Algorithm1
	Algorithm2
	Algorithm3
	Algorithm4
)

// String returns the conventional lowercase name for a, or "unknown" for
// any value outside the defined range.
func (a Algorithm) String() string {
	switch a {
	case Algorithm0:
		return "test1"
	case Algorithm1:
		return "test2"
	case Algorithm2:
		return "test3"
	case Algorithm3:
		return "test4"
	case Algorithm4:
		return "test5"
	default:
		return "unknown"
	}
}

// valid reports whether a is one of the defined algorithm ids.
func (a Algorithm) valid() bool {
	return a >= Algorithm0 && a <= Algorithm4
}

func (a Algorithm) config() (*fingerprint.Config, error) {
	cfg, ok := fingerprint.NewConfig(int(a))
	if !ok {
		return nil, ErrUnknownAlgorithm
	}
	return cfg, nil
}
