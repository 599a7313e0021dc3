package analysis

import (
	"fmt"
	"math"
)

// DefaultThreshold drops aggregated values below 0.1 %.
const DefaultThreshold = 1e-3

// Option configures Analyze.
type Option func(*Options)

// Options is the resolved Analyze configuration.
type Options struct {
	threshold float64
}

// DefaultOptions returns DefaultThreshold.
func DefaultOptions() Options {
	return Options{threshold: DefaultThreshold}
}

// ValidateThreshold reports ErrBadThreshold unless 0 ≤ p < 1.
// Callers holding user input validate with it before calling WithThreshold.
func ValidateThreshold(p float64) error {
	if math.IsNaN(p) || p < 0 || p >= 1 {
		return fmt.Errorf("threshold %v: %w", p, ErrBadThreshold)
	}

	return nil
}

// WithThreshold sets the cut-off for reported values: an aggregated
// probability must exceed p to be kept. Panics when ValidateThreshold fails.
func WithThreshold(p float64) Option {
	if err := ValidateThreshold(p); err != nil {
		panic("analysis: WithThreshold: " + err.Error())
	}

	return func(o *Options) { o.threshold = p }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
