// SPDX-License-Identifier: MIT

// Package statevec: functional configuration for Simulate.
//
// Defaults are the single source of truth; WithX constructors panic only on
// nonsensical values (programmer error), never on user data.
package statevec

import (
	"math"

	"github.com/ethereum/go-ethereum/log"
)

const (
	// MaxQubits caps dense simulation at 2^26 amplitudes (1 GiB).
	MaxQubits = 26

	// ParallelThreshold is the smallest width at which WithWorkers takes effect.
	ParallelThreshold = 14

	// DefaultTolerance bounds |Σ|a|² - 1| for normalization checks.
	DefaultTolerance = 1e-9

	// DefaultWorkers runs the gate kernel on the calling goroutine.
	DefaultWorkers = 1
)

const (
	panicToleranceInvalid = "statevec: WithTolerance: eps must be finite and > 0"
	panicWorkersInvalid   = "statevec: WithWorkers: n must be >= 1"
	panicLoggerNil        = "statevec: WithLogger: nil logger"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved Simulate configuration.
type Options struct {
	initial   *State
	eps       float64
	stepCheck bool
	workers   int
	logger    log.Logger
}

// DefaultOptions returns the zero-configuration settings:
// |0…0⟩ start, DefaultTolerance, end-only check, single worker, root logger.
func DefaultOptions() Options {
	return Options{
		eps:     DefaultTolerance,
		workers: DefaultWorkers,
		logger:  log.Root(),
	}
}

// WithInitialState starts simulation from a copy of s instead of |0…0⟩.
// A nil s keeps the default.
func WithInitialState(s *State) Option {
	return func(o *Options) { o.initial = s }
}

// WithTolerance sets the normalization tolerance.
// Panics when eps is not finite or not positive.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithStepCheck checks normalization after every gate instead of only at the
// end, so drift is attributed to the first offending gate.
func WithStepCheck(on bool) Option {
	return func(o *Options) { o.stepCheck = on }
}

// WithWorkers splits each gate application across n goroutines once the
// circuit reaches ParallelThreshold qubits. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger routes simulator logs to l. Panics on nil.
func WithLogger(l log.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
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
