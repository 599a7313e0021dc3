// SPDX-License-Identifier: MIT

package grover

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/katalvlaran/gf2grover/statevec"
)

// OracleKind selects the phase-oracle construction.
type OracleKind int

const (
	// OracleSyndrome computes B·x into an ancilla register. Works for any system.
	OracleSyndrome OracleKind = iota
	// OraclePredicate marks satisfying values from a truth table, no ancillas.
	OraclePredicate
	// OracleHandwired is the fixed decoder for B=[[1,1,0],[0,1,1]].
	OracleHandwired
)

var oracleNames = [...]string{"syndrome", "predicate", "handwired"}

// String returns the lowercase name used on the command line.
func (k OracleKind) String() string {
	if k < 0 || int(k) >= len(oracleNames) {
		return fmt.Sprintf("oracle(%d)", int(k))
	}

	return oracleNames[k]
}

// ParseOracleKind maps a name from String back to its kind.
func ParseOracleKind(s string) (OracleKind, error) {
	for i, name := range oracleNames {
		if strings.EqualFold(s, name) {
			return OracleKind(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownOracle)
}

// AutoIterations asks Run to use OptimalIterations.
const AutoIterations = -1

const (
	panicOracleInvalid     = "grover: WithOracle: unknown oracle kind"
	panicIterationsInvalid = "grover: WithIterations: k must be >= 0"
	panicLoggerNil         = "grover: WithLogger: nil logger"
)

// Option configures Run and BuildCircuit.
type Option func(*Options)

// Options is the resolved driver configuration.
type Options struct {
	oracle     OracleKind
	iterations int
	simOpts    []statevec.Option
	logger     log.Logger
}

// DefaultOptions: syndrome oracle, optimal iteration count, default
// simulator, root logger.
func DefaultOptions() Options {
	return Options{
		oracle:     OracleSyndrome,
		iterations: AutoIterations,
		logger:     log.Root(),
	}
}

// WithOracle selects the oracle construction. Panics on unknown kinds.
func WithOracle(k OracleKind) Option {
	if k < 0 || int(k) >= len(oracleNames) {
		panic(panicOracleInvalid)
	}

	return func(o *Options) { o.oracle = k }
}

// WithIterations overrides the optimal round count with k ≥ 0.
// The override is ignored when the system has no solution.
func WithIterations(k int) Option {
	if k < 0 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.iterations = k }
}

// WithSimulatorOptions forwards options to statevec.Simulate.
func WithSimulatorOptions(opts ...statevec.Option) Option {
	return func(o *Options) { o.simOpts = append(o.simOpts, opts...) }
}

// WithLogger routes driver and simulator logs to l. Panics on nil.
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
