// SPDX-License-Identifier: MIT

package dqi

import (
	"github.com/ethereum/go-ethereum/log"
	"github.com/katalvlaran/gf2grover/statevec"
)

const panicLoggerNil = "dqi: WithLogger: nil logger"

// Option configures Run.
type Option func(*Options)

// Options is the resolved Run configuration.
type Options struct {
	simOpts []statevec.Option
	logger  log.Logger
}

// DefaultOptions: default simulator, root logger.
func DefaultOptions() Options {
	return Options{logger: log.Root()}
}

// WithSimulatorOptions forwards options to statevec.Simulate. An initial
// state passed here is replaced by InitialState.
func WithSimulatorOptions(opts ...statevec.Option) Option {
	return func(o *Options) { o.simOpts = append(o.simOpts, opts...) }
}

// WithLogger routes run and simulator logs to l. Panics on nil.
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
