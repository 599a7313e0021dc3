// SPDX-License-Identifier: MIT

package statevec

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/gf2grover/circuit"
)

// Simulate applies every gate of c, in order, to a fresh state vector.
//
// Stage 1 (Validate): non-nil circuit, 1 ≤ N ≤ MaxQubits, initial state width.
// Stage 2 (Allocate): |0…0⟩ or a copy of the WithInitialState state.
// Stage 3 (Evolve): one kernel pass per gate, optional per-gate norm check.
// Stage 4 (Check): final norm within tolerance, else ErrNormalizationDrift.
//
// Errors: ErrNilCircuit, ErrNoQubits, ErrTooManyQubits, ErrQubitMismatch,
// ErrNormalizationDrift (logged at warn, state discarded).
// Complexity: O(G·2^N) time, 16·2^N bytes.
func Simulate(c *circuit.Circuit, opts ...Option) (*State, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}
	o := gatherOptions(opts...)
	n := c.QubitCount()
	if err := checkWidth(n); err != nil {
		return nil, err
	}

	var (
		s   *State
		err error
	)
	if o.initial != nil {
		if o.initial.n != n {
			return nil, fmt.Errorf("initial state has %d qubits, circuit %d: %w", o.initial.n, n, ErrQubitMismatch)
		}
		s = o.initial.Clone()
	} else if s, err = NewZero(n); err != nil {
		return nil, err
	}

	workers := DefaultWorkers
	if n >= ParallelThreshold {
		workers = o.workers
	}

	start := time.Now()
	for i, g := range c.Gates() {
		k := lower(g, n)
		k.apply(s.amps, workers)
		if o.stepCheck {
			if err := s.checkNorm(o, fmt.Sprintf("gate %d (%s)", i, g)); err != nil {
				return nil, err
			}
		}
	}
	if err := s.checkNorm(o, "final"); err != nil {
		return nil, err
	}
	o.logger.Debug("Simulated circuit", "qubits", n, "gates", c.Len(), "workers", workers, "elapsed", time.Since(start))

	return s, nil
}

// Apply applies a single gate to s in place.
//
// Errors: circuit.ErrInvalidCircuit (wrapped) for a zero-value gate or a
// repeated qubit, ErrQubitMismatch when the gate references a qubit ≥ N.
func (s *State) Apply(g circuit.Gate) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}
	for _, q := range g.Qubits() {
		if int(q) < 0 || int(q) >= s.n {
			return fmt.Errorf("Apply(%s): qubit %d of %d: %w", g, q, s.n, ErrQubitMismatch)
		}
	}
	k := lower(g, s.n)
	k.apply(s.amps, DefaultWorkers)

	return nil
}

func (s *State) checkNorm(o Options, where string) error {
	norm := s.Norm()
	if drift := math.Abs(norm - 1); drift > o.eps {
		o.logger.Warn("Normalization drift", "at", where, "norm", norm, "tolerance", o.eps)

		return fmt.Errorf("%s: norm %.12f: %w", where, norm, ErrNormalizationDrift)
	}

	return nil
}
