// SPDX-License-Identifier: MIT

package dqi

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gf2grover/analysis"
	"github.com/katalvlaran/gf2grover/circuit"
	"github.com/katalvlaran/gf2grover/gf2"
	"github.com/katalvlaran/gf2grover/oracle"
	"github.com/katalvlaran/gf2grover/statevec"
)

// Register names declared by Build, in declaration order.
const (
	RegisterError    = "y"
	RegisterSolution = "solution"
)

// Result is the outcome of Run.
type Result struct {
	State    *statevec.State
	Circuit  *circuit.Circuit
	Error    circuit.Register // y, cleared by the decoder
	Solution circuit.Register

	Solutions int    // M, from the verifier
	States    uint64 // 2^n
	Verifier  *gf2.Verifier
}

// Build returns the DQI circuit for v's system: phase, syndrome, decode and
// the final Hadamard layer. It declares y (m qubits) before solution (n).
//
// Errors: ErrNilVerifier, oracle.ErrUnsupportedSystem for any matrix other
// than [[1,1,0],[0,1,1]].
func Build(v *gf2.Verifier) (*circuit.Circuit, error) {
	if v == nil {
		return nil, ErrNilVerifier
	}
	sys := v.System()
	c := circuit.New()
	y, err := c.DeclareRegister(RegisterError, sys.Rows())
	if err != nil {
		return nil, err
	}
	s, err := c.DeclareRegister(RegisterSolution, sys.Cols())
	if err != nil {
		return nil, err
	}
	yq, sq := y.Qubits(), s.Qubits()

	// Stage 1: phase (−1)^(v·y)
	for i, bit := range sys.TargetVector() {
		if !bit {
			continue
		}
		if err = c.Append(circuit.Z(yq[i])); err != nil {
			return nil, err
		}
	}

	// Stage 2: s ← Bᵀ·y, one row of Bᵀ at a time
	for j := 0; j < sys.Cols(); j++ {
		for i := 0; i < sys.Rows(); i++ {
			if one, _ := sys.At(i, j); !one {
				continue
			}
			if err = c.Append(circuit.CNOT(yq[i], sq[j])); err != nil {
				return nil, err
			}
		}
	}

	// Stage 3: decode
	dec, err := oracle.Decoder(c, y, s, v)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if err = c.AppendCircuit(dec); err != nil {
		return nil, err
	}

	// Stage 4: Hadamard transform of the syndrome
	for _, q := range sq {
		if err = c.Append(circuit.H(q)); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// InitialState returns the uniform superposition over every y of weight
// ≤ 1 on the first m qubits, tensored with |0…0⟩ on the last n.
func InitialState(m, n int) (*statevec.State, error) {
	if m < 1 || n < 1 {
		return nil, fmt.Errorf("InitialState(%d, %d): %w", m, n, statevec.ErrNoQubits)
	}
	if m+n > statevec.MaxQubits {
		return nil, fmt.Errorf("InitialState(%d, %d): %w", m, n, statevec.ErrTooManyQubits)
	}
	amps := make([]complex128, 1<<uint(m+n))
	a := complex(1/math.Sqrt(float64(m+1)), 0)
	amps[0] = a
	for i := 0; i < m; i++ {
		amps[uint64(1)<<uint(n+i)] = a
	}

	return statevec.FromAmplitudes(amps)
}

// Run builds the circuit for v, prepares InitialState and simulates.
//
// Errors: those of Build and InitialState, any statevec.Simulate error.
func Run(v *gf2.Verifier, opts ...Option) (*Result, error) {
	c, err := Build(v)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	sys := v.System()
	init, err := InitialState(sys.Rows(), sys.Cols())
	if err != nil {
		return nil, err
	}

	res := &Result{
		Circuit:   c,
		Solutions: v.Count(),
		States:    v.Candidates(),
		Verifier:  v,
	}
	res.Error, _ = c.Register(RegisterError)
	res.Solution, _ = c.Register(RegisterSolution)

	simOpts := append([]statevec.Option{statevec.WithLogger(o.logger)}, o.simOpts...)
	simOpts = append(simOpts, statevec.WithInitialState(init))
	if res.State, err = statevec.Simulate(c, simOpts...); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	o.logger.Debug("Decoded", "qubits", c.QubitCount(), "gates", c.Len(), "solutions", res.Solutions)

	return res, nil
}

// Distribution marginalizes the final state onto the solution register.
func (r *Result) Distribution(opts ...analysis.Option) (*analysis.Distribution, error) {
	return analysis.Analyze(r.State, r.Solution, r.Verifier, opts...)
}
