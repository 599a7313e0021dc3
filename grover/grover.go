// SPDX-License-Identifier: MIT

package grover

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gf2grover/analysis"
	"github.com/katalvlaran/gf2grover/circuit"
	"github.com/katalvlaran/gf2grover/diffusion"
	"github.com/katalvlaran/gf2grover/gf2"
	"github.com/katalvlaran/gf2grover/oracle"
	"github.com/katalvlaran/gf2grover/statevec"
)

// Register names declared by BuildCircuit.
const (
	RegisterSolution = "solution"
	RegisterSyndrome = "syndrome"
)

// Result is the outcome of Run. When NoSolution is set, State and Circuit
// are nil and Iterations is 0.
type Result struct {
	State    *statevec.State
	Circuit  *circuit.Circuit
	Solution circuit.Register
	Syndrome circuit.Register // zero value unless Oracle == OracleSyndrome

	Oracle     OracleKind
	Iterations int    // k
	Solutions  int    // M
	States     uint64 // 2^n
	NoSolution bool   // M == 0; not an error

	Verifier *gf2.Verifier
	Echelon  gf2.Echelon
}

// OptimalIterations returns ⌊π/4 · √(nStates/m)⌋, or 0 when m ≤ 0 or the
// value is below 1.
func OptimalIterations(nStates uint64, m int) int {
	if m <= 0 || nStates == 0 {
		return 0
	}
	k := math.Floor(math.Pi / 4 * math.Sqrt(float64(nStates)/float64(m)))
	if k < 1 {
		return 0
	}

	return int(k)
}

// Run amplifies the satisfying assignments of v's system and simulates the
// result.
//
// Errors: ErrNilVerifier, ErrTooManyQubits, any circuit construction error,
// any statevec.Simulate error (including ErrNormalizationDrift).
// Complexity: O(2^n·m) counting plus O(k·(n+m·n)·2^N) simulation.
func Run(v *gf2.Verifier, opts ...Option) (*Result, error) {
	if v == nil {
		return nil, ErrNilVerifier
	}
	o := gatherOptions(opts...)
	sys := v.System()
	n := sys.Cols()
	if w := Qubits(sys, o.oracle); w > statevec.MaxQubits {
		return nil, fmt.Errorf("Run: %d qubits (max %d): %w", w, statevec.MaxQubits, ErrTooManyQubits)
	}

	res := &Result{
		Oracle:    o.oracle,
		Solutions: v.Count(),
		States:    v.Candidates(),
		Verifier:  v,
		Echelon:   gf2.Reduce(sys),
	}
	o.logger.Debug("Counted solutions", "n", n, "m", sys.Rows(), "solutions", res.Solutions,
		"rank", res.Echelon.Rank, "expected", res.Echelon.SolutionCount(n))

	if res.Solutions == 0 {
		res.NoSolution = true
		o.logger.Debug("System has no solution, skipping amplification")

		return res, nil
	}

	res.Iterations = o.iterations
	if res.Iterations == AutoIterations {
		res.Iterations = OptimalIterations(res.States, res.Solutions)
	}

	c, err := build(v, res.Iterations, o)
	if err != nil {
		return nil, err
	}
	res.Circuit = c
	res.Solution, _ = c.Register(RegisterSolution)
	if o.oracle == OracleSyndrome {
		res.Syndrome, _ = c.Register(RegisterSyndrome)
	}

	simOpts := append([]statevec.Option{statevec.WithLogger(o.logger)}, o.simOpts...)
	if res.State, err = statevec.Simulate(c, simOpts...); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	o.logger.Debug("Amplified", "oracle", o.oracle, "iterations", res.Iterations,
		"qubits", c.QubitCount(), "gates", c.Len())

	return res, nil
}

// BuildCircuit returns the full circuit for k rounds: the uniform
// superposition followed by k × (oracle, diffusion). WithIterations,
// WithSimulatorOptions and WithLogger are ignored.
func BuildCircuit(v *gf2.Verifier, k int, opts ...Option) (*circuit.Circuit, error) {
	if v == nil {
		return nil, ErrNilVerifier
	}
	if k < 0 {
		k = 0
	}

	return build(v, k, gatherOptions(opts...))
}

// Qubits is the circuit width Run declares for sys with the given oracle:
// n solution qubits plus m syndrome ancillas for OracleSyndrome.
func Qubits(sys *gf2.System, kind OracleKind) int {
	if kind == OracleSyndrome {
		return sys.Cols() + sys.Rows()
	}

	return sys.Cols()
}

// build declares the registers, prepares the superposition and appends k rounds.
func build(v *gf2.Verifier, k int, o Options) (*circuit.Circuit, error) {
	sys := v.System()
	c := circuit.New()
	sol, err := c.DeclareRegister(RegisterSolution, sys.Cols())
	if err != nil {
		return nil, err
	}
	var syn circuit.Register
	if o.oracle == OracleSyndrome {
		if syn, err = c.DeclareRegister(RegisterSyndrome, sys.Rows()); err != nil {
			return nil, err
		}
	}

	for _, q := range sol.Qubits() {
		if err = c.Append(circuit.H(q)); err != nil {
			return nil, err
		}
	}
	if k == 0 {
		return c, nil
	}

	var orc *circuit.Circuit
	switch o.oracle {
	case OracleSyndrome:
		orc, err = oracle.Syndrome(c, sol, syn, v)
	case OraclePredicate:
		orc, err = oracle.Predicate(c, sol, v.Predicate())
	case OracleHandwired:
		orc, err = oracle.Handwired(c, sol, v)
	default:
		err = fmt.Errorf("%s: %w", o.oracle, ErrUnknownOracle)
	}
	if err != nil {
		return nil, fmt.Errorf("build oracle: %w", err)
	}
	diff, err := diffusion.Build(c, sol)
	if err != nil {
		return nil, fmt.Errorf("build diffusion: %w", err)
	}

	for i := 0; i < k; i++ {
		if err = c.AppendCircuit(orc); err != nil {
			return nil, err
		}
		if err = c.AppendCircuit(diff); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Distribution runs the analyzer over the solution register. A NoSolution
// result yields an empty distribution.
func (r *Result) Distribution(opts ...analysis.Option) (*analysis.Distribution, error) {
	if r.NoSolution {
		return analysis.Empty(r.Verifier.Width(), opts...), nil
	}

	return analysis.Analyze(r.State, r.Solution, r.Verifier, opts...)
}
