package grover_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/ethereum/go-ethereum/log"
	fuzz "github.com/google/gofuzz"
	"github.com/katalvlaran/gf2grover/analysis"
	"github.com/katalvlaran/gf2grover/circuit"
	"github.com/katalvlaran/gf2grover/gf2"
	"github.com/katalvlaran/gf2grover/grover"
	"github.com/katalvlaran/gf2grover/statevec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verifier(t *testing.T, matrix [][]int, target []int) *gf2.Verifier {
	t.Helper()
	sys, err := gf2.FromInts(matrix, target)
	require.NoError(t, err)
	v, err := gf2.NewVerifier(sys)
	require.NoError(t, err)

	return v
}

// TestOptimalIterations pins the formula and its floors: π/4·√(N/M) below
// 1 (N=8, M≥5) and M=0 both give 0.
func TestOptimalIterations(t *testing.T) {
	cases := []struct {
		states uint64
		m      int
		want   int
	}{
		{8, 2, 1},
		{8, 1, 2},
		{4, 1, 1},
		{16, 1, 3},
		{1024, 1, 25},
		{8, 8, 0},
		{8, 5, 0},
		{8, 0, 0},
		{0, 1, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, grover.OptimalIterations(tc.states, tc.m), "N=%d M=%d", tc.states, tc.m)
	}
}

// TestRun_Chain3 is the reference instance: x₀⊕x₁=0, x₁⊕x₂=0 has the
// solutions 000 and 111; one round concentrates the mass on them.
func TestRun_Chain3(t *testing.T) {
	for _, kind := range []grover.OracleKind{grover.OracleSyndrome, grover.OraclePredicate, grover.OracleHandwired} {
		t.Run(kind.String(), func(t *testing.T) {
			v := verifier(t, [][]int{{1, 1, 0}, {0, 1, 1}}, []int{0, 0})
			res, err := grover.Run(v, grover.WithOracle(kind), grover.WithSimulatorOptions(statevec.WithStepCheck(true)))
			require.NoError(t, err)

			assert.False(t, res.NoSolution)
			assert.Equal(t, 2, res.Solutions)
			assert.Equal(t, uint64(8), res.States)
			assert.Equal(t, 1, res.Iterations)
			assert.Equal(t, uint64(2), res.Echelon.SolutionCount(3))
			assert.Equal(t, kind, res.Oracle)

			d, err := res.Distribution()
			require.NoError(t, err)
			top := d.Top(2)
			require.Len(t, top, 2)
			assert.ElementsMatch(t, []string{"000", "111"}, []string{top[0].Bitstring, top[1].Bitstring})
			assert.True(t, top[0].Satisfies)
			assert.True(t, top[1].Satisfies)
			assert.GreaterOrEqual(t, top[0].Probability+top[1].Probability, 0.9)
			assert.InDelta(t, 1.0, d.SolutionMass, 1e-9)
		})
	}
}

// TestRun_Registers checks the syndrome register only exists for the
// syndrome oracle and the layout matches the declared names.
func TestRun_Registers(t *testing.T) {
	v := verifier(t, [][]int{{1, 1, 0}, {0, 1, 1}}, []int{1, 0})

	res, err := grover.Run(v)
	require.NoError(t, err)
	assert.Equal(t, grover.RegisterSolution, res.Solution.Name)
	assert.Equal(t, 3, res.Solution.Size)
	assert.Equal(t, grover.RegisterSyndrome, res.Syndrome.Name)
	assert.Equal(t, 5, res.State.Qubits())

	res, err = grover.Run(v, grover.WithOracle(grover.OraclePredicate))
	require.NoError(t, err)
	assert.Equal(t, circuit.Register{}, res.Syndrome)
	assert.Equal(t, 3, res.State.Qubits())

	assert.Equal(t, 5, grover.Qubits(v.System(), grover.OracleSyndrome))
	assert.Equal(t, 3, grover.Qubits(v.System(), grover.OracleHandwired))
}

// TestRun_NoSolution: x₀⊕x₁ = 0 and x₀⊕x₁ = 1 cannot both hold.
func TestRun_NoSolution(t *testing.T) {
	v := verifier(t, [][]int{{1, 1}, {1, 1}}, []int{0, 1})
	res, err := grover.Run(v, grover.WithIterations(3))
	require.NoError(t, err)

	assert.True(t, res.NoSolution)
	assert.Equal(t, 0, res.Solutions)
	assert.Equal(t, 0, res.Iterations)
	assert.Nil(t, res.State)
	assert.Nil(t, res.Circuit)
	assert.False(t, res.Echelon.Consistent)

	d, err := res.Distribution()
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 0.0, d.Mass)
	assert.Equal(t, 2, d.Width)
}

// TestRun_IterationOverride walks past the optimum and checks the mass
// falls, as the rotation overshoots.
func TestRun_IterationOverride(t *testing.T) {
	v := verifier(t, [][]int{{1, 1, 0, 0}, {0, 1, 1, 0}, {0, 0, 1, 1}}, []int{0, 0, 0})
	// M = 2 of 16: optimum k = ⌊π/4·√8⌋ = 2
	mass := make([]float64, 0, 4)
	for k := 0; k < 4; k++ {
		res, err := grover.Run(v, grover.WithIterations(k))
		require.NoError(t, err)
		require.Equal(t, k, res.Iterations)
		d, err := res.Distribution(analysis.WithThreshold(0))
		require.NoError(t, err)
		mass = append(mass, d.SolutionMass)
	}
	assert.InDelta(t, 2.0/16, mass[0], 1e-9)
	assert.Greater(t, mass[1], mass[0])
	assert.Greater(t, mass[2], mass[1])
	assert.Less(t, mass[3], mass[2])

	auto, err := grover.Run(v)
	require.NoError(t, err)
	assert.Equal(t, 2, auto.Iterations)
}

// TestRun_MatchesTheory compares the simulated success probability with
// sin²((2k+1)θ), sin²θ = M/N, on seeded random systems.
func TestRun_MatchesTheory(t *testing.T) {
	f := fuzz.NewWithSeed(1018).NilChance(0)
	for round := 0; round < 20; round++ {
		var raw struct {
			Rows  [3]uint8
			Right uint8
		}
		f.Fuzz(&raw)
		matrix := make([][]int, 3)
		target := make([]int, 3)
		for i := range matrix {
			matrix[i] = make([]int, 5)
			for j := range matrix[i] {
				matrix[i][j] = int(raw.Rows[i]>>uint(j)) & 1
			}
			target[i] = int(raw.Right>>uint(i)) & 1
		}
		v := verifier(t, matrix, target)

		res, err := grover.Run(v)
		require.NoError(t, err)
		require.Equal(t, int(res.Echelon.SolutionCount(5)), res.Solutions, "round %d", round)
		if res.NoSolution {
			continue
		}

		d, err := res.Distribution(analysis.WithThreshold(0))
		require.NoError(t, err)
		theta := math.Asin(math.Sqrt(float64(res.Solutions) / float64(res.States)))
		want := math.Pow(math.Sin(float64(2*res.Iterations+1)*theta), 2)
		assert.InDelta(t, want, d.SolutionMass, 1e-9, "round %d: %v", round, matrix)
	}
}

// TestRun_Errors covers nil input, width limits and the hand-wired restriction.
func TestRun_Errors(t *testing.T) {
	_, err := grover.Run(nil)
	require.ErrorIs(t, err, grover.ErrNilVerifier)

	wide := make([][]int, 10)
	for i := range wide {
		wide[i] = make([]int, 20)
		wide[i][i] = 1
	}
	v := verifier(t, wide, make([]int, 10))
	_, err = grover.Run(v)
	require.ErrorIs(t, err, grover.ErrTooManyQubits)

	other := verifier(t, [][]int{{1, 0, 1}, {0, 1, 1}}, []int{0, 0})
	_, err = grover.Run(other, grover.WithOracle(grover.OracleHandwired))
	require.Error(t, err)
}

// TestRun_Logger routes debug output to an injected logger.
func TestRun_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewLogger(log.NewTerminalHandler(&buf, false))

	v := verifier(t, [][]int{{1, 1, 0}, {0, 1, 1}}, []int{0, 0})
	_, err := grover.Run(v, grover.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Counted solutions")
	assert.Contains(t, buf.String(), "Simulated circuit")
}

// TestBuildCircuit_Shape counts gates for one round of each oracle.
func TestBuildCircuit_Shape(t *testing.T) {
	v := verifier(t, [][]int{{1, 1, 0}, {0, 1, 1}}, []int{0, 0})

	c, err := grover.BuildCircuit(v, 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"h": 3}, c.CountByName())

	c, err = grover.BuildCircuit(v, 2)
	require.NoError(t, err)
	// 3 H + 2 × (8 cx + 4 x + 1 cz  +  6 h + 6 x + 1 ccz)
	assert.Equal(t, map[string]int{"h": 15, "cx": 16, "x": 20, "cz": 2, "ccz": 2}, c.CountByName())
	assert.Equal(t, 5, c.QubitCount())

	_, err = grover.BuildCircuit(nil, 1)
	require.ErrorIs(t, err, grover.ErrNilVerifier)
}

// TestParseOracleKind round-trips names and panics on bad options.
func TestParseOracleKind(t *testing.T) {
	for _, k := range []grover.OracleKind{grover.OracleSyndrome, grover.OraclePredicate, grover.OracleHandwired} {
		got, err := grover.ParseOracleKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := grover.ParseOracleKind("Predicate")
	require.NoError(t, err)
	assert.Equal(t, grover.OraclePredicate, got)

	_, err = grover.ParseOracleKind("qft")
	require.ErrorIs(t, err, grover.ErrUnknownOracle)

	assert.Panics(t, func() { grover.WithOracle(grover.OracleKind(9)) })
	assert.Panics(t, func() { grover.WithIterations(-1) })
	assert.Panics(t, func() { grover.WithLogger(nil) })
}
