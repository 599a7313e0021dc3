package dqi_test

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/ethereum/go-ethereum/log"
	"github.com/katalvlaran/gf2grover/circuit"
	"github.com/katalvlaran/gf2grover/dqi"
	"github.com/katalvlaran/gf2grover/gf2"
	"github.com/katalvlaran/gf2grover/grover"
	"github.com/katalvlaran/gf2grover/oracle"
	"github.com/katalvlaran/gf2grover/statevec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const eps = 1e-9

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func verifier(t *testing.T, target []int) *gf2.Verifier {
	t.Helper()
	sys, err := gf2.FromInts([][]int{{1, 1, 0}, {0, 1, 1}}, target)
	require.NoError(t, err)
	v, err := gf2.NewVerifier(sys)
	require.NoError(t, err)

	return v
}

func bitstrings(v *gf2.Verifier) []string {
	var out []string
	for _, x := range v.Enumerate() {
		out = append(out, gf2.Bitstring(x, v.Width()))
	}

	return out
}

// TestRun_EveryTarget checks the interference pattern for all four v: each
// solution carries 3/8, every other value 1/24.
func TestRun_EveryTarget(t *testing.T) {
	for _, target := range [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		v := verifier(t, target)
		t.Run(fmt.Sprint(target), func(t *testing.T) {
			res, err := dqi.Run(v, dqi.WithSimulatorOptions(statevec.WithStepCheck(true)))
			require.NoError(t, err)
			assert.Equal(t, 2, res.Solutions)
			assert.Equal(t, uint64(8), res.States)

			d, err := res.Distribution()
			require.NoError(t, err)
			require.Equal(t, 8, d.Len())
			assert.InDelta(t, 1.0, d.Mass, eps)
			assert.InDelta(t, 0.75, d.SolutionMass, eps)

			var got []string
			for _, e := range d.Solutions() {
				got = append(got, e.Bitstring)
				assert.InDelta(t, 0.375, e.Probability, eps, e.Bitstring)
			}
			assert.ElementsMatch(t, bitstrings(v), got)
			for _, e := range d.Entries {
				if !e.Satisfies {
					assert.InDelta(t, 1.0/24, e.Probability, eps, e.Bitstring)
				}
			}
		})
	}
}

// TestRun_RanksSolutionsFirst is the v = [1,0] instance: 100 and 011 lead.
func TestRun_RanksSolutionsFirst(t *testing.T) {
	res, err := dqi.Run(verifier(t, []int{1, 0}))
	require.NoError(t, err)
	d, err := res.Distribution()
	require.NoError(t, err)

	top := d.Top(2)
	require.Len(t, top, 2)
	assert.ElementsMatch(t, []string{"011", "100"}, []string{top[0].Bitstring, top[1].Bitstring})
	assert.True(t, top[0].Satisfies)
	assert.True(t, top[1].Satisfies)
	assert.Greater(t, top[1].Probability, d.Entries[2].Probability)
}

// TestRun_ClearsErrorRegister leaves no weight outside y = 00.
func TestRun_ClearsErrorRegister(t *testing.T) {
	res, err := dqi.Run(verifier(t, []int{1, 1}))
	require.NoError(t, err)
	assert.Equal(t, circuit.Register{Name: dqi.RegisterError, Offset: 0, Size: 2}, res.Error)
	assert.Equal(t, circuit.Register{Name: dqi.RegisterSolution, Offset: 2, Size: 3}, res.Solution)

	n := res.State.Qubits()
	res.State.ForEachProbability(func(i uint64, p float64) {
		if res.Error.Extract(i, n) != 0 {
			assert.InDelta(t, 0, p, eps, "index %d", i)
		}
	})
}

// TestRun_AgreesWithGrover finds the same solution set by both routes.
func TestRun_AgreesWithGrover(t *testing.T) {
	v := verifier(t, []int{0, 1})
	res, err := dqi.Run(v)
	require.NoError(t, err)
	d, err := res.Distribution()
	require.NoError(t, err)

	gres, err := grover.Run(v)
	require.NoError(t, err)
	gd, err := gres.Distribution()
	require.NoError(t, err)

	var a, b []string
	for _, e := range d.Solutions() {
		a = append(a, e.Bitstring)
	}
	for _, e := range gd.Solutions() {
		b = append(b, e.Bitstring)
	}
	assert.ElementsMatch(t, b, a)
	assert.ElementsMatch(t, []string{"001", "110"}, a)
}

// TestBuild_GateShape pins the gate census: one Z per set bit of v, one
// CNOT per 1 in B, the decoder, and H on each solution qubit.
func TestBuild_GateShape(t *testing.T) {
	c, err := dqi.Build(verifier(t, []int{1, 0}))
	require.NoError(t, err)
	assert.Equal(t, 5, c.QubitCount())
	assert.Equal(t, map[string]int{"z": 1, "cx": 4, "x": 4, "ccx": 2, "h": 3}, c.CountByName())

	c, err = dqi.Build(verifier(t, []int{0, 0}))
	require.NoError(t, err)
	assert.NotContains(t, c.CountByName(), "z")
	assert.Equal(t, 13, c.Len())
}

// TestInitialState is uniform over y ∈ {00, 01, 10} with the solution
// register in |000⟩.
func TestInitialState(t *testing.T) {
	s, err := dqi.InitialState(2, 3)
	require.NoError(t, err)
	require.Equal(t, 5, s.Qubits())
	assert.InDelta(t, 1.0, s.Norm(), eps)

	a := 1 / math.Sqrt(3)
	for i := uint64(0); i < uint64(s.Len()); i++ {
		amp, err := s.Amplitude(i)
		require.NoError(t, err)
		switch i {
		case 0, 0b01000, 0b10000:
			assert.InDelta(t, a, real(amp), eps, "index %05b", i)
		default:
			assert.Equal(t, complex128(0), amp, "index %05b", i)
		}
	}

	_, err = dqi.InitialState(0, 3)
	assert.ErrorIs(t, err, statevec.ErrNoQubits)
	_, err = dqi.InitialState(20, 20)
	assert.ErrorIs(t, err, statevec.ErrTooManyQubits)
}

// TestRun_Logger routes debug output to an injected logger.
func TestRun_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewLogger(log.NewTerminalHandler(&buf, false))

	_, err := dqi.Run(verifier(t, []int{0, 0}), dqi.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Decoded")
}

func TestRun_Errors(t *testing.T) {
	_, err := dqi.Run(nil)
	require.ErrorIs(t, err, dqi.ErrNilVerifier)
	_, err = dqi.Build(nil)
	require.ErrorIs(t, err, dqi.ErrNilVerifier)

	sys, err := gf2.FromInts([][]int{{1, 0, 1}, {0, 1, 1}}, []int{0, 0})
	require.NoError(t, err)
	v, err := gf2.NewVerifier(sys)
	require.NoError(t, err)
	_, err = dqi.Run(v)
	require.ErrorIs(t, err, oracle.ErrUnsupportedSystem)

	assert.Panics(t, func() { dqi.WithLogger(nil) })
}
