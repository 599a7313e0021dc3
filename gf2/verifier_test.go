package gf2_test

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/katalvlaran/gf2grover/gf2"
	"github.com/stretchr/testify/require"
)

// TestVerifier_Chain3 checks the reference instance: v=[0,0] has solutions 000 and 111.
func TestVerifier_Chain3(t *testing.T) {
	v, err := gf2.NewVerifier(chain3(t, []int{0, 0}))
	require.NoError(t, err)

	require.Equal(t, 3, v.Width())
	require.Equal(t, uint64(8), v.Candidates())
	require.Equal(t, []uint64{0b000, 0b111}, v.Enumerate())
	require.Equal(t, 2, v.Count())
	require.True(t, v.Satisfies(0b111))
	require.False(t, v.Satisfies(0b101))

	ok, err := v.SatisfiesBits([]bool{true, true, true})
	require.NoError(t, err)
	require.True(t, ok)
	_, err = v.SatisfiesBits([]bool{true})
	require.ErrorIs(t, err, gf2.ErrDimensionMismatch)
}

// TestVerifier_Chain3Target10: target [1,0] is satisfied by x = 100 and 011.
func TestVerifier_Chain3Target10(t *testing.T) {
	v, err := gf2.NewVerifier(chain3(t, []int{1, 0}))
	require.NoError(t, err)
	require.Equal(t, []uint64{0b011, 0b100}, v.Enumerate())
}

// TestVerifier_Unsatisfiable: x₀ = 0 and x₀ = 1 at once.
func TestVerifier_Unsatisfiable(t *testing.T) {
	sys, err := gf2.FromInts([][]int{{1, 0}, {1, 0}}, []int{0, 1})
	require.NoError(t, err)
	v, err := gf2.NewVerifier(sys)
	require.NoError(t, err)

	require.Zero(t, v.Count())
	require.Empty(t, v.Enumerate())
	require.False(t, gf2.Reduce(sys).Consistent)
}

// TestVerifier_IgnoresHighBits documents that only the n low bits are read.
func TestVerifier_IgnoresHighBits(t *testing.T) {
	v, err := gf2.NewVerifier(chain3(t, []int{0, 0}))
	require.NoError(t, err)
	require.True(t, v.Satisfies(0b1000))
	require.True(t, v.Predicate()(0b111))
}

// TestNewVerifier_Nil rejects a nil system.
func TestNewVerifier_Nil(t *testing.T) {
	_, err := gf2.NewVerifier(nil)
	require.ErrorIs(t, err, gf2.ErrNilSystem)
}

// TestReduce_MatchesBruteForce cross-checks Gaussian elimination against
// enumeration on seeded random systems.
func TestReduce_MatchesBruteForce(t *testing.T) {
	f := fuzz.NewWithSeed(20251018).NilChance(0)
	for round := 0; round < 200; round++ {
		var cells [5][6]bool
		var rhs [5]bool
		var shape [2]uint8
		f.Fuzz(&cells)
		f.Fuzz(&rhs)
		f.Fuzz(&shape)
		m := int(shape[0])%5 + 1
		n := int(shape[1])%6 + 1

		matrix := make([][]bool, m)
		for i := range matrix {
			matrix[i] = append([]bool(nil), cells[i][:n]...)
		}
		sys, err := gf2.NewSystem(matrix, append([]bool(nil), rhs[:m]...))
		require.NoError(t, err)
		v, err := gf2.NewVerifier(sys)
		require.NoError(t, err)

		e := gf2.Reduce(sys)
		require.LessOrEqual(t, e.Rank, m)
		require.Len(t, e.Pivots, e.Rank)
		require.Equal(t, uint64(v.Count()), e.SolutionCount(n), "system:\n%s", sys)
	}
}

// TestReduce_Chain3 checks rank and pivots on the reference instance.
func TestReduce_Chain3(t *testing.T) {
	e := gf2.Reduce(chain3(t, []int{0, 0}))
	require.Equal(t, 2, e.Rank)
	require.True(t, e.Consistent)
	require.Equal(t, []int{0, 1}, e.Pivots)
	require.Equal(t, uint64(2), e.SolutionCount(3))
}
