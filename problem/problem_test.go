package problem_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/gf2grover/gf2"
	"github.com/katalvlaran/gf2grover/problem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	chainTOML = `name = "chain3"
matrix = [[1, 1, 0], [0, 1, 1]]
target = [1, 0]
`
	chainYAML = `name: chain3
matrix:
  - [1, 1, 0]
  - [0, 1, 1]
target: [1, 0]
`
	chainJSON = `{"name": "chain3", "matrix": [[1, 1, 0], [0, 1, 1]], "target": [1, 0]}`
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// TestLoad_Formats loads the same system from each supported extension.
func TestLoad_Formats(t *testing.T) {
	files := map[string]string{
		"chain.toml": chainTOML,
		"chain.yaml": chainYAML,
		"chain.yml":  chainYAML,
		"chain.json": chainJSON,
	}
	for name, body := range files {
		t.Run(name, func(t *testing.T) {
			f, err := problem.Load(write(t, name, body))
			require.NoError(t, err)
			assert.Equal(t, "chain3", f.Name)
			assert.Equal(t, [][]int{{1, 1, 0}, {0, 1, 1}}, f.Matrix)
			assert.Equal(t, []int{1, 0}, f.Target)

			sys, err := f.System()
			require.NoError(t, err)
			assert.Equal(t, "[1 1 0 | 1]\n[0 1 1 | 0]\n", sys.String())
		})
	}
}

// TestLoad_DefaultName falls back to the file stem.
func TestLoad_DefaultName(t *testing.T) {
	f, err := problem.Load(write(t, "parity.toml", "matrix = [[1, 1]]\ntarget = [1]\n"))
	require.NoError(t, err)
	assert.Equal(t, "parity", f.Name)
}

// TestLoad_Errors covers extensions, unknown keys, syntax and content errors.
func TestLoad_Errors(t *testing.T) {
	_, err := problem.Load(write(t, "chain.txt", chainTOML))
	require.ErrorIs(t, err, problem.ErrUnknownFormat)

	_, err = problem.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	for name, body := range map[string]string{
		"extra.toml": chainTOML + "rank = 2\n",
		"extra.yaml": chainYAML + "rank: 2\n",
		"extra.json": `{"matrix": [[1]], "target": [1], "rank": 2}`,
		"bad.json":   `{"matrix": [[1]`,
	} {
		_, err = problem.Load(write(t, name, body))
		require.ErrorIs(t, err, problem.ErrSyntax, name)
	}

	f, err := problem.Load(write(t, "two.json", `{"matrix": [[1, 2]], "target": [0]}`))
	require.NoError(t, err)
	_, err = f.System()
	require.ErrorIs(t, err, gf2.ErrNonBinary)

	f, err = problem.Load(write(t, "short.yaml", "matrix: [[1, 0], [0, 1]]\ntarget: [0]\n"))
	require.NoError(t, err)
	_, err = f.System()
	require.ErrorIs(t, err, gf2.ErrDimensionMismatch)
}

// TestEncode_PreservesOrder writes an asymmetric system and reads it back.
func TestEncode_PreservesOrder(t *testing.T) {
	sys, err := gf2.FromInts([][]int{{1, 0, 0, 1}, {0, 1, 1, 1}, {0, 0, 0, 1}}, []int{1, 0, 1})
	require.NoError(t, err)
	f := problem.FromSystem("skew", sys)

	for _, format := range []problem.Format{problem.FormatTOML, problem.FormatYAML, problem.FormatJSON} {
		var buf bytes.Buffer
		require.NoError(t, f.Encode(&buf, format), format.String())

		back, err := problem.Decode(&buf, format)
		require.NoError(t, err, format.String())
		got, err := back.System()
		require.NoError(t, err)
		assert.Equal(t, sys.String(), got.String(), format.String())
	}

	_, err = f.Marshal(problem.Format(0))
	require.ErrorIs(t, err, problem.ErrUnknownFormat)
}

// TestParse_Compact covers the command-line syntax.
func TestParse_Compact(t *testing.T) {
	sys, err := problem.Parse("110,011", "00")
	require.NoError(t, err)
	assert.Equal(t, "[1 1 0 | 0]\n[0 1 1 | 0]\n", sys.String())

	sys, err = problem.Parse(" 1 1 0 ; 0 1 1 ", "1,0")
	require.NoError(t, err)
	assert.Equal(t, 2, sys.Rows())
	tv := sys.TargetVector()
	assert.Equal(t, []bool{true, false}, tv)

	_, err = problem.Parse("", "0")
	require.ErrorIs(t, err, problem.ErrSyntax)
	_, err = problem.Parse("1x0", "0")
	require.ErrorIs(t, err, problem.ErrSyntax)
	_, err = problem.Parse("110,011", "")
	require.ErrorIs(t, err, problem.ErrSyntax)
	_, err = problem.Parse("110,01", "00")
	require.ErrorIs(t, err, gf2.ErrRaggedMatrix)
	_, err = problem.Parse("110,011", "000")
	require.ErrorIs(t, err, gf2.ErrDimensionMismatch)
}

// TestParseFormat maps names and extensions.
func TestParseFormat(t *testing.T) {
	for in, want := range map[string]problem.Format{
		"toml": problem.FormatTOML, ".yml": problem.FormatYAML, "YAML": problem.FormatYAML, "json": problem.FormatJSON,
	} {
		got, err := problem.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := problem.ParseFormat("xml")
	require.ErrorIs(t, err, problem.ErrUnknownFormat)
	assert.True(t, strings.HasPrefix(problem.Format(9).String(), "format("))
}
