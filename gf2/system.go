// SPDX-License-Identifier: MIT

// Package gf2 - System storage (row bit masks) & safe accessors.
//
// Purpose:
//   - Hold B (m×n) and v (length m) as an immutable value: the constructor
//     deep-copies its inputs and accessors hand out copies.
//   - Store each row as a uint64 mask using the MSB-first assignment
//     convention (column j lives at bit n-1-j) so row·x is one AND + popcount.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//
// Complexity quicksheet:
//   - NewSystem/FromInts: O(m*n); At: O(1); Ones: O(m*n); Matrix: O(m*n).

package gf2

import (
	"fmt"
	"strings"
)

// MaxVariables bounds n so that assignments fit a uint64 and brute-force
// enumeration stays finite. Simulation limits are tighter (see statevec).
const MaxVariables = 30

const (
	ctxNew   = "NewSystem"
	ctxInts  = "FromInts"
	ctxAt    = "At"
	ctxShape = "shape"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = " "
	_fmtAug      = " | "
)

// systemErrorf attaches method context to a sentinel error.
func systemErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("System.%s(%d,%d): %w", method, row, col, err)
}

// System is an immutable linear system B·x ≡ v over GF(2).
//   - rows[i] holds row i of B as a bit mask (column j at bit n-1-j).
//   - target[i] holds vᵢ.
type System struct {
	m, n   int
	rows   []uint64
	target []bool
}

// Entry addresses a 1-entry of B.
type Entry struct {
	Row int
	Col int
}

// NewSystem builds a System from a boolean matrix and target vector.
//
// Implementation:
//   - Stage 1: validate non-empty, rectangular, n ≤ MaxVariables.
//   - Stage 2: validate len(target) == rows (ErrDimensionMismatch).
//   - Stage 3: pack rows into masks and copy the target.
//
// Complexity: O(m*n).
func NewSystem(matrix [][]bool, target []bool) (*System, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxNew, ErrEmptySystem)
	}
	m, n := len(matrix), len(matrix[0])
	if n > MaxVariables {
		return nil, fmt.Errorf("%s: n=%d > %d: %w", ctxNew, n, MaxVariables, ErrTooManyVariables)
	}
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w", ctxNew, i, len(row), n, ErrRaggedMatrix)
		}
	}
	if len(target) != m {
		return nil, fmt.Errorf("%s: target length %d, rows %d: %w", ctxNew, len(target), m, ErrDimensionMismatch)
	}

	s := &System{m: m, n: n, rows: make([]uint64, m), target: make([]bool, m)}
	for i, row := range matrix {
		s.rows[i] = Pack(row)
	}
	copy(s.target, target)

	return s, nil
}

// FromInts builds a System from 0/1 integer data, the usual serialized form.
// Any entry outside {0,1} yields ErrNonBinary.
func FromInts(matrix [][]int, target []int) (*System, error) {
	bm := make([][]bool, len(matrix))
	for i, row := range matrix {
		bm[i] = make([]bool, len(row))
		for j, v := range row {
			b, err := toBit(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ctxInts, systemErrorf(ctxShape, i, j, err))
			}
			bm[i][j] = b
		}
	}
	bt := make([]bool, len(target))
	for i, v := range target {
		b, err := toBit(v)
		if err != nil {
			return nil, fmt.Errorf("%s: target[%d]: %w", ctxInts, i, err)
		}
		bt[i] = b
	}

	return NewSystem(bm, bt)
}

func toBit(v int) (bool, error) {
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrNonBinary
	}
}

// Rows returns m, the number of equations.
func (s *System) Rows() int { return s.m }

// Cols returns n, the number of variables.
func (s *System) Cols() int { return s.n }

// At reports B[row][col].
// Returns ErrOutOfRange for invalid indices.
// Complexity: O(1).
func (s *System) At(row, col int) (bool, error) {
	if row < 0 || row >= s.m || col < 0 || col >= s.n {
		return false, systemErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return s.rows[row]&(1<<uint(s.n-1-col)) != 0, nil
}

// Target reports vᵢ.
func (s *System) Target(row int) (bool, error) {
	if row < 0 || row >= s.m {
		return false, systemErrorf(ctxAt, row, 0, ErrOutOfRange)
	}

	return s.target[row], nil
}

// RowMask returns row i as a bit mask in the assignment convention.
func (s *System) RowMask(row int) (uint64, error) {
	if row < 0 || row >= s.m {
		return 0, systemErrorf(ctxAt, row, 0, ErrOutOfRange)
	}

	return s.rows[row], nil
}

// Ones lists every 1-entry of B in row-major order.
// The oracle builder wires one CNOT per entry.
func (s *System) Ones() []Entry {
	var out []Entry
	for i, row := range s.rows {
		for j := 0; j < s.n; j++ {
			if row&(1<<uint(s.n-1-j)) != 0 {
				out = append(out, Entry{Row: i, Col: j})
			}
		}
	}

	return out
}

// Matrix returns a deep copy of B.
func (s *System) Matrix() [][]bool {
	out := make([][]bool, s.m)
	for i, row := range s.rows {
		out[i] = Unpack(row, s.n)
	}

	return out
}

// TargetVector returns a copy of v.
func (s *System) TargetVector() []bool {
	out := make([]bool, s.m)
	copy(out, s.target)

	return out
}

// Ints returns B and v as 0/1 integers, preserving row and column order.
func (s *System) Ints() ([][]int, []int) {
	matrix := make([][]int, s.m)
	for i, row := range s.Matrix() {
		matrix[i] = make([]int, s.n)
		for j, b := range row {
			if b {
				matrix[i][j] = 1
			}
		}
	}
	target := make([]int, s.m)
	for i, b := range s.target {
		if b {
			target[i] = 1
		}
	}

	return matrix, target
}

// String renders the augmented matrix [B | v], one row per line.
func (s *System) String() string {
	var sb strings.Builder
	for i, row := range s.rows {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < s.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			if row&(1<<uint(s.n-1-j)) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString(_fmtAug)
		if s.target[i] {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
