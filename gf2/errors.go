// SPDX-License-Identifier: MIT

package gf2

import "errors"

// Every message is prefixed with "gf2: ". Detection sites wrap these sentinels
// with fmt.Errorf("ctx: %w", ErrX); callers match with errors.Is.
var (
	// ErrEmptySystem is returned when the matrix has no rows or no columns.
	ErrEmptySystem = errors.New("gf2: matrix must have at least one row and one column")

	// ErrRaggedMatrix indicates rows of differing lengths.
	ErrRaggedMatrix = errors.New("gf2: all matrix rows must have the same length")

	// ErrDimensionMismatch indicates that the target length differs from the
	// matrix row count, or an assignment length differs from the column count.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrNonBinary indicates an integer entry outside {0, 1}.
	ErrNonBinary = errors.New("gf2: entry is not 0 or 1")

	// ErrTooManyVariables is returned when n exceeds MaxVariables.
	ErrTooManyVariables = errors.New("gf2: too many variables")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrNilSystem indicates that a nil *System was passed.
	ErrNilSystem = errors.New("gf2: system is nil")

	// ErrBadBitstring indicates a bitstring with characters other than '0'/'1'
	// or a length outside [1, 64].
	ErrBadBitstring = errors.New("gf2: malformed bitstring")
)
