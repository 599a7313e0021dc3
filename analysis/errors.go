// SPDX-License-Identifier: MIT

package analysis

import "errors"

var (
	// ErrNilState indicates a nil state vector.
	ErrNilState = errors.New("analysis: nil state")

	// ErrNilVerifier indicates a nil verifier.
	ErrNilVerifier = errors.New("analysis: nil verifier")

	// ErrRegisterOutOfRange indicates a register extending past the state's qubits.
	ErrRegisterOutOfRange = errors.New("analysis: register outside state")

	// ErrBadThreshold indicates a threshold outside [0, 1) or NaN.
	ErrBadThreshold = errors.New("analysis: threshold must be in [0, 1)")

	// ErrWidthMismatch indicates a register width different from the verifier's n.
	ErrWidthMismatch = errors.New("analysis: register width does not match verifier")
)
