// SPDX-License-Identifier: MIT

package statevec

import "errors"

var (
	// ErrNoQubits indicates a state or circuit with zero qubits.
	ErrNoQubits = errors.New("statevec: at least one qubit required")

	// ErrTooManyQubits indicates a width above MaxQubits.
	ErrTooManyQubits = errors.New("statevec: too many qubits for dense simulation")

	// ErrNotPowerOfTwo indicates an amplitude slice whose length is not 2^N.
	ErrNotPowerOfTwo = errors.New("statevec: amplitude count is not a power of two")

	// ErrNotNormalized indicates input amplitudes whose squared norm is not 1.
	ErrNotNormalized = errors.New("statevec: amplitudes are not normalized")

	// ErrQubitMismatch indicates an initial state or gate that does not fit
	// the circuit width.
	ErrQubitMismatch = errors.New("statevec: qubit count mismatch")

	// ErrNormalizationDrift indicates total probability mass leaving the
	// tolerance band during simulation. It signals a non-unitary construction.
	ErrNormalizationDrift = errors.New("statevec: normalization drift")

	// ErrNilCircuit indicates a nil circuit passed to Simulate.
	ErrNilCircuit = errors.New("statevec: nil circuit")

	// ErrIndexOutOfRange indicates a basis index ≥ 2^N.
	ErrIndexOutOfRange = errors.New("statevec: basis index out of range")
)
