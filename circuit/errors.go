// SPDX-License-Identifier: MIT

package circuit

import (
	"errors"
	"fmt"
)

// ErrInvalidCircuit is the root of every construction error. The specific
// sentinels below wrap it, so errors.Is(err, ErrInvalidCircuit) matches all.
var ErrInvalidCircuit = errors.New("circuit: invalid circuit")

var (
	// ErrRegisterRedeclared indicates a register name declared twice.
	ErrRegisterRedeclared = fmt.Errorf("%w: register redeclared", ErrInvalidCircuit)

	// ErrRegisterSize indicates a register size <= 0.
	ErrRegisterSize = fmt.Errorf("%w: register size must be > 0", ErrInvalidCircuit)

	// ErrUndeclaredQubit indicates a gate referencing a qubit outside every register.
	ErrUndeclaredQubit = fmt.Errorf("%w: qubit not declared in any register", ErrInvalidCircuit)

	// ErrDuplicateQubit indicates a qubit used twice in one gate
	// (control == target, or a repeated control).
	ErrDuplicateQubit = fmt.Errorf("%w: qubit used twice in one gate", ErrInvalidCircuit)

	// ErrLayoutMismatch indicates a sub-circuit whose registers are not
	// declared identically (name, offset, size) in the receiver.
	ErrLayoutMismatch = fmt.Errorf("%w: sub-circuit register layout differs", ErrInvalidCircuit)

	// ErrUnknownKind indicates a zero-value or otherwise unknown gate kind.
	ErrUnknownKind = fmt.Errorf("%w: unknown gate kind", ErrInvalidCircuit)
)

var (
	// ErrUnknownRegister is returned by Register for an undeclared name.
	ErrUnknownRegister = errors.New("circuit: unknown register")

	// ErrRegisterIndex is returned by Register.At for an index outside [0, Size).
	ErrRegisterIndex = errors.New("circuit: register index out of range")

	// ErrNilCircuit indicates a nil *Circuit argument.
	ErrNilCircuit = errors.New("circuit: nil circuit")
)
