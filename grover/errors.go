package grover

import "errors"

var (
	// ErrNilVerifier indicates a nil *gf2.Verifier.
	ErrNilVerifier = errors.New("grover: nil verifier")

	// ErrTooManyQubits indicates a layout wider than statevec.MaxQubits.
	ErrTooManyQubits = errors.New("grover: circuit too wide to simulate")

	// ErrUnknownOracle indicates an unrecognized oracle name.
	ErrUnknownOracle = errors.New("grover: unknown oracle")
)
