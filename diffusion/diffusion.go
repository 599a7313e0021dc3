// SPDX-License-Identifier: MIT

package diffusion

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gf2grover/circuit"
)

var (
	// ErrEmptyRegister indicates a register with no qubits.
	ErrEmptyRegister = errors.New("diffusion: empty register")

	// ErrNilLayout indicates a nil layout circuit.
	ErrNilLayout = errors.New("diffusion: nil layout circuit")
)

// Build returns the diffusion operator over reg as a circuit declaring the
// same registers as layout.
//
// Stage 1: H then X on every qubit of reg.
// Stage 2: phase flip of |1…1⟩ (Z for one qubit, MCZ otherwise).
// Stage 3: X then H on every qubit of reg.
//
// Errors: ErrNilLayout, ErrEmptyRegister, or circuit.ErrInvalidCircuit when
// reg is not declared in layout.
func Build(layout *circuit.Circuit, reg circuit.Register) (*circuit.Circuit, error) {
	if layout == nil {
		return nil, ErrNilLayout
	}
	if reg.Size <= 0 {
		return nil, fmt.Errorf("Build(%s): %w", reg, ErrEmptyRegister)
	}
	qs := reg.Qubits()

	gates := make([]circuit.Gate, 0, 4*len(qs)+1)
	for _, q := range qs {
		gates = append(gates, circuit.H(q))
	}
	for _, q := range qs {
		gates = append(gates, circuit.X(q))
	}
	if last := len(qs) - 1; last == 0 {
		gates = append(gates, circuit.Z(qs[0]))
	} else {
		gates = append(gates, circuit.MCZ(qs[:last], qs[last]))
	}
	for _, q := range qs {
		gates = append(gates, circuit.X(q))
	}
	for _, q := range qs {
		gates = append(gates, circuit.H(q))
	}

	out := layout.Blank()
	if err := out.Append(gates...); err != nil {
		return nil, fmt.Errorf("Build(%s): %w", reg, err)
	}

	return out, nil
}
