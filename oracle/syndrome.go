// SPDX-License-Identifier: MIT

package oracle

import (
	"fmt"

	"github.com/katalvlaran/gf2grover/circuit"
	"github.com/katalvlaran/gf2grover/gf2"
)

// Syndrome builds the generic phase oracle for v's system.
//
// Stage 1 (Compute): CNOT(solution[j] → syndrome[i]) for every B[i][j] = 1,
// in row-major order, then X on syndrome[i] wherever v[i] = 0. Afterwards
// syndrome[i] = 1 exactly when equation i holds.
// Stage 2 (Mark): Z controlled by every syndrome qubit (a lone Z when m = 1).
// Stage 3 (Uncompute): the compute stage reversed.
//
// Errors: ErrNilLayout, ErrNilVerifier, ErrRegisterSize, or any
// circuit.ErrInvalidCircuit when the registers are not declared in layout.
// Complexity: O(m·n) gates.
func Syndrome(layout *circuit.Circuit, solution, syndrome circuit.Register, v *gf2.Verifier) (*circuit.Circuit, error) {
	if layout == nil {
		return nil, ErrNilLayout
	}
	if v == nil {
		return nil, ErrNilVerifier
	}
	sys := v.System()
	if solution.Size != sys.Cols() || syndrome.Size != sys.Rows() {
		return nil, fmt.Errorf("Syndrome: solution %d/%d, syndrome %d/%d: %w",
			solution.Size, sys.Cols(), syndrome.Size, sys.Rows(), ErrRegisterSize)
	}
	sol, syn := solution.Qubits(), syndrome.Qubits()

	compute := layout.Blank()
	for _, e := range sys.Ones() {
		if err := compute.Append(circuit.CNOT(sol[e.Col], syn[e.Row])); err != nil {
			return nil, fmt.Errorf("Syndrome: compute: %w", err)
		}
	}
	for i, bit := range sys.TargetVector() {
		if bit {
			continue
		}
		if err := compute.Append(circuit.X(syn[i])); err != nil {
			return nil, fmt.Errorf("Syndrome: flip: %w", err)
		}
	}

	out := layout.Blank()
	if err := out.AppendCircuit(compute); err != nil {
		return nil, err
	}
	if err := out.Append(allOnesPhase(syn)); err != nil {
		return nil, fmt.Errorf("Syndrome: mark: %w", err)
	}
	if err := out.AppendCircuit(compute.Inverse()); err != nil {
		return nil, err
	}

	return out, nil
}

// allOnesPhase flips the phase of |1…1⟩ over qs: Z for one qubit, MCZ otherwise.
func allOnesPhase(qs []circuit.Qubit) circuit.Gate {
	last := len(qs) - 1
	if last == 0 {
		return circuit.Z(qs[0])
	}

	return circuit.MCZ(qs[:last], qs[last])
}
