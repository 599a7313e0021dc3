package oracle

import (
	"fmt"

	"github.com/katalvlaran/gf2grover/circuit"
	"github.com/katalvlaran/gf2grover/gf2"
)

// handwiredRows is the only matrix Handwired decodes, as row masks (x₀ = MSB).
var handwiredRows = [2]uint64{0b110, 0b011}

// Handwired builds the fixed decoder oracle for B = [[1,1,0],[0,1,1]] without
// ancillas. Parities are folded into x₀ and x₂ in place:
//
//	CNOT(x₁→x₀)  x₀ ← x₀⊕x₁
//	CNOT(x₁→x₂)  x₂ ← x₁⊕x₂
//	X(x₀) if v₀ = 0, X(x₂) if v₁ = 0
//	CZ(x₀, x₂)
//
// followed by the first three steps reversed.
//
// Errors: ErrNilLayout, ErrNilVerifier, ErrUnsupportedSystem for any other
// matrix, ErrRegisterSize when solution is not 3 qubits wide.
func Handwired(layout *circuit.Circuit, solution circuit.Register, v *gf2.Verifier) (*circuit.Circuit, error) {
	if layout == nil {
		return nil, ErrNilLayout
	}
	if v == nil {
		return nil, ErrNilVerifier
	}
	sys := v.System()
	if err := checkFixed(sys); err != nil {
		return nil, fmt.Errorf("Handwired: %w", err)
	}
	if solution.Size != 3 {
		return nil, fmt.Errorf("Handwired: solution width %d: %w", solution.Size, ErrRegisterSize)
	}
	x := solution.Qubits()
	target := sys.TargetVector()

	compute := layout.Blank()
	gates := []circuit.Gate{circuit.CNOT(x[1], x[0]), circuit.CNOT(x[1], x[2])}
	if !target[0] {
		gates = append(gates, circuit.X(x[0]))
	}
	if !target[1] {
		gates = append(gates, circuit.X(x[2]))
	}
	if err := compute.Append(gates...); err != nil {
		return nil, fmt.Errorf("Handwired: %w", err)
	}

	out := layout.Blank()
	if err := out.AppendCircuit(compute); err != nil {
		return nil, err
	}
	if err := out.Append(circuit.CZ(x[0], x[2])); err != nil {
		return nil, fmt.Errorf("Handwired: mark: %w", err)
	}
	if err := out.AppendCircuit(compute.Inverse()); err != nil {
		return nil, err
	}

	return out, nil
}

// checkFixed reports ErrUnsupportedSystem unless sys has the matrix the
// hand-derived constructions were written for.
func checkFixed(sys *gf2.System) error {
	if sys.Rows() != len(handwiredRows) || sys.Cols() != 3 {
		return fmt.Errorf("%dx%d: %w", sys.Rows(), sys.Cols(), ErrUnsupportedSystem)
	}
	for i, want := range handwiredRows {
		if got, _ := sys.RowMask(i); got != want {
			return fmt.Errorf("row %d: %w", i, ErrUnsupportedSystem)
		}
	}

	return nil
}
