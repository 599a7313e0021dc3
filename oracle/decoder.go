package oracle

import (
	"fmt"

	"github.com/katalvlaran/gf2grover/circuit"
	"github.com/katalvlaran/gf2grover/gf2"
)

// Decoder builds the syndrome decoder for B = [[1,1,0],[0,1,1]]: given a
// syndrome s = Bᵀ·y of an error y with weight ≤ 1, it clears y in place.
//
//	y = 10 → s = 110: X(s₂) CCX(s₀, s₁ → y₀) X(s₂)
//	y = 01 → s = 011: X(s₀) CCX(s₁, s₂ → y₁) X(s₀)
//
// y = 00 leaves s = 000 and nothing fires. Heavier errors are not decoded.
//
// Errors: ErrNilLayout, ErrNilVerifier, ErrUnsupportedSystem for any other
// matrix, ErrRegisterSize unless y has 2 qubits and syndrome 3.
func Decoder(layout *circuit.Circuit, y, syndrome circuit.Register, v *gf2.Verifier) (*circuit.Circuit, error) {
	if layout == nil {
		return nil, ErrNilLayout
	}
	if v == nil {
		return nil, ErrNilVerifier
	}
	if err := checkFixed(v.System()); err != nil {
		return nil, fmt.Errorf("Decoder: %w", err)
	}
	if y.Size != 2 || syndrome.Size != 3 {
		return nil, fmt.Errorf("Decoder: y %d/2, syndrome %d/3: %w", y.Size, syndrome.Size, ErrRegisterSize)
	}
	e, s := y.Qubits(), syndrome.Qubits()

	out := layout.Blank()
	err := out.Append(
		circuit.X(s[2]), circuit.Toffoli(s[0], s[1], e[0]), circuit.X(s[2]),
		circuit.X(s[0]), circuit.Toffoli(s[1], s[2], e[1]), circuit.X(s[0]),
	)
	if err != nil {
		return nil, fmt.Errorf("Decoder: %w", err)
	}

	return out, nil
}
