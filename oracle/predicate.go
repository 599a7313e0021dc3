package oracle

import (
	"fmt"

	"github.com/katalvlaran/gf2grover/circuit"
)

// MaxPredicateWidth caps the truth-table oracle at 2^20 predicate calls.
const MaxPredicateWidth = 20

// Predicate marks every solution-register value x with pred(x) true.
// Values use the MSB-first convention: solution[0] is the top bit of x.
//
// For each marked x the register is X-conjugated on the qubits where x has a
// 0 bit, so the all-ones phase flip lands on |x⟩ alone.
//
// Errors: ErrNilLayout, ErrNilPredicate, ErrRegisterTooWide, or any
// circuit.ErrInvalidCircuit when solution is not declared in layout.
// Complexity: 2^n predicate calls; O(M·n) gates for M marked values.
func Predicate(layout *circuit.Circuit, solution circuit.Register, pred func(uint64) bool) (*circuit.Circuit, error) {
	if layout == nil {
		return nil, ErrNilLayout
	}
	if pred == nil {
		return nil, ErrNilPredicate
	}
	n := solution.Size
	if n > MaxPredicateWidth {
		return nil, fmt.Errorf("Predicate: width %d (max %d): %w", n, MaxPredicateWidth, ErrRegisterTooWide)
	}
	qs := solution.Qubits()

	out := layout.Blank()
	for x := uint64(0); x < uint64(1)<<uint(n); x++ {
		if !pred(x) {
			continue
		}
		flips := make([]circuit.Gate, 0, n)
		for i, q := range qs {
			if x&(uint64(1)<<uint(n-1-i)) == 0 {
				flips = append(flips, circuit.X(q))
			}
		}
		gates := make([]circuit.Gate, 0, 2*len(flips)+1)
		gates = append(gates, flips...)
		gates = append(gates, allOnesPhase(qs))
		gates = append(gates, flips...)
		if err := out.Append(gates...); err != nil {
			return nil, fmt.Errorf("Predicate: value %d: %w", x, err)
		}
	}

	return out, nil
}
