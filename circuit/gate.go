package circuit

import (
	"fmt"
	"math"
	"strings"
)

// Kind is the base single-qubit unitary of a gate.
type Kind uint8

const (
	// KindH is the Hadamard gate.
	KindH Kind = iota + 1
	// KindX is the Pauli-X (NOT) gate.
	KindX
	// KindZ is the Pauli-Z (phase flip) gate.
	KindZ
)

// String returns the lowercase mnemonic.
func (k Kind) String() string {
	switch k {
	case KindH:
		return "h"
	case KindX:
		return "x"
	case KindZ:
		return "z"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Matrix returns the 2×2 unitary of the kind, rows indexed by output basis
// state. Unknown kinds return the zero matrix.
func (k Kind) Matrix() [2][2]complex128 {
	h := complex(1/math.Sqrt2, 0)
	switch k {
	case KindH:
		return [2][2]complex128{{h, h}, {h, -h}}
	case KindX:
		return [2][2]complex128{{0, 1}, {1, 0}}
	case KindZ:
		return [2][2]complex128{{1, 0}, {0, -1}}
	default:
		return [2][2]complex128{}
	}
}

// Gate is an immutable, optionally controlled single-qubit unitary.
// The controls slice is owned by the gate and never exposed.
type Gate struct {
	kind     Kind
	target   Qubit
	controls []Qubit
}

func newGate(k Kind, target Qubit, controls []Qubit) Gate {
	var cs []Qubit
	if len(controls) > 0 {
		cs = make([]Qubit, len(controls))
		copy(cs, controls)
	}

	return Gate{kind: k, target: target, controls: cs}
}

// H returns a Hadamard on q.
func H(q Qubit) Gate { return newGate(KindH, q, nil) }

// X returns a bit flip on q.
func X(q Qubit) Gate { return newGate(KindX, q, nil) }

// Z returns a phase flip on q.
func Z(q Qubit) Gate { return newGate(KindZ, q, nil) }

// CNOT returns X on target controlled by control.
func CNOT(control, target Qubit) Gate { return newGate(KindX, target, []Qubit{control}) }

// CZ returns Z on target controlled by control. CZ is symmetric in its qubits.
func CZ(control, target Qubit) Gate { return newGate(KindZ, target, []Qubit{control}) }

// Toffoli returns X on target controlled by c1 and c2.
func Toffoli(c1, c2, target Qubit) Gate { return newGate(KindX, target, []Qubit{c1, c2}) }

// MCX returns X on target controlled by every qubit in controls.
func MCX(controls []Qubit, target Qubit) Gate { return newGate(KindX, target, controls) }

// MCZ returns Z on target controlled by every qubit in controls. The result
// flips the phase of the state where all listed qubits and target are |1⟩.
func MCZ(controls []Qubit, target Qubit) Gate { return newGate(KindZ, target, controls) }

// Controlled returns a copy of g with extra controls prepended.
func Controlled(g Gate, controls ...Qubit) Gate {
	all := make([]Qubit, 0, len(controls)+len(g.controls))
	all = append(all, controls...)
	all = append(all, g.controls...)

	return newGate(g.kind, g.target, all)
}

// Kind returns the base unitary.
func (g Gate) Kind() Kind { return g.kind }

// Target returns the target qubit.
func (g Gate) Target() Qubit { return g.target }

// NumControls returns the number of control qubits.
func (g Gate) NumControls() int { return len(g.controls) }

// Controls returns a copy of the control qubits.
func (g Gate) Controls() []Qubit {
	out := make([]Qubit, len(g.controls))
	copy(out, g.controls)

	return out
}

// Qubits returns controls followed by the target.
func (g Gate) Qubits() []Qubit {
	out := make([]Qubit, 0, len(g.controls)+1)
	out = append(out, g.controls...)

	return append(out, g.target)
}

// Matrix returns the base 2×2 unitary applied on the controlled sub-space.
func (g Gate) Matrix() [2][2]complex128 { return g.kind.Matrix() }

// Name returns the gate mnemonic: h, x, z, cx, cz, ccx, ccz, mcx or mcz.
func (g Gate) Name() string {
	switch len(g.controls) {
	case 0:
		return g.kind.String()
	case 1:
		return "c" + g.kind.String()
	case 2:
		return "cc" + g.kind.String()
	default:
		return "mc" + g.kind.String()
	}
}

// String renders the gate over raw global indices, e.g. "ccx q[0], q[1], q[4]".
func (g Gate) String() string {
	parts := make([]string, 0, len(g.controls)+1)
	for _, q := range g.Qubits() {
		parts = append(parts, fmt.Sprintf("q[%d]", q))
	}

	return g.Name() + " " + strings.Join(parts, ", ")
}

// Equal reports structural equality (kind, target, ordered controls).
func (g Gate) Equal(o Gate) bool {
	if g.kind != o.kind || g.target != o.target || len(g.controls) != len(o.controls) {
		return false
	}
	for i := range g.controls {
		if g.controls[i] != o.controls[i] {
			return false
		}
	}

	return true
}

// Validate checks the kind and that no qubit appears twice. Errors wrap
// ErrInvalidCircuit. Circuit.Append runs it on every gate.
func (g Gate) Validate() error {
	if g.kind < KindH || g.kind > KindZ {
		return ErrUnknownKind
	}
	seen := make(map[Qubit]struct{}, len(g.controls)+1)
	for _, q := range g.Qubits() {
		if _, dup := seen[q]; dup {
			return fmt.Errorf("%s: qubit %d: %w", g.Name(), q, ErrDuplicateQubit)
		}
		seen[q] = struct{}{}
	}

	return nil
}
