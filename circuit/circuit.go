// SPDX-License-Identifier: MIT

// File circuit.go - Circuit container: register declarations & ordered gates.
//
// Purpose:
//   - Keep registers in declaration order; qubit indices are assigned
//     consecutively, so the first register owns the most significant bits.
//   - Validate every gate at Append time; a Circuit never holds a gate
//     referencing an undeclared qubit.
//   - Compose sub-circuits by concatenation without re-validating layout
//     more than once.
//
// Complexity quicksheet:
//   - DeclareRegister: O(1); Append: O(k·R) for k gate qubits and R registers;
//     AppendCircuit: O(G + R); Inverse/Clone/Blank: O(G + R).

package circuit

import "fmt"

const (
	ctxDeclare = "DeclareRegister"
	ctxAppend  = "Append"
	ctxCompose = "AppendCircuit"
)

// Circuit is an ordered gate sequence over declared registers.
// The zero value is not usable; call New.
type Circuit struct {
	regs   []Register
	byName map[string]int
	qubits int
	gates  []Gate
}

// New returns an empty circuit with no registers.
func New() *Circuit {
	return &Circuit{byName: make(map[string]int)}
}

// DeclareRegister appends a register of the given size after the existing ones.
//
// Errors: ErrRegisterSize (size <= 0), ErrRegisterRedeclared (name taken).
// Complexity: O(1).
func (c *Circuit) DeclareRegister(name string, size int) (Register, error) {
	if size <= 0 {
		return Register{}, fmt.Errorf("%s(%q, %d): %w", ctxDeclare, name, size, ErrRegisterSize)
	}
	if _, taken := c.byName[name]; taken {
		return Register{}, fmt.Errorf("%s(%q): %w", ctxDeclare, name, ErrRegisterRedeclared)
	}
	r := Register{Name: name, Offset: c.qubits, Size: size}
	c.byName[name] = len(c.regs)
	c.regs = append(c.regs, r)
	c.qubits += size

	return r, nil
}

// Register looks up a declared register by name.
func (c *Circuit) Register(name string) (Register, error) {
	i, ok := c.byName[name]
	if !ok {
		return Register{}, fmt.Errorf("Register(%q): %w", name, ErrUnknownRegister)
	}

	return c.regs[i], nil
}

// Registers returns the registers in declaration order.
func (c *Circuit) Registers() []Register {
	out := make([]Register, len(c.regs))
	copy(out, c.regs)

	return out
}

// QubitCount returns the total number of declared qubits.
func (c *Circuit) QubitCount() int { return c.qubits }

// Len returns the number of gates.
func (c *Circuit) Len() int { return len(c.gates) }

// Gates returns the gate sequence. Gates are immutable values, so the
// returned slice may be read freely; modifying it does not affect c.
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)

	return out
}

// Append validates and appends gates in order. Either all gates are
// appended or none is.
//
// Errors: ErrUnknownKind, ErrDuplicateQubit, ErrUndeclaredQubit.
func (c *Circuit) Append(gates ...Gate) error {
	for i, g := range gates {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("%s: gate %d: %w", ctxAppend, i, err)
		}
		for _, q := range g.Qubits() {
			if !c.declared(q) {
				return fmt.Errorf("%s: gate %d (%s): qubit %d: %w", ctxAppend, i, g, q, ErrUndeclaredQubit)
			}
		}
	}
	c.gates = append(c.gates, gates...)

	return nil
}

// AppendCircuit concatenates sub's gates after c's. Every register of sub
// must be declared in c with the same name, offset and size.
//
// Errors: ErrNilCircuit, ErrLayoutMismatch.
func (c *Circuit) AppendCircuit(sub *Circuit) error {
	if sub == nil {
		return fmt.Errorf("%s: %w", ctxCompose, ErrNilCircuit)
	}
	for _, r := range sub.regs {
		own, err := c.Register(r.Name)
		if err != nil || own != r {
			return fmt.Errorf("%s: register %s: %w", ctxCompose, r, ErrLayoutMismatch)
		}
	}
	c.gates = append(c.gates, sub.gates...)

	return nil
}

// Blank returns an empty circuit declaring the same registers as c.
// Sub-circuit builders start from a blank so their output composes back.
func (c *Circuit) Blank() *Circuit {
	b := &Circuit{
		regs:   make([]Register, len(c.regs)),
		byName: make(map[string]int, len(c.regs)),
		qubits: c.qubits,
	}
	copy(b.regs, c.regs)
	for name, i := range c.byName {
		b.byName[name] = i
	}

	return b
}

// Clone returns a deep copy of c.
func (c *Circuit) Clone() *Circuit {
	b := c.Blank()
	b.gates = c.Gates()

	return b
}

// Inverse returns the adjoint of c. Every supported gate (H, X, Z and their
// controlled forms) is self-inverse, so the adjoint is the reversed sequence.
func (c *Circuit) Inverse() *Circuit {
	b := c.Blank()
	b.gates = make([]Gate, len(c.gates))
	for i, g := range c.gates {
		b.gates[len(c.gates)-1-i] = g
	}

	return b
}

// CountByName tallies gates by mnemonic (h, cx, mcz, ...).
func (c *Circuit) CountByName() map[string]int {
	out := make(map[string]int)
	for _, g := range c.gates {
		out[g.Name()]++
	}

	return out
}

// registerOf returns the register owning q.
func (c *Circuit) registerOf(q Qubit) (Register, bool) {
	for _, r := range c.regs {
		if r.Contains(q) {
			return r, true
		}
	}

	return Register{}, false
}

func (c *Circuit) declared(q Qubit) bool {
	_, ok := c.registerOf(q)

	return ok
}
