package circuit

import "fmt"

// Qubit is a global qubit index within a circuit.
type Qubit int

// Register is a named, contiguous, fixed-size group of qubits.
// Registers are values; they are created by Circuit.DeclareRegister.
type Register struct {
	Name   string
	Offset int
	Size   int
}

// At returns the i-th qubit of the register.
func (r Register) At(i int) (Qubit, error) {
	if i < 0 || i >= r.Size {
		return 0, fmt.Errorf("Register(%s).At(%d): %w", r.Name, i, ErrRegisterIndex)
	}

	return Qubit(r.Offset + i), nil
}

// Qubits lists the register's qubits in order.
func (r Register) Qubits() []Qubit {
	out := make([]Qubit, r.Size)
	for i := range out {
		out[i] = Qubit(r.Offset + i)
	}

	return out
}

// Contains reports whether q belongs to r.
func (r Register) Contains(q Qubit) bool {
	return int(q) >= r.Offset && int(q) < r.Offset+r.Size
}

// End returns the first global index past the register.
func (r Register) End() int { return r.Offset + r.Size }

// Extract reads the register's value out of basis index idx of an n-qubit
// state. The register's first qubit is the value's most significant bit.
//
// Complexity: O(1).
func (r Register) Extract(idx uint64, n int) uint64 {
	shift := uint(n - r.End())
	mask := (uint64(1) << uint(r.Size)) - 1

	return (idx >> shift) & mask
}

// String formats the register as "name[size]@offset".
func (r Register) String() string {
	return fmt.Sprintf("%s[%d]@%d", r.Name, r.Size, r.Offset)
}

// BitPosition returns the basis-index bit that holds qubit q in an n-qubit state.
func BitPosition(q Qubit, n int) int {
	return n - 1 - int(q)
}

// BitMask returns 1 << BitPosition(q, n).
func BitMask(q Qubit, n int) uint64 {
	return uint64(1) << uint(BitPosition(q, n))
}
