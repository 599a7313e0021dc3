// Package circuit is the write-only intermediate representation of quantum
// circuits: named registers, immutable gates and ordered composition.
//
// The package has no execution semantics. Oracle and diffusion sub-circuits
// are built, tested and composed here independently of simulation; the
// statevec package executes them.
//
// Registers & bit layout:
//
//	Registers are declared in order and occupy consecutive global qubit
//	indices. For an N-qubit circuit, qubit q maps to bit position N-1-q of a
//	basis-state index: the first declared register holds the most
//	significant bits, and within a register the first qubit is the most
//	significant. BitMask and Register.Extract are the single implementation
//	of this convention, shared by the simulator and the result analyzer.
//
//	    solution[0] solution[1] solution[2] syndrome[0] syndrome[1]
//	    bit 4       bit 3       bit 2       bit 1       bit 0
//
// Gates:
//
//	A Gate is a base single-qubit unitary (H, X or Z) on a target qubit plus
//	an ordered set of control qubits. The unitary acts only on the sub-space
//	where every control is |1⟩. CNOT, CZ, Toffoli, MCX and MCZ are
//	constructors over this one shape, so any number of controls is allowed.
//
// Composition:
//
//	Circuits concatenate with AppendCircuit; relative order is preserved
//	because gates generally do not commute. Every supported gate is its own
//	inverse, so Inverse is the reversed gate sequence.
//
// Errors:
//
//	Every construction error wraps ErrInvalidCircuit and is reported at the
//	call that introduced it (DeclareRegister, Append, AppendCircuit).
package circuit
