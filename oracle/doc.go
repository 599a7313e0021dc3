// Package oracle compiles a GF(2) verifier into a phase-flip sub-circuit:
// every solution-register basis state x with B·x = v gets amplitude × −1,
// every other amplitude is untouched.
//
// Constructions:
//
//	Syndrome   computes B·x into an ancilla register with one CNOT per
//	           1-entry of B, flips the syndrome bits whose target is 0, applies
//	           a multi-controlled Z over the syndrome, then replays the compute
//	           stage in reverse. Works for any system; ancillas end in |0⟩.
//	Predicate  truth-table marking from an arbitrary func(uint64) bool: one
//	           X-conjugated MCZ per marked value, no ancillas. Cost grows with
//	           the number of marked values and with 2^n evaluations.
//	Handwired  an in-place phase oracle for B = [[1,1,0],[0,1,1]] only. It
//	           exists so the generic construction can be checked against it.
//
// All three return diagonal ±1 operators, so every oracle is its own inverse.
//
// Decoder is not a phase oracle. It is the syndrome decoder used by the dqi
// package for the same fixed matrix: it maps |y⟩|Bᵀ·y⟩ to |0⟩|Bᵀ·y⟩ for
// every y of weight at most one.
//
// Every builder takes a layout circuit and returns a fresh circuit declaring
// the same registers, ready for circuit.AppendCircuit.
package oracle
