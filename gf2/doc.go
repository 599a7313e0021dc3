// Package gf2 models linear systems B·x ≡ v (mod 2) and their classical verifier.
//
// What & Why:
//
//	A System is the immutable problem definition: an m×n coefficient matrix
//	over GF(2) and a target vector of length m. A Verifier evaluates candidate
//	assignments against it. Both are pure data/functions with no knowledge of
//	qubits or amplitudes; the oracle builder reads the matrix's 1-entries to
//	wire its syndrome register, and the result analyzer labels measured values
//	with the verifier's verdict.
//
// Assignment convention:
//
//	An n-bit assignment is a uint64 whose most significant of the n low bits
//	is x₀. The bitstring of x is therefore "x₀x₁…xₙ₋₁", e.g. for n=3 the value
//	0b100 assigns x₀=1, x₁=0, x₂=0. The circuit bit layout uses the same
//	MSB-first order, so a solution-register value read from a state vector IS
//	the assignment.
//
// Arithmetic:
//
//	Addition is XOR and multiplication is AND. Row i of B is stored as a bit
//	mask, so (B·x)ᵢ is the parity of popcount(rowᵢ & x).
//
// Complexity:
//
//	Satisfies: O(m) word operations (O(m·n) bit operations).
//	Enumerate/Count: O(2ⁿ·m).
//	Reduce (Gaussian elimination): O(m·n) word operations.
package gf2
