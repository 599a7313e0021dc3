// Package dqi runs the decoded-quantum-interferometry circuit for the fixed
// system B = [[1,1,0],[0,1,1]].
//
// What & Why:
//
//	Where grover amplifies marked assignments, DQI reaches them by
//	interference. An error register y (m qubits) starts in the uniform
//	superposition of every weight ≤ 1 value; the solution register s
//	(n qubits) starts in |0…0⟩.
//
//	  1. Z on y[i] wherever v[i] = 1, so y picks up the phase (−1)^(v·y).
//	  2. s ← Bᵀ·y with one CNOT per 1-entry of B.
//	  3. oracle.Decoder clears y from its syndrome.
//	  4. H on every s qubit.
//
//	After step 3 the state is Σ_y (−1)^(v·y) |0⟩|Bᵀ·y⟩, and the Hadamard
//	transform turns it into amplitudes proportional to Σ_y (−1)^(v·y + x·Bᵀy),
//	which peak on the x with B·x = v.
//
// The decoder is derived by hand for the fixed matrix, so Build and Run
// reject every other system with oracle.ErrUnsupportedSystem.
package dqi
