// Package grover drives amplitude amplification for a GF(2) linear system.
//
// What & Why:
//
//	Run turns a gf2.Verifier into a circuit, simulates it and returns the
//	final state with the diagnostics needed to interpret it:
//
//	  1. declare "solution" (n qubits) and, for the syndrome oracle,
//	     "syndrome" (m qubits); H on every solution qubit.
//	  2. M = number of satisfying assignments, by brute force over 2^n.
//	  3. M = 0 → Result.NoSolution, no circuit is simulated.
//	  4. k = ⌊π/4 · √(2^n / M)⌋, 0 when the value is below 1.
//	  5. append k rounds of (oracle, diffusion).
//	  6. simulate.
//
// The brute-force count is the scaling limit of the approach: it costs
// O(2^n·m), the same order as the classical search the circuit replaces.
// Gaussian elimination (gf2.Reduce) cross-checks M and is reported in
// Result.Echelon.
//
// Oracles:
//
//	OracleSyndrome (default) is the generic construction and works for any
//	system. OraclePredicate uses the verifier as a truth table without
//	ancillas. OracleHandwired is the fixed decoder for B=[[1,1,0],[0,1,1]].
package grover
