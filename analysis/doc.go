// Package analysis turns a final state vector into the ranked probability
// distribution over the solution register.
//
// What & Why:
//
//	Ancilla qubits are not of interest, and an oracle that does not fully
//	uncompute leaves them in several configurations. Analyze therefore sums
//	(never overwrites) the probability of every basis index into the
//	solution-register value it decodes to, using circuit.Register.Extract so
//	the bit layout matches the simulator exactly.
//
// Algorithm:
//
//	Stage 1: marginalize all 2^N probabilities onto 2^n solution values.
//	Stage 2: keep values with probability strictly above threshold (and > 0).
//	Stage 3: label each kept value with the classical verifier.
//	Stage 4: sort by probability descending, ties by value ascending.
//
// The threshold applies to aggregated mass, so a value spread thinly over
// many ancilla paths is still reported when its total clears the bar.
//
// Determinism:
//
//	The output depends only on the state, the register and the verifier.
//	Two calls on the same inputs return bit-for-bit equal distributions.
//
// Complexity:
//
//	O(2^N + 2^n·m + K log K) time for K kept entries, O(2^n) extra memory.
package analysis
