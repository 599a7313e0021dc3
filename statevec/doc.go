// Package statevec executes circuit.Circuit values on a dense complex
// state vector.
//
// What & Why:
//
//	An N-qubit state is a []complex128 of length 2^N indexed with the bit
//	layout documented in package circuit (qubit q ↔ bit N-1-q). Simulate
//	allocates the vector once, applies every gate in order and hands the
//	final State to the caller, who owns it exclusively. No simulator state
//	outlives a call.
//
// Gate application:
//
//	For a gate with target bit t and control mask C, every basis index i with
//	bit t clear and i&C == C forms a pair (i, i|t) that is transformed by the
//	gate's 2×2 unitary; all other amplitudes are left untouched. Pairs are
//	enumerated through a compact index p ∈ [0, 2^(N-1)) by inserting a zero
//	at bit t, so the loop visits each pair exactly once. X and Z take fast
//	paths (swap, negate); H uses the general update.
//
// Parallelism:
//
//	WithWorkers(k) splits the pair index space into k contiguous chunks run
//	under an errgroup. Each pair lives in exactly one chunk, so chunks never
//	alias an amplitude. The split is used only from ParallelThreshold qubits
//	up; below that a single loop is faster.
//
// Normalization:
//
//	Every gate is unitary, so the total probability mass stays 1. Simulate
//	checks it once at the end (or after every gate with WithStepCheck) and
//	returns ErrNormalizationDrift when it leaves the tolerance band. The
//	state is never renormalized.
//
// Complexity:
//
//	Time O(G·2^N) for G gates, memory 16·2^N bytes.
package statevec
