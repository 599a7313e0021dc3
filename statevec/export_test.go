// SPDX-License-Identifier: MIT

package statevec

// Test bridge: lets statevec_test build states that bypass FromAmplitudes
// validation, so drift detection can be exercised without a non-unitary gate.

// NewUncheckedTestOnly wraps amps (not copied) as an n-qubit state.
func NewUncheckedTestOnly(n int, amps []complex128) *State {
	return &State{n: n, amps: amps}
}
