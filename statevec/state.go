package statevec

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"
)

// State is a dense N-qubit state vector. A State returned by Simulate is
// owned by the caller; the package never retains a reference to it.
type State struct {
	n    int
	amps []complex128
}

func checkWidth(n int) error {
	if n <= 0 {
		return ErrNoQubits
	}
	if n > MaxQubits {
		return fmt.Errorf("%d qubits (max %d): %w", n, MaxQubits, ErrTooManyQubits)
	}

	return nil
}

// NewZero returns the n-qubit basis state |0…0⟩.
func NewZero(n int) (*State, error) {
	if err := checkWidth(n); err != nil {
		return nil, err
	}
	amps := make([]complex128, 1<<uint(n))
	amps[0] = 1

	return &State{n: n, amps: amps}, nil
}

// NewUniform returns the equal superposition over all 2^n basis states.
func NewUniform(n int) (*State, error) {
	if err := checkWidth(n); err != nil {
		return nil, err
	}
	size := 1 << uint(n)
	a := complex(1/math.Sqrt(float64(size)), 0)
	amps := make([]complex128, size)
	for i := range amps {
		amps[i] = a
	}

	return &State{n: n, amps: amps}, nil
}

// FromAmplitudes builds a state from a copy of amps. The length must be a
// power of two ≥ 2 and the squared norm within DefaultTolerance of 1.
func FromAmplitudes(amps []complex128) (*State, error) {
	size := len(amps)
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("FromAmplitudes(len=%d): %w", size, ErrNotPowerOfTwo)
	}
	n := bits.TrailingZeros(uint(size))
	if err := checkWidth(n); err != nil {
		return nil, err
	}
	s := &State{n: n, amps: make([]complex128, size)}
	copy(s.amps, amps)
	if norm := s.Norm(); math.Abs(norm-1) > DefaultTolerance {
		return nil, fmt.Errorf("FromAmplitudes: norm %.12f: %w", norm, ErrNotNormalized)
	}

	return s, nil
}

// Qubits returns N.
func (s *State) Qubits() int { return s.n }

// Len returns 2^N.
func (s *State) Len() int { return len(s.amps) }

// Amplitude returns the amplitude of basis state i.
func (s *State) Amplitude(i uint64) (complex128, error) {
	if i >= uint64(len(s.amps)) {
		return 0, fmt.Errorf("Amplitude(%d): %w", i, ErrIndexOutOfRange)
	}

	return s.amps[i], nil
}

// Amplitudes returns a copy of the amplitude vector.
func (s *State) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)

	return out
}

// Probability returns |a_i|².
func (s *State) Probability(i uint64) (float64, error) {
	a, err := s.Amplitude(i)
	if err != nil {
		return 0, err
	}

	return sqAbs(a), nil
}

// Probabilities returns |a_i|² for every basis state.
func (s *State) Probabilities() []float64 {
	out := make([]float64, len(s.amps))
	for i, a := range s.amps {
		out[i] = sqAbs(a)
	}

	return out
}

// ForEachProbability calls fn(i, |a_i|²) in ascending index order without
// allocating a probability slice.
func (s *State) ForEachProbability(fn func(i uint64, p float64)) {
	for i, a := range s.amps {
		fn(uint64(i), sqAbs(a))
	}
}

// Norm returns the total probability mass Σ|a_i|².
func (s *State) Norm() float64 {
	var sum float64
	for _, a := range s.amps {
		sum += sqAbs(a)
	}

	return sum
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	return &State{n: s.n, amps: s.Amplitudes()}
}

// EqualUpToGlobalPhase reports whether o = e^{iφ}·s for some φ, with every
// amplitude within eps. States of different widths are never equal.
//
// Stage 1: pick the largest amplitude of s as the phase reference.
// Stage 2: derive the phase from o at that index; it must have modulus 1.
// Stage 3: compare every amplitude after rotation.
func (s *State) EqualUpToGlobalPhase(o *State, eps float64) bool {
	if o == nil || s.n != o.n {
		return false
	}
	ref, best := 0, -1.0
	for i, a := range s.amps {
		if m := sqAbs(a); m > best {
			ref, best = i, m
		}
	}
	if best == 0 {
		return o.Norm() <= eps
	}
	phase := o.amps[ref] / s.amps[ref]
	if math.Abs(cmplx.Abs(phase)-1) > eps {
		return false
	}
	for i, a := range s.amps {
		if cmplx.Abs(o.amps[i]-phase*a) > eps {
			return false
		}
	}

	return true
}

func sqAbs(a complex128) float64 {
	return real(a)*real(a) + imag(a)*imag(a)
}
