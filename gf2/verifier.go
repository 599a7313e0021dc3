package gf2

import (
	"fmt"
	"math/bits"
)

// Verifier decides whether an assignment satisfies a System.
// It is a pure function of the system; safe for concurrent use.
type Verifier struct {
	sys *System
}

// NewVerifier binds a verifier to sys.
func NewVerifier(sys *System) (*Verifier, error) {
	if sys == nil {
		return nil, fmt.Errorf("NewVerifier: %w", ErrNilSystem)
	}

	return &Verifier{sys: sys}, nil
}

// System returns the verified system.
func (v *Verifier) System() *System { return v.sys }

// Width returns n, the assignment width in bits.
func (v *Verifier) Width() int { return v.sys.n }

// Candidates returns 2ⁿ, the size of the assignment space.
func (v *Verifier) Candidates() uint64 { return uint64(1) << uint(v.sys.n) }

// Satisfies reports whether (B·x) mod 2 == v.
// Only the n low bits of x are read.
// Complexity: O(m) word operations.
func (v *Verifier) Satisfies(x uint64) bool {
	x &= lowMask(v.sys.n)
	for i, row := range v.sys.rows {
		parity := bits.OnesCount64(row&x)&1 == 1
		if parity != v.sys.target[i] {
			return false
		}
	}

	return true
}

// SatisfiesBits is Satisfies for a bool assignment, x₀ first.
func (v *Verifier) SatisfiesBits(x []bool) (bool, error) {
	if len(x) != v.sys.n {
		return false, fmt.Errorf("SatisfiesBits: len %d, want %d: %w", len(x), v.sys.n, ErrDimensionMismatch)
	}

	return v.Satisfies(Pack(x)), nil
}

// Enumerate returns every satisfying assignment in ascending order by
// brute force over all 2ⁿ candidates.
func (v *Verifier) Enumerate() []uint64 {
	var out []uint64
	for x := uint64(0); x < v.Candidates(); x++ {
		if v.Satisfies(x) {
			out = append(out, x)
		}
	}

	return out
}

// Count returns M, the number of satisfying assignments (brute force).
func (v *Verifier) Count() int {
	var m int
	for x := uint64(0); x < v.Candidates(); x++ {
		if v.Satisfies(x) {
			m++
		}
	}

	return m
}

// Predicate adapts the verifier to a plain boolean predicate.
func (v *Verifier) Predicate() func(uint64) bool {
	return v.Satisfies
}
