// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gf2grover/circuit"
	"github.com/katalvlaran/gf2grover/gf2"
	"github.com/katalvlaran/gf2grover/statevec"
)

// Entry is one solution-register value with its aggregated probability.
type Entry struct {
	Value       uint64  `json:"value" yaml:"value"`
	Bitstring   string  `json:"bitstring" yaml:"bitstring"`
	Probability float64 `json:"probability" yaml:"probability"`
	Satisfies   bool    `json:"satisfies" yaml:"satisfies"`
}

// Distribution is the ranked, thresholded marginal over the solution register.
// Consumers must treat it as read-only.
type Distribution struct {
	Entries      []Entry `json:"entries" yaml:"entries"`
	Width        int     `json:"width" yaml:"width"`
	Threshold    float64 `json:"threshold" yaml:"threshold"`
	Mass         float64 `json:"mass" yaml:"mass"`                   // sum over Entries
	SolutionMass float64 `json:"solution_mass" yaml:"solution_mass"` // sum over satisfying Entries
}

// Empty returns the distribution reported when no assignment satisfies the
// system: no entries, zero mass.
func Empty(width int, opts ...Option) *Distribution {
	o := gatherOptions(opts...)

	return &Distribution{Entries: []Entry{}, Width: width, Threshold: o.threshold}
}

// Analyze marginalizes s onto reg, thresholds, labels with v and ranks.
//
// Errors: ErrNilState, ErrNilVerifier, ErrRegisterOutOfRange, ErrWidthMismatch.
func Analyze(s *statevec.State, reg circuit.Register, v *gf2.Verifier, opts ...Option) (*Distribution, error) {
	if s == nil {
		return nil, ErrNilState
	}
	if v == nil {
		return nil, ErrNilVerifier
	}
	n := s.Qubits()
	if reg.Offset < 0 || reg.Size <= 0 || reg.End() > n {
		return nil, fmt.Errorf("Analyze(%s) on %d qubits: %w", reg, n, ErrRegisterOutOfRange)
	}
	if reg.Size != v.Width() {
		return nil, fmt.Errorf("Analyze(%s): verifier width %d: %w", reg, v.Width(), ErrWidthMismatch)
	}
	o := gatherOptions(opts...)

	// Stage 1: marginalize
	marginal := make([]float64, 1<<uint(reg.Size))
	s.ForEachProbability(func(i uint64, p float64) {
		marginal[reg.Extract(i, n)] += p
	})

	// Stage 2-3: threshold and label
	d := &Distribution{Entries: []Entry{}, Width: reg.Size, Threshold: o.threshold}
	for value, p := range marginal {
		if p <= 0 || p <= o.threshold {
			continue
		}
		x := uint64(value)
		e := Entry{
			Value:       x,
			Bitstring:   gf2.Bitstring(x, reg.Size),
			Probability: p,
			Satisfies:   v.Satisfies(x),
		}
		d.Entries = append(d.Entries, e)
	}

	// Stage 4: rank
	sort.Slice(d.Entries, func(i, j int) bool {
		a, b := d.Entries[i], d.Entries[j]
		if a.Probability != b.Probability {
			return a.Probability > b.Probability
		}

		return a.Value < b.Value
	})
	for _, e := range d.Entries {
		d.Mass += e.Probability
		if e.Satisfies {
			d.SolutionMass += e.Probability
		}
	}

	return d, nil
}

// Len returns the number of entries.
func (d *Distribution) Len() int { return len(d.Entries) }

// Top returns up to k leading entries (a copy).
func (d *Distribution) Top(k int) []Entry {
	if k > len(d.Entries) {
		k = len(d.Entries)
	}
	if k < 0 {
		k = 0
	}
	out := make([]Entry, k)
	copy(out, d.Entries[:k])

	return out
}

// Lookup returns the entry for value, if it cleared the threshold.
func (d *Distribution) Lookup(value uint64) (Entry, bool) {
	for _, e := range d.Entries {
		if e.Value == value {
			return e, true
		}
	}

	return Entry{}, false
}

// Solutions returns the entries the verifier accepts, in rank order.
func (d *Distribution) Solutions() []Entry {
	var out []Entry
	for _, e := range d.Entries {
		if e.Satisfies {
			out = append(out, e)
		}
	}

	return out
}
