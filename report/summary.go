package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/gf2grover/analysis"
	"github.com/katalvlaran/gf2grover/grover"
	"github.com/katalvlaran/gf2grover/problem"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat indicates an export format Encode cannot write.
var ErrUnsupportedFormat = errors.New("report: unsupported export format")

// Summary bundles everything a presentation layer needs from one run.
type Summary struct {
	RunID      string    `json:"run_id" yaml:"run_id"`
	Problem    string    `json:"problem" yaml:"problem"`
	System     string    `json:"system" yaml:"system"`
	Oracle     string    `json:"oracle" yaml:"oracle"`
	Solutions  int       `json:"solutions" yaml:"solutions"`   // M
	States     uint64    `json:"states" yaml:"states"`         // N = 2^n
	Iterations int       `json:"iterations" yaml:"iterations"` // k
	NoSolution bool      `json:"no_solution" yaml:"no_solution"`
	Qubits     int       `json:"qubits" yaml:"qubits"`
	Gates      int       `json:"gates" yaml:"gates"`
	Created    time.Time `json:"created" yaml:"created"`

	Distribution *analysis.Distribution `json:"distribution" yaml:"distribution"`
}

// NewSummary assembles a Summary with a fresh run ID.
func NewSummary(name string, res *grover.Result, d *analysis.Distribution) *Summary {
	s := &Summary{
		RunID:        uuid.NewString(),
		Problem:      name,
		System:       res.Verifier.System().String(),
		Oracle:       res.Oracle.String(),
		Solutions:    res.Solutions,
		States:       res.States,
		Iterations:   res.Iterations,
		NoSolution:   res.NoSolution,
		Created:      time.Now().UTC(),
		Distribution: d,
	}
	if res.Circuit != nil {
		s.Qubits = res.Circuit.QubitCount()
		s.Gates = res.Circuit.Len()
	}

	return s
}

// Triple formats the diagnostic triple as "M=2 N=8 k=1".
func (s *Summary) Triple() string {
	return fmt.Sprintf("M=%d N=%d k=%d", s.Solutions, s.States, s.Iterations)
}

// Encode writes s as JSON or YAML.
func Encode(w io.Writer, s *Summary, format problem.Format) error {
	switch format {
	case problem.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(s)
	case problem.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("Encode: %s: %w", format, ErrUnsupportedFormat)
	}
}
