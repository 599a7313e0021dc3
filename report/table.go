// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

const (
	markSolution = "✔"
	markWrong    = "✘"
)

// TableOption configures WriteTable.
type TableOption func(*tableOptions)

type tableOptions struct {
	color bool
}

// WithColor turns ANSI colouring of the verdict markers on or off.
// Off by default so redirected output stays plain.
func WithColor(on bool) TableOption {
	return func(o *tableOptions) { o.color = on }
}

// WriteTable prints one row per distribution entry (bitstring, percentage
// with two decimals, verdict marker) followed by the diagnostic triple.
// A run without solutions prints an explicit notice instead of the table.
func WriteTable(w io.Writer, s *Summary, opts ...TableOption) error {
	var o tableOptions
	for _, opt := range opts {
		opt(&o)
	}
	good, bad := color.New(color.FgGreen, color.Bold), color.New(color.FgRed)
	if o.color {
		good.EnableColor()
		bad.EnableColor()
	} else {
		good.DisableColor()
		bad.DisableColor()
	}

	if s.NoSolution {
		_, err := fmt.Fprintf(w, "No assignment satisfies the system; amplification skipped.\n%s\n", s.Triple())

		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"x", "Probability", "Solution"})
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_CENTER})
	if s.Distribution != nil {
		for _, e := range s.Distribution.Entries {
			mark := bad.Sprint(markWrong)
			if e.Satisfies {
				mark = good.Sprint(markSolution)
			}
			table.Append([]string{e.Bitstring, fmt.Sprintf("%.2f%%", e.Probability*100), mark})
		}
		table.SetFooter([]string{"", fmt.Sprintf("%.2f%%", s.Distribution.SolutionMass*100), "mass"})
	}
	table.Render()

	_, err := fmt.Fprintf(w, "%s  oracle=%s qubits=%d gates=%d\n", s.Triple(), s.Oracle, s.Qubits, s.Gates)

	return err
}
