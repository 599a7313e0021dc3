package circuit

import (
	"fmt"
	"io"
	"strings"
)

// QASM header lines. stdgates.inc provides h, x, z, cx, cz and ccx.
const (
	qasmVersion = "OPENQASM 3.0;"
	qasmInclude = `include "stdgates.inc";`
)

// WriteQASM exports c as OpenQASM 3.0: one qubit array per register and one
// statement per gate. Gates with more controls than stdgates covers use the
// ctrl(k) @ modifier. Export only; nothing here executes the circuit.
func (c *Circuit) WriteQASM(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString(qasmVersion + "\n")
	sb.WriteString(qasmInclude + "\n\n")
	for _, r := range c.regs {
		fmt.Fprintf(&sb, "qubit[%d] %s;\n", r.Size, r.Name)
	}
	if len(c.regs) > 0 {
		sb.WriteString("\n")
	}
	for _, g := range c.gates {
		sb.WriteString(c.qasmStatement(g))
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// QASM returns the WriteQASM output as a string.
func (c *Circuit) QASM() string {
	var sb strings.Builder
	_ = c.WriteQASM(&sb)

	return sb.String()
}

func (c *Circuit) qasmStatement(g Gate) string {
	operands := make([]string, 0, g.NumControls()+1)
	for _, q := range g.Qubits() {
		operands = append(operands, c.qasmOperand(q))
	}
	args := strings.Join(operands, ", ")

	var op string
	switch {
	case g.NumControls() == 0:
		op = g.kind.String()
	case g.NumControls() == 1 && g.kind != KindH:
		op = "c" + g.kind.String()
	case g.NumControls() == 2 && g.kind == KindX:
		op = "ccx"
	default:
		op = fmt.Sprintf("ctrl(%d) @ %s", g.NumControls(), g.kind)
	}

	return op + " " + args + ";"
}

func (c *Circuit) qasmOperand(q Qubit) string {
	r, ok := c.registerOf(q)
	if !ok {
		return fmt.Sprintf("$%d", q)
	}

	return fmt.Sprintf("%s[%d]", r.Name, int(q)-r.Offset)
}
