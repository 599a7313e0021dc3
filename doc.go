// Package gf2grover solves linear systems over GF(2) with Grover amplitude
// amplification on a classical state-vector simulator.
//
// 🚀 What is gf2grover?
//
//	Given a binary matrix B (m×n) and a target v, find every x ∈ {0,1}ⁿ
//	with B·x = v (mod 2). The search is expressed as a quantum circuit,
//	simulated exactly, and the measurement distribution is read back:
//		• gf2/         systems, verifier, Gaussian elimination, bit helpers
//		• circuit/     named qubit registers, H/X/Z gates with controls, QASM export
//		• statevec/    dense []complex128 simulator with optional parallel kernels
//		• oracle/      phase oracles: syndrome (generic), predicate, handwired; DQI decoder
//		• dqi/         decoded quantum interferometry for the fixed 2×3 system
//		• diffusion/   inversion about the mean on one register
//		• grover/      iteration count, circuit composition, Run
//		• analysis/    marginal distribution over the solution register
//		• problem/     TOML / YAML / JSON problem files
//		• report/      console table, JSON/YAML summary, HTML chart
//
// Quick example (x₀⊕x₁ = 0, x₁⊕x₂ = 0):
//
//	sys, _ := gf2.NewSystem([][]bool{{true, true, false}, {false, true, true}}, []bool{false, false})
//	v, _ := gf2.NewVerifier(sys)
//	res, _ := grover.Run(v)
//	d, _ := res.Distribution()
//	// d.Entries: 000 and 111, ~50% each after one round.
//
// The command-line front end lives in cmd/gf2grover:
//
//	go install github.com/katalvlaran/gf2grover/cmd/gf2grover@latest
//	gf2grover --matrix 110,011 --target 00
package gf2grover
