// SPDX-License-Identifier: MIT

// gf2grover solves B·x = v over GF(2) by simulated Grover amplification.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/ethereum/go-ethereum/log"
	"github.com/katalvlaran/gf2grover/analysis"
	"github.com/katalvlaran/gf2grover/gf2"
	"github.com/katalvlaran/gf2grover/grover"
	"github.com/katalvlaran/gf2grover/problem"
	"github.com/katalvlaran/gf2grover/report"
	"github.com/katalvlaran/gf2grover/statevec"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	gopsutil "github.com/shirou/gopsutil/mem"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	// Automatically set GOMAXPROCS to match Linux container CPU quota.
	_ "go.uber.org/automaxprocs"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	problemFlag = &cli.StringFlag{
		Name:    "problem",
		Aliases: []string{"p"},
		Usage:   "problem file (.toml, .yaml, .yml, .json)",
	}
	matrixFlag = &cli.StringFlag{
		Name:    "matrix",
		Aliases: []string{"B"},
		Usage:   `matrix rows as bitstrings, e.g. "110,011"`,
	}
	targetFlag = &cli.StringFlag{
		Name:    "target",
		Aliases: []string{"v"},
		Usage:   `target vector as a bitstring, e.g. "00"`,
	}
	oracleFlag = &cli.StringFlag{
		Name:  "oracle",
		Usage: "oracle construction: syndrome, predicate or handwired",
		Value: grover.OracleSyndrome.String(),
	}
	iterationsFlag = &cli.IntFlag{
		Name:  "iterations",
		Usage: "amplification rounds (-1 = optimal)",
		Value: grover.AutoIterations,
	}
	thresholdFlag = &cli.Float64Flag{
		Name:  "threshold",
		Usage: "minimum aggregated probability to report",
		Value: analysis.DefaultThreshold,
	}
	workersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: fmt.Sprintf("goroutines per gate for circuits of %d+ qubits (0 = GOMAXPROCS)", statevec.ParallelThreshold),
		Value: 1,
	}
	stepCheckFlag = &cli.BoolFlag{
		Name:  "step-check",
		Usage: "check normalization after every gate",
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "result format: table, json or yaml",
		Value:   "table",
	}
	chartFlag = &cli.StringFlag{
		Name:  "chart",
		Usage: "write an HTML bar chart of the distribution to this path",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: 3,
	}
	logFileFlag = &cli.StringFlag{
		Name:  "log.file",
		Usage: "write logs to a size-rotated file instead of stderr",
	}

	solveFlags = []cli.Flag{
		configFileFlag, problemFlag, matrixFlag, targetFlag, oracleFlag, iterationsFlag,
		thresholdFlag, workersFlag, stepCheckFlag, outputFlag, chartFlag, verbosityFlag, logFileFlag,
	}
)

// chain3 is the instance used when no problem is given: x₀⊕x₁ = 0, x₁⊕x₂ = 0.
var chain3 = &problem.File{Name: "chain3", Matrix: [][]int{{1, 1, 0}, {0, 1, 1}}, Target: []int{0, 0}}

func newApp() *cli.App {
	return &cli.App{
		Name:   "gf2grover",
		Usage:  "solve B·x = v over GF(2) with simulated Grover amplification",
		Flags:  solveFlags,
		Action: solve,
		Commands: []*cli.Command{
			{
				Name:   "solve",
				Usage:  "amplify, simulate and report the measurement distribution",
				Flags:  solveFlags,
				Action: solve,
			},
			{
				Name:   "circuit",
				Usage:  "print the composed circuit as OpenQASM 3.0",
				Flags:  solveFlags,
				Action: printCircuit,
			},
			{
				Name:      "dumpconfig",
				Usage:     "print the effective configuration as TOML",
				Flags:     solveFlags,
				Action:    dumpConfig,
				ArgsUsage: "[file]",
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging installs a terminal handler on stderr, coloured when stderr
// is a terminal, or on a rotated file when cfg.File is set.
func setupLogging(cfg LogConfig) {
	var (
		output   io.Writer = os.Stderr
		useColor           = (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb"
	)
	switch {
	case cfg.File != "":
		output, useColor = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}, false
	case useColor:
		output = colorable.NewColorableStderr()
	}
	handler := log.NewTerminalHandlerWithLevel(output, log.FromLegacyLevel(cfg.Verbosity), useColor)
	log.SetDefault(log.NewLogger(handler))
}

// checkMemory warns when the state vector would not fit in available memory.
func checkMemory(qubits int) {
	need := uint64(16) << uint(qubits)
	mem, err := gopsutil.VirtualMemory()
	if err != nil {
		log.Debug("Failed to query memory", "err", err)
		return
	}
	if need > mem.Available {
		log.Warn("State vector exceeds available memory", "qubits", qubits,
			"need", need, "available", mem.Available)
	}
}

// stdoutIsTerminal decides whether the result table gets ANSI colours.
func stdoutIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// loadSystem resolves the problem: file, compact flags, or the built-in instance.
func loadSystem(cfg SolveConfig) (string, *gf2.System, error) {
	switch {
	case cfg.Problem != "":
		f, err := problem.Load(cfg.Problem)
		if err != nil {
			return "", nil, err
		}
		sys, err := f.System()

		return f.Name, sys, err
	case cfg.Matrix != "":
		sys, err := problem.Parse(cfg.Matrix, cfg.Target)

		return "cli", sys, err
	default:
		sys, err := chain3.System()

		return chain3.Name, sys, err
	}
}

func groverOptions(cfg SolveConfig) []grover.Option {
	kind, _ := grover.ParseOracleKind(cfg.Oracle)
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	opts := []grover.Option{
		grover.WithOracle(kind),
		grover.WithSimulatorOptions(statevec.WithWorkers(workers), statevec.WithStepCheck(cfg.StepCheck)),
	}
	if cfg.Iterations != grover.AutoIterations {
		opts = append(opts, grover.WithIterations(cfg.Iterations))
	}

	return opts
}

// prepare builds the config, logging and verifier shared by every command.
func prepare(ctx *cli.Context) (gf2groverConfig, string, *gf2.Verifier, error) {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return cfg, "", nil, err
	}
	setupLogging(cfg.Log)

	name, sys, err := loadSystem(cfg.Solve)
	if err != nil {
		return cfg, "", nil, err
	}
	v, err := gf2.NewVerifier(sys)

	return cfg, name, v, err
}

// solve is the default command.
func solve(ctx *cli.Context) error {
	cfg, name, v, err := prepare(ctx)
	if err != nil {
		return err
	}
	log.Info("Solving system", "problem", name, "equations", v.System().Rows(), "variables", v.Width(), "oracle", cfg.Solve.Oracle)
	kind, _ := grover.ParseOracleKind(cfg.Solve.Oracle)
	checkMemory(grover.Qubits(v.System(), kind))

	res, err := grover.Run(v, groverOptions(cfg.Solve)...)
	if err != nil {
		return err
	}
	d, err := res.Distribution(analysis.WithThreshold(cfg.Solve.Threshold))
	if err != nil {
		return err
	}
	summary := report.NewSummary(name, res, d)
	log.Info("Amplification finished", "run", summary.RunID, "solutions", res.Solutions, "iterations", res.Iterations, "mass", d.SolutionMass)

	if cfg.Solve.Chart != "" {
		if err := writeChart(cfg.Solve.Chart, summary); err != nil {
			return err
		}
		log.Info("Wrote chart", "path", cfg.Solve.Chart)
	}

	out := ctx.App.Writer
	if cfg.Solve.Output == "table" {
		return report.WriteTable(out, summary, report.WithColor(stdoutIsTerminal(out)))
	}
	format, err := problem.ParseFormat(cfg.Solve.Output)
	if err != nil {
		return err
	}

	return report.Encode(out, summary, format)
}

func writeChart(path string, s *report.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteChart(f, s); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// printCircuit writes the composed circuit as OpenQASM.
func printCircuit(ctx *cli.Context) error {
	cfg, _, v, err := prepare(ctx)
	if err != nil {
		return err
	}
	k := cfg.Solve.Iterations
	if k == grover.AutoIterations {
		k = grover.OptimalIterations(v.Candidates(), v.Count())
	}
	c, err := grover.BuildCircuit(v, k, groverOptions(cfg.Solve)...)
	if err != nil {
		return err
	}
	log.Debug("Built circuit", "iterations", k, "qubits", c.QubitCount(), "gates", c.Len())

	return c.WriteQASM(ctx.App.Writer)
}
