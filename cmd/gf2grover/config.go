// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"unicode"

	"github.com/katalvlaran/gf2grover/analysis"
	"github.com/katalvlaran/gf2grover/grover"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://pkg.go.dev/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}

		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// SolveConfig drives one amplification run.
type SolveConfig struct {
	Problem    string  // problem file; empty → Matrix/Target or the built-in instance
	Matrix     string  // compact rows, e.g. "110,011"
	Target     string  // compact target, e.g. "00"
	Oracle     string  // syndrome | predicate | handwired
	Iterations int     // grover.AutoIterations for the optimal count
	Threshold  float64 // minimum aggregated probability to report
	Workers    int     // goroutines per gate from statevec.ParallelThreshold qubits; 0 = GOMAXPROCS
	StepCheck  bool    // normalization check after every gate
	Output     string  // table | json | yaml
	Chart      string  // optional HTML chart path
}

// LogConfig controls terminal logging.
type LogConfig struct {
	Verbosity  int    // 0=crit .. 5=trace
	File       string // rotated log file; empty → stderr
	MaxSizeMB  int
	MaxBackups int
}

type gf2groverConfig struct {
	Solve SolveConfig
	Log   LogConfig
}

func defaultConfig() gf2groverConfig {
	return gf2groverConfig{
		Solve: SolveConfig{
			Oracle:     grover.OracleSyndrome.String(),
			Iterations: grover.AutoIterations,
			Threshold:  analysis.DefaultThreshold,
			Workers:    1,
			Output:     "table",
		},
		Log: LogConfig{Verbosity: 3, MaxSizeMB: 100, MaxBackups: 3},
	}
}

func loadConfig(file string, cfg *gf2groverConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	var lineErr *toml.LineError
	if errors.As(err, &lineErr) {
		err = errors.New(file + ", " + err.Error())
	}

	return err
}

// migrateGlobalFlags copies flags given before the command name into the
// command's own flag set, so "gf2grover --oracle predicate solve" behaves
// like "gf2grover solve --oracle predicate".
func migrateGlobalFlags(ctx *cli.Context) {
	aliases := make(map[string]bool)
	if ctx.Command != nil {
		for _, fl := range ctx.Command.Flags {
			for _, alias := range fl.Names()[1:] {
				aliases[alias] = true
			}
		}
	}
	for _, name := range ctx.FlagNames() {
		if aliases[name] {
			continue
		}
		for _, parent := range ctx.Lineage()[1:] {
			if parent.IsSet(name) {
				_ = ctx.Set(name, parent.String(name))
				break
			}
		}
	}
}

// makeConfig layers defaults, the --config file and explicit flags, in that order.
func makeConfig(ctx *cli.Context) (gf2groverConfig, error) {
	migrateGlobalFlags(ctx)
	cfg := defaultConfig()
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
	}
	applyFlags(ctx, &cfg)

	return cfg, validateConfig(&cfg)
}

func applyFlags(ctx *cli.Context, cfg *gf2groverConfig) {
	s := &cfg.Solve
	if ctx.IsSet(problemFlag.Name) {
		s.Problem = ctx.String(problemFlag.Name)
	}
	if ctx.IsSet(matrixFlag.Name) {
		s.Matrix = ctx.String(matrixFlag.Name)
	}
	if ctx.IsSet(targetFlag.Name) {
		s.Target = ctx.String(targetFlag.Name)
	}
	if ctx.IsSet(oracleFlag.Name) {
		s.Oracle = ctx.String(oracleFlag.Name)
	}
	if ctx.IsSet(iterationsFlag.Name) {
		s.Iterations = ctx.Int(iterationsFlag.Name)
	}
	if ctx.IsSet(thresholdFlag.Name) {
		s.Threshold = ctx.Float64(thresholdFlag.Name)
	}
	if ctx.IsSet(workersFlag.Name) {
		s.Workers = ctx.Int(workersFlag.Name)
	}
	if ctx.IsSet(stepCheckFlag.Name) {
		s.StepCheck = ctx.Bool(stepCheckFlag.Name)
	}
	if ctx.IsSet(outputFlag.Name) {
		s.Output = ctx.String(outputFlag.Name)
	}
	if ctx.IsSet(chartFlag.Name) {
		s.Chart = ctx.String(chartFlag.Name)
	}
	if ctx.IsSet(verbosityFlag.Name) {
		cfg.Log.Verbosity = ctx.Int(verbosityFlag.Name)
	}
	if ctx.IsSet(logFileFlag.Name) {
		cfg.Log.File = ctx.String(logFileFlag.Name)
	}
}

func validateConfig(cfg *gf2groverConfig) error {
	s := cfg.Solve
	if _, err := grover.ParseOracleKind(s.Oracle); err != nil {
		return err
	}
	if s.Iterations < grover.AutoIterations {
		return fmt.Errorf("iterations %d: must be >= 0 or %d for auto", s.Iterations, grover.AutoIterations)
	}
	if err := analysis.ValidateThreshold(s.Threshold); err != nil {
		return err
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers %d: must be >= 0", s.Workers)
	}
	switch s.Output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("output %q: must be table, json or yaml", s.Output)
	}
	if s.Matrix != "" && s.Problem != "" {
		return errors.New("--problem and --matrix are mutually exclusive")
	}
	if (s.Matrix == "") != (s.Target == "") {
		return errors.New("--matrix and --target must be given together")
	}
	if cfg.Log.File != "" && (cfg.Log.MaxSizeMB < 1 || cfg.Log.MaxBackups < 0) {
		return fmt.Errorf("log rotation: size %dMB, backups %d", cfg.Log.MaxSizeMB, cfg.Log.MaxBackups)
	}

	return nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}

	dump := ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	_, err = io.WriteString(dump, string(out))

	return err
}
