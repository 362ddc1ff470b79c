// Package config defines the Config struct the core Optimize entry point
// consumes. The core never parses flags or files itself; loading a TOML
// file into this struct is the CLI's job (see cmd/lineorder).
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config controls one Optimize run.
type Config struct {
	// CreateCoreOptimGraph runs the simplification pass that collapses
	// degree-2 chains with identical route sets before building the ILP.
	CreateCoreOptimGraph bool `toml:"create_core_optim_graph"`

	// ExternalSolver is a command template substituting {INPUT}, {OUTPUT},
	// {THREADS}; empty disables external pre-solve.
	ExternalSolver string `toml:"external_solver"`

	// MPSOutputPath, HumanReadableOutputPath, SolutionOutputPath are
	// optional debug dump paths; empty disables the corresponding dump.
	MPSOutputPath           string `toml:"mps_output_path"`
	HumanReadableOutputPath string `toml:"human_readable_output_path"`
	SolutionOutputPath      string `toml:"solution_output_path"`

	// DotOutputPath, when non-empty, writes a Graphviz dump of the
	// optimizer graph's decision-variable topology.
	DotOutputPath string `toml:"dot_output_path"`

	// TimeLimit and PresolveTimeLimit are in milliseconds; zero means no
	// limit.
	TimeLimit         int `toml:"time_limit_ms"`
	PresolveTimeLimit int `toml:"presolve_time_limit_ms"`

	// UseFeasibilityPump and UseProximitySearch are ignored when
	// ExternalSolver is set.
	UseFeasibilityPump bool `toml:"use_feasibility_pump"`
	UseProximitySearch bool `toml:"use_proximity_search"`

	// OutputStats enables logging of node/edge/variable/row counts and
	// solve timings.
	OutputStats bool `toml:"output_stats"`

	// Logger receives warnings about non-fatal failures during the run
	// (e.g. a failed external pre-solve). It is set by the caller, not
	// loaded from a config file, and may be left nil.
	Logger *log.Logger `toml:"-"`
}

// Default returns the configuration the reference implementation shipped:
// simplification on, no external solver, no dumps, no time limits.
func Default() Config {
	return Config{CreateCoreOptimGraph: true}
}

// Load reads and parses a TOML config file at path into a copy of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
