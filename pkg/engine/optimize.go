// Package engine wires the graph, optimizer-graph, ILP, solver, and
// decoder packages into the single Optimize entry point.
package engine

import (
	"context"
	"os"
	"time"

	"github.com/matzehuels/lineorder/pkg/config"
	"github.com/matzehuels/lineorder/pkg/decoder"
	engerrors "github.com/matzehuels/lineorder/pkg/errors"
	"github.com/matzehuels/lineorder/pkg/geocross"
	"github.com/matzehuels/lineorder/pkg/graph"
	"github.com/matzehuels/lineorder/pkg/ilp"
	"github.com/matzehuels/lineorder/pkg/observability"
	"github.com/matzehuels/lineorder/pkg/optgraph"
	"github.com/matzehuels/lineorder/pkg/scorer"
	"github.com/matzehuels/lineorder/pkg/solver"
)

// Stats summarizes one Optimize run for logging and the "output_stats"
// config option.
type Stats struct {
	Nodes, Edges, MaxCardinality int
	Vars, Rows                   int
	SolveTimeMS                  int64
	Objective                    float64
	Optimal                      bool
}

// Optimize builds, solves, and decodes an ordering for g according to cfg.
// It never mutates g; the caller commits the returned OrderingConfig.
func Optimize(ctx context.Context, g *graph.Graph, sc scorer.Scorer, cfg config.Config) (decoder.OrderingConfig, Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, Stats{}, err
	}
	if sc == nil {
		sc = scorer.NewDefault()
	}

	og := optgraph.Build(g)
	if cfg.CreateCoreOptimGraph {
		og.Simplify()
	}
	gstats := og.ComputeStats()

	buildStart := time.Now()
	observability.Optimize().OnBuildStart(ctx, gstats.Nodes, gstats.Edges)
	builder := &ilp.Builder{Scorer: sc, Predicate: geocross.New()}
	problem, err := builder.Build(og, g)
	buildDur := time.Since(buildStart)
	varCount, rowCount := 0, 0
	if problem != nil {
		varCount, rowCount = len(problem.Cols), len(problem.Rows)
	}
	observability.Optimize().OnBuildComplete(ctx, varCount, rowCount, buildDur, err)
	if err != nil {
		return nil, Stats{}, err
	}

	if cfg.DotOutputPath != "" {
		if err := writeDot(og, g, cfg.DotOutputPath); err != nil {
			return nil, Stats{}, engerrors.Wrap(engerrors.ErrCodeIO, err, "writing dot dump to %s", cfg.DotOutputPath)
		}
	}
	if cfg.HumanReadableOutputPath != "" {
		if err := os.WriteFile(cfg.HumanReadableOutputPath, []byte(ilp.HumanReadable(problem)), 0o644); err != nil {
			return nil, Stats{}, engerrors.Wrap(engerrors.ErrCodeIO, err, "writing human-readable dump to %s", cfg.HumanReadableOutputPath)
		}
	}

	backendName := "glpk"
	if cfg.ExternalSolver != "" {
		backendName = "external+glpk"
	}
	solveStart := time.Now()
	observability.Optimize().OnSolveStart(ctx, backendName)
	result, err := solver.Solve(ctx, problem, solver.Config{
		ExternalCommand:     cfg.ExternalSolver,
		TimeLimitMS:         cfg.TimeLimit,
		PresolveTimeLimitMS: cfg.PresolveTimeLimit,
		UseFeasibilityPump:  cfg.UseFeasibilityPump,
		UseProximitySearch:  cfg.UseProximitySearch,
		MPSOutputPath:       cfg.MPSOutputPath,
		Logger:              cfg.Logger,
	})
	solveDur := time.Since(solveStart)
	if err != nil {
		observability.Optimize().OnSolveComplete(ctx, 0, false, solveDur, err)
		return nil, Stats{}, err
	}
	observability.Optimize().OnSolveComplete(ctx, result.Objective, result.Optimal(), solveDur, nil)

	stats := Stats{
		Nodes: gstats.Nodes, Edges: gstats.Edges, MaxCardinality: gstats.MaxCardinality,
		Vars: len(problem.Cols), Rows: len(problem.Rows),
		SolveTimeMS: solveDur.Milliseconds(),
		Objective:   result.Objective,
		Optimal:     result.Optimal(),
	}
	if !result.Optimal() {
		return nil, stats, engerrors.New(engerrors.ErrCodeSolverInfeasible, "solver did not return an optimal integer solution")
	}

	if cfg.SolutionOutputPath != "" {
		if err := solver.WriteSolution(cfg.SolutionOutputPath, result); err != nil {
			return nil, stats, engerrors.Wrap(engerrors.ErrCodeIO, err, "writing solution dump to %s", cfg.SolutionOutputPath)
		}
	}

	decodeStart := time.Now()
	ordering, err := decoder.Decode(og, g, result.Values)
	if err == nil {
		err = decoder.Expand(g, ordering)
	}
	decodeDur := time.Since(decodeStart)
	observability.Optimize().OnDecodeComplete(ctx, len(ordering), decodeDur, err)
	if err != nil {
		return nil, stats, err
	}

	return ordering, stats, nil
}
