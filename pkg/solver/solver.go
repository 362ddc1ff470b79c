package solver

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/lukpank/go-glpk/glpk"

	ilperrors "github.com/matzehuels/lineorder/pkg/errors"
	"github.com/matzehuels/lineorder/pkg/ilp"
)

// Status reports how a solve concluded.
type Status int

const (
	// StatusOptimal means the backend proved an optimal integer solution.
	StatusOptimal Status = iota
	// StatusInfeasible means the backend proved the model infeasible or
	// unbounded.
	StatusInfeasible
	// StatusTimeLimit means the backend hit its time limit without proving
	// optimality or infeasibility.
	StatusTimeLimit
)

// Result is the outcome of one solve: the value of every column by name,
// the objective value, and the terminal status.
type Result struct {
	Values    map[string]float64
	Objective float64
	Status    Status
}

// Optimal reports whether r represents a proven-optimal integer solution.
func (r *Result) Optimal() bool { return r.Status == StatusOptimal }

// Config configures one solve call.
type Config struct {
	// ExternalCommand, when non-empty, is a command template substituting
	// {INPUT}, {OUTPUT}, {THREADS}; the driver pre-solves with it before
	// confirming in-process.
	ExternalCommand string
	// TimeLimitMS bounds the in-process solve.
	TimeLimitMS int
	// PresolveTimeLimitMS bounds GLPK's own presolve phase.
	PresolveTimeLimitMS int
	// UseFeasibilityPump and UseProximitySearch are ignored when
	// ExternalCommand is set.
	UseFeasibilityPump  bool
	UseProximitySearch  bool
	// MPSOutputPath, when non-empty, is where the model is dumped as MPS
	// before solving, regardless of whether ExternalCommand is set.
	MPSOutputPath string
	// Logger receives a warning when the external pre-solve fails and the
	// driver falls through to an unfixed in-process solve. May be nil, in
	// which case the failure is silently swallowed.
	Logger *log.Logger
}

// Solve loads p into a fresh GLPK model, optionally pre-solves it with an
// external command, and runs the in-process MIP solver to produce a Result.
// The model is freed on every exit path.
func Solve(ctx context.Context, p *ilp.Problem, cfg Config) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prob := glpk.New()
	defer prob.Delete()

	prob.SetObjDir(glpk.MIN)
	loadProblem(prob, p)

	if cfg.MPSOutputPath != "" {
		if err := prob.WriteMPS(glpk.MPS_FILE, nil, cfg.MPSOutputPath); err != nil {
			return nil, ilperrors.Wrap(ilperrors.ErrCodeIO, err, "writing MPS to %s", cfg.MPSOutputPath)
		}
	}

	if cfg.ExternalCommand != "" {
		if err := preSolveExternal(ctx, prob, p, cfg); err != nil {
			// Non-fatal: fall through to an unfixed in-process solve.
			if cfg.Logger != nil {
				cfg.Logger.Warnf("external presolve failed: %v", err)
			}
		}
	}

	return runIntopt(prob, p, cfg)
}

// loadProblem bulk-loads every column, row, and matrix coefficient of p
// into prob.
func loadProblem(prob *glpk.Prob, p *ilp.Problem) {
	prob.AddCols(len(p.Cols))
	for i, col := range p.Cols {
		j := i + 1
		prob.SetColKind(j, glpk.BV)
		prob.SetObjCoef(j, col.Obj)
	}

	prob.AddRows(len(p.Rows))
	for i, row := range p.Rows {
		r := i + 1
		switch row.Kind {
		case ilp.RowEqual:
			prob.SetRowBnds(r, glpk.FX, row.Bound, row.Bound)
		case ilp.RowUpperBound:
			prob.SetRowBnds(r, glpk.UP, 0, row.Bound)
		}
		cols, vals := p.Matrix.RowEntries(int32(r))
		setMatRow(prob, r, cols, vals)
	}
}

// setMatRow loads one sparse row, mirroring GLPK's 1-indexed ind/val
// convention: index and value 0 are unused padding.
func setMatRow(prob *glpk.Prob, row int, cols []int32, vals []float64) {
	ind := make([]int32, len(cols)+1)
	val := make([]float64, len(vals)+1)
	for i, c := range cols {
		ind[i+1] = c
		val[i+1] = vals[i]
	}
	prob.SetMatRow(row, ind, val)
}

// runIntopt runs the branch-and-cut solver on the already-loaded prob and
// extracts a Result.
func runIntopt(prob *glpk.Prob, p *ilp.Problem, cfg Config) (*Result, error) {
	iocp := glpk.NewIocp()
	iocp.SetPresolve(true)
	iocp.SetBinarize(true)
	iocp.SetMsgLev(glpk.MSG_OFF)
	if cfg.TimeLimitMS > 0 {
		iocp.SetTmLim(cfg.TimeLimitMS)
	}
	if cfg.PresolveTimeLimitMS > 0 {
		iocp.SetPsTmLim(cfg.PresolveTimeLimitMS)
	}
	if cfg.ExternalCommand == "" {
		iocp.SetFPHeur(cfg.UseFeasibilityPump)
		iocp.SetPSHeur(cfg.UseProximitySearch)
	}

	if err := prob.Intopt(iocp); err != nil {
		return nil, ilperrors.Wrap(ilperrors.ErrCodeSolver, err, "intopt failed")
	}

	switch prob.MipStatus() {
	case glpk.OPT:
		// fall through to value extraction below
	case glpk.INFEAS, glpk.NOFEAS, glpk.UNBND:
		return &Result{Status: StatusInfeasible}, nil
	default:
		return &Result{Status: StatusTimeLimit}, nil
	}

	values := make(map[string]float64, len(p.Cols))
	for i, col := range p.Cols {
		values[col.Name] = prob.MipColVal(i + 1)
	}

	return &Result{
		Values:    values,
		Objective: prob.MipObjVal(),
		Status:    StatusOptimal,
	}, nil
}
