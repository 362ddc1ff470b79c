package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// loggingOptimizeHooks reports build/solve/decode phase timings through a
// *log.Logger, the same way progress reports a command's overall elapsed
// time: a short phase description followed by the rounded duration.
type loggingOptimizeHooks struct {
	logger *log.Logger
}

func (h loggingOptimizeHooks) OnBuildStart(_ context.Context, nodes, edges int) {
	h.logger.Debugf("building ILP (nodes=%d edges=%d)", nodes, edges)
}

func (h loggingOptimizeHooks) OnBuildComplete(_ context.Context, vars, rows int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warnf("build failed (%s): %v", d.Round(time.Millisecond), err)
		return
	}
	h.logger.Infof("built ILP (vars=%d rows=%d) (%s)", vars, rows, d.Round(time.Millisecond))
}

func (h loggingOptimizeHooks) OnSolveStart(_ context.Context, backend string) {
	h.logger.Debugf("solving with %s", backend)
}

func (h loggingOptimizeHooks) OnSolveComplete(_ context.Context, objective float64, optimal bool, d time.Duration, err error) {
	if err != nil {
		h.logger.Warnf("solve failed (%s): %v", d.Round(time.Millisecond), err)
		return
	}
	h.logger.Infof("solved (objective=%.1f optimal=%t) (%s)", objective, optimal, d.Round(time.Millisecond))
}

func (h loggingOptimizeHooks) OnDecodeComplete(_ context.Context, edges int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warnf("decode failed (%s): %v", d.Round(time.Millisecond), err)
		return
	}
	h.logger.Infof("decoded ordering (edges=%d) (%s)", edges, d.Round(time.Millisecond))
}
