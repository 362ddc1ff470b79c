// Package observability provides hooks for metrics, tracing, and logging
// around an optimization run.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about the build/solve/decode phases of
// one optimize call.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core engine dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetOptimizeHooks(&myOptimizeHooks{})
//	    // ... run the engine
//	}
//
// The engine calls hooks to emit events:
//
//	observability.Optimize().OnBuildComplete(ctx, varCount, rowCount, duration, nil)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Optimize Hooks
// =============================================================================

// OptimizeHooks receives events from one optimize run: building the ILP,
// solving it, and decoding the solution back into an ordering.
type OptimizeHooks interface {
	// OnBuildStart fires when ILP construction begins.
	OnBuildStart(ctx context.Context, nodeCount, edgeCount int)
	// OnBuildComplete fires when construction finishes, reporting how many
	// variables and rows were created.
	OnBuildComplete(ctx context.Context, varCount, rowCount int, duration time.Duration, err error)

	// OnSolveStart fires when the solver backend is invoked.
	OnSolveStart(ctx context.Context, backend string)
	// OnSolveComplete fires when the solver returns, reporting the
	// objective value and whether the result is optimal.
	OnSolveComplete(ctx context.Context, objective float64, optimal bool, duration time.Duration, err error)

	// OnDecodeComplete fires when the solution has been decoded into an
	// ordering and relative routes have been expanded.
	OnDecodeComplete(ctx context.Context, edgeCount int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopOptimizeHooks is a no-op implementation of OptimizeHooks.
type NoopOptimizeHooks struct{}

func (NoopOptimizeHooks) OnBuildStart(context.Context, int, int)                         {}
func (NoopOptimizeHooks) OnBuildComplete(context.Context, int, int, time.Duration, error) {}
func (NoopOptimizeHooks) OnSolveStart(context.Context, string)                           {}
func (NoopOptimizeHooks) OnSolveComplete(context.Context, float64, bool, time.Duration, error) {
}
func (NoopOptimizeHooks) OnDecodeComplete(context.Context, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	optimizeHooks OptimizeHooks = NoopOptimizeHooks{}
	hooksMu       sync.RWMutex
)

// SetOptimizeHooks registers custom optimize hooks.
// This should be called once at application startup before any optimize
// calls.
func SetOptimizeHooks(h OptimizeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		optimizeHooks = h
	}
}

// Optimize returns the registered optimize hooks.
func Optimize() OptimizeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return optimizeHooks
}

// Reset restores the hooks to their no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	optimizeHooks = NoopOptimizeHooks{}
}
