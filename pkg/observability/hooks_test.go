package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	o := NoopOptimizeHooks{}
	o.OnBuildStart(ctx, 10, 12)
	o.OnBuildComplete(ctx, 40, 20, time.Second, nil)
	o.OnSolveStart(ctx, "glpk")
	o.OnSolveComplete(ctx, 3.0, true, time.Second, nil)
	o.OnDecodeComplete(ctx, 12, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Optimize().(NoopOptimizeHooks); !ok {
		t.Error("Optimize() should return NoopOptimizeHooks by default")
	}

	custom := &testOptimizeHooks{}
	SetOptimizeHooks(custom)
	if Optimize() != custom {
		t.Error("SetOptimizeHooks should set custom hooks")
	}

	Reset()
	if _, ok := Optimize().(NoopOptimizeHooks); !ok {
		t.Error("Reset() should restore NoopOptimizeHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testOptimizeHooks{}
	SetOptimizeHooks(custom)

	// Setting nil should be ignored
	SetOptimizeHooks(nil)

	if Optimize() != custom {
		t.Error("SetOptimizeHooks(nil) should be ignored")
	}

	Reset()
}

type testOptimizeHooks struct{ NoopOptimizeHooks }
