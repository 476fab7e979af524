package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/matzehuels/pathfinder/pkg/observability"
)

func TestSolverMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())
	ctx := context.Background()

	m.OnSolveStart(ctx, 4, 10)
	m.OnSolveComplete(ctx, "found", time.Millisecond, nil)
	m.OnSolveComplete(ctx, "found", time.Millisecond, nil)
	m.OnSolveComplete(ctx, "", time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(m.queries.WithLabelValues("found")); got != 2 {
		t.Errorf("found queries = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.queries.WithLabelValues("error")); got != 1 {
		t.Errorf("error queries = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.graphNodes); got != 1 {
		t.Errorf("graph node series = %d, want 1", got)
	}
}

func TestCacheMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())
	ctx := context.Background()

	m.OnCacheMiss(ctx, "path")
	m.OnCacheSet(ctx, "path", 64)
	m.OnCacheHit(ctx, "path")

	for _, event := range []string{"hit", "miss", "set"} {
		if got := testutil.ToFloat64(m.cacheEvents.WithLabelValues("path", event)); got != 1 {
			t.Errorf("cache %s = %v, want 1", event, got)
		}
	}
	if got := testutil.ToFloat64(m.cacheBytes); got != 64 {
		t.Errorf("cache bytes = %v, want 64", got)
	}
}

func TestHTTPMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.OnResponse(context.Background(), "POST", "/shortest_path", 200, 5*time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("POST", "/shortest_path", "200")); got != 1 {
		t.Errorf("requests = %v, want 1", got)
	}
}

func TestRegister(t *testing.T) {
	observability.Reset()
	t.Cleanup(observability.Reset)

	m := New(prometheus.NewRegistry())
	m.Register()

	if observability.Solver() != observability.SolverHooks(m) {
		t.Error("Register should install solver hooks")
	}
	if observability.HTTP() != observability.HTTPHooks(m) {
		t.Error("Register should install HTTP hooks")
	}
}

func TestNewPanicsOnDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	defer func() {
		if recover() == nil {
			t.Error("registering twice on one registry should panic")
		}
	}()
	New(reg)
}
