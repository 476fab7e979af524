// Package observability provides hooks for metrics and tracing.
//
// Libraries emit events through the registered hooks; the binary decides
// which backend receives them. The defaults are no-ops, so nothing is
// recorded unless main registers an implementation (see internal/metrics).
//
// # Usage
//
// Register hooks at startup:
//
//	func main() {
//	    m := metrics.New(prometheus.DefaultRegisterer)
//	    observability.SetSolverHooks(m)
//	    observability.SetCacheHooks(m)
//	    observability.SetHTTPHooks(m)
//	    // ... run server
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Solver().OnSolveStart(ctx, nodes, edges)
//	// ... search ...
//	observability.Solver().OnSolveComplete(ctx, status, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Solver Hooks
// =============================================================================

// SolverHooks receives events from shortest-path queries.
type SolverHooks interface {
	// OnSolveStart is called after the graph is built, before the search.
	OnSolveStart(ctx context.Context, nodes, edges int)

	// OnSolveComplete is called when a query finishes. status is the query
	// outcome ("found", "unreachable", ...) or empty when err is set.
	OnSolveComplete(ctx context.Context, status string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnResponse records a served request. route is the matched route
	// pattern, not the raw path.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSolverHooks is a no-op implementation of SolverHooks.
type NoopSolverHooks struct{}

func (NoopSolverHooks) OnSolveStart(context.Context, int, int)                        {}
func (NoopSolverHooks) OnSolveComplete(context.Context, string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	solverHooks SolverHooks = NoopSolverHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetSolverHooks registers solver hooks. Nil is ignored.
func SetSolverHooks(h SolverHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		solverHooks = h
	}
}

// SetCacheHooks registers cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers HTTP hooks. Nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Solver returns the registered solver hooks.
func Solver() SolverHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return solverHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	solverHooks = NoopSolverHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
