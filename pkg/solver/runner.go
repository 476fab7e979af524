// Package solver answers shortest-path requests with result caching.
//
// [Runner] is shared by the CLI and the HTTP server so that both validate,
// build, cache and log queries the same way.
package solver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pathfinder/pkg/cache"
	"github.com/matzehuels/pathfinder/pkg/graph"
	"github.com/matzehuels/pathfinder/pkg/observability"
	"github.com/matzehuels/pathfinder/pkg/shortest"
)

const keyTypePath = "path"

// Result is the answer to one request.
type Result struct {
	shortest.Result

	// Graph is the adjacency map the query ran against.
	Graph shortest.Graph

	// GraphHash identifies Graph; equal graphs hash equally regardless of
	// how the payload listed them.
	GraphHash string

	// Cached reports whether the answer came from the cache.
	Cached bool

	// Duration covers building, cache lookup and search.
	Duration time.Duration
}

// Response converts r to the wire format.
func (r *Result) Response() graph.Response {
	path := r.Path
	if path == nil {
		path = []string{}
	}
	return graph.Response{
		Path:      path,
		Cost:      r.Cost,
		Status:    r.Status.String(),
		GraphHash: r.GraphHash,
		Cached:    r.Cached,
	}
}

// Runner executes queries with caching.
//
// The Runner holds no per-query state, so one Runner can serve concurrent
// requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// Limits bounds accepted graphs. The zero value accepts any size.
	Limits graph.Limits

	// TTL is the lifetime of cached results. Zero uses cache.TTLPath.
	TTL time.Duration

	// Refresh skips cache reads; results are still written.
	Refresh bool
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Build validates req and converts its payload into an adjacency map.
// It returns the map and its hash.
func (r *Runner) Build(req *graph.Request) (shortest.Graph, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}
	g, err := req.Graph.Build(r.Limits)
	if err != nil {
		return nil, "", err
	}
	data, err := json.Marshal(g)
	if err != nil {
		return nil, "", fmt.Errorf("hash graph: %w", err)
	}
	return g, cache.Hash(data), nil
}

// Solve answers req. Query outcomes without a path (unknown node,
// unreachable target, negative cycle) are reported through Result.Status,
// not as errors. Errors mean the request itself was rejected.
func (r *Runner) Solve(ctx context.Context, req *graph.Request) (*Result, error) {
	start := time.Now()

	g, hash, err := r.Build(req)
	if err != nil {
		observability.Solver().OnSolveComplete(ctx, "", time.Since(start), err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nodes, edges := len(g), g.EdgeCount()
	observability.Solver().OnSolveStart(ctx, nodes, edges)

	key := r.Keyer.PathKey(hash, req.Start, req.End)
	res, hit := r.lookup(ctx, key)
	if !hit {
		res = shortest.Find(g, req.Start, req.End, shortest.WithHooks(r.traceHooks()))
		r.store(ctx, key, res)
	}

	out := &Result{
		Result:    res,
		Graph:     g,
		GraphHash: hash,
		Cached:    hit,
		Duration:  time.Since(start),
	}
	observability.Solver().OnSolveComplete(ctx, res.Status.String(), out.Duration, nil)

	r.Logger.Info("solved query",
		"start", req.Start,
		"end", req.End,
		"status", res.Status,
		"cost", res.Cost,
		"nodes", nodes,
		"edges", edges,
		"cached", hit,
		"duration", out.Duration)

	return out, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// cachedResult is the stored form of a search result.
type cachedResult struct {
	Path   []string        `json:"path"`
	Cost   int64           `json:"cost"`
	Status shortest.Status `json:"status"`
}

func (r *Runner) lookup(ctx context.Context, key string) (shortest.Result, bool) {
	if r.Refresh {
		return shortest.Result{}, false
	}
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "error", err)
		return shortest.Result{}, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypePath)
		return shortest.Result{}, false
	}

	var c cachedResult
	if err := json.Unmarshal(data, &c); err != nil {
		r.Logger.Warn("discarding corrupt cache entry", "key", key, "error", err)
		observability.Cache().OnCacheMiss(ctx, keyTypePath)
		return shortest.Result{}, false
	}
	observability.Cache().OnCacheHit(ctx, keyTypePath)
	if c.Path == nil {
		c.Path = []string{}
	}
	return shortest.Result{Path: c.Path, Cost: c.Cost, Status: c.Status}, true
}

func (r *Runner) store(ctx context.Context, key string, res shortest.Result) {
	data, err := json.Marshal(cachedResult{Path: res.Path, Cost: res.Cost, Status: res.Status})
	if err != nil {
		return
	}
	ttl := r.TTL
	if ttl == 0 {
		ttl = cache.TTLPath
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyTypePath, len(data))
}

// traceHooks logs each search step at debug level.
func (r *Runner) traceHooks() shortest.Hooks {
	if r.Logger.GetLevel() > log.DebugLevel {
		return shortest.Hooks{}
	}
	return shortest.Hooks{
		OnSettle: func(node string, dist int64) {
			r.Logger.Debug("settle", "node", node, "dist", dist)
		},
		OnRelax: func(from, to string, dist int64) {
			r.Logger.Debug("relax", "from", from, "to", to, "dist", dist)
		},
		OnNegativeCycle: func(source string) {
			r.Logger.Debug("negative cycle reachable", "source", source)
		},
	}
}
