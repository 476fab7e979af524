// Package pkg provides the libraries behind pathfinder, a shortest-path
// service for weighted graphs.
//
// # Overview
//
// The pkg directory is organized by concern:
//
//  1. [shortest] - The search: negative cycle detection and shortest paths
//  2. [graph] - Wire format: requests, payloads, responses and their decoding
//  3. [solver] - Orchestration: validate → build → cache → search
//  4. [cache] - Result caching (none, file, Redis)
//  5. [render] - Drawing graphs with the path highlighted
//  6. [server] - HTTP API
//  7. [config], [errors], [observability], [buildinfo] - Ambient concerns
//
// # Architecture
//
// The data flow for one query:
//
//	JSON / TOML request
//	         ↓
//	    [graph] package (decode, validate, build adjacency map)
//	         ↓
//	    [solver] package (hash graph, consult cache)
//	         ↓
//	    [shortest] package (cycle check, then search)
//	         ↓
//	    path + cost + status
//
// # Quick Start
//
// Answering a query directly:
//
//	import "github.com/matzehuels/pathfinder/pkg/shortest"
//
//	g := shortest.Graph{
//	    "A": {"B": 1, "C": 5},
//	    "B": {"C": 2},
//	    "C": {},
//	}
//	res := shortest.Find(g, "A", "C")
//	// res.Path = [A B C], res.Cost = 3
//
// Answering a wire request with caching:
//
//	req, err := graph.ReadRequestFile("query.json")
//	runner := solver.NewRunner(cache.NewNullCache(), nil, logger)
//	res, err := runner.Solve(ctx, req)
//
// [shortest]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/shortest
// [graph]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/graph
// [solver]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/solver
// [cache]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/cache
// [render]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/render
// [server]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/server
// [config]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pathfinder/pkg/buildinfo
package pkg
