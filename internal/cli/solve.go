package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pathfinder/pkg/config"
	"github.com/matzehuels/pathfinder/pkg/graph"
	"github.com/matzehuels/pathfinder/pkg/shortest"
	"github.com/matzehuels/pathfinder/pkg/solver"
)

// queryOpts are the flags shared by solve and render.
type queryOpts struct {
	start    string // overrides the file's start node
	end      string // overrides the file's end node
	noCache  bool   // bypass the result cache entirely
	refresh  bool   // recompute and overwrite cached results
	maxNodes int
	maxEdges int
}

func (o *queryOpts) register(cmd *cobra.Command) {
	defaults := config.Default()
	cmd.Flags().StringVar(&o.start, "start", "", "start node (overrides the file)")
	cmd.Flags().StringVar(&o.end, "end", "", "end node (overrides the file)")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "ignore cached results and recompute")
	cmd.Flags().IntVar(&o.maxNodes, "max-nodes", defaults.MaxNodes, "reject graphs with more nodes (0 = unlimited)")
	cmd.Flags().IntVar(&o.maxEdges, "max-edges", defaults.MaxEdges, "reject graphs with more edges (0 = unlimited)")
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts queryOpts
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Find the shortest path in a graph file",
		Long: `Find the shortest path between two nodes of a graph.

The file is a .json or .toml request with "start", "end" and "graph" keys, in
the same format the HTTP API accepts. Undirected edges are weighted by
"min,max" keys; set directed = true to use "from,to" keys instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, res, err := c.runQuery(cmd.Context(), args[0], &opts)
			if err != nil {
				return err
			}
			if asJSON {
				return writeResponse(cmd.OutOrStdout(), res)
			}
			printResult(res)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the API response JSON")

	return cmd
}

// runQuery reads a request file, applies flag overrides and solves it.
func (c *CLI) runQuery(ctx context.Context, path string, opts *queryOpts) (*graph.Request, *solver.Result, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	req, err := graph.ReadRequestFile(path)
	if err != nil {
		return nil, nil, err
	}
	if opts.start != "" {
		req.Start = opts.start
	}
	if opts.end != "" {
		req.End = opts.end
	}

	runner, err := c.newRunner(opts.noCache, opts.refresh)
	if err != nil {
		return nil, nil, fmt.Errorf("open cache: %w", err)
	}
	defer runner.Close()
	runner.Limits = graph.Limits{MaxNodes: opts.maxNodes, MaxEdges: opts.maxEdges}

	res, err := runner.Solve(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	prog.done(fmt.Sprintf("Solved %s → %s", req.Start, req.End))
	return req, res, nil
}

func writeResponse(w io.Writer, res *solver.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res.Response())
}

func printResult(res *solver.Result) {
	switch res.Status {
	case shortest.StatusFound:
		printSuccess("Shortest path %s", formatPath(res.Path))
		printKeyValue("cost", strconv.FormatInt(res.Cost, 10))
		printKeyValue("hops", strconv.Itoa(len(res.Path)-1))
	case shortest.StatusUnknownNode:
		printWarning("No path: start or end node is not in the graph")
	case shortest.StatusUnreachable:
		printWarning("No path: end node is not reachable from start")
	case shortest.StatusNegativeCycle:
		printError("No path: a negative cycle is reachable from start")
		printDetail("shortest distances are unbounded below")
	}
	printStats(len(res.Graph), res.Graph.EdgeCount(), res.Cached)
}
