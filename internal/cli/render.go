package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pathfinder/pkg/errors"
	"github.com/matzehuels/pathfinder/pkg/render/nodelink"
)

const (
	formatSVG = "svg"
	formatDOT = "dot"
)

// renderOpts holds the flags for the render command.
type renderOpts struct {
	queryOpts
	output  string // output file; defaults to the input name with the format's extension
	format  string // svg or dot
	weights bool   // label edges with weights
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatSVG, weights: true}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw a graph with its shortest path highlighted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatSVG && opts.format != formatDOT {
				return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want svg or dot)", opts.format)
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, dot")
	cmd.Flags().BoolVar(&opts.weights, "weights", opts.weights, "label edges with their weights")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	req, res, err := c.runQuery(ctx, input, &opts.queryOpts)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	dot := nodelink.ToDOT(res.Graph, nodelink.Options{
		Path:      res.Path,
		Positions: req.Graph.Nodes,
		Directed:  req.Graph.Directed,
		Weights:   opts.weights,
	})

	data := []byte(dot)
	if opts.format == formatSVG {
		if data, err = nodelink.RenderSVG(ctx, dot); err != nil {
			return err
		}
	}

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	prog.done("Rendered " + opts.format)

	if res.Found() {
		printSuccess("Rendered path %s", formatPath(res.Path))
	} else {
		printWarning("Rendered graph without a path (%s)", res.Status)
	}
	printFile(out)
	return nil
}
