package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	recio "github.com/lgoulart/jumpmap/pkg/io"
	"github.com/lgoulart/jumpmap/pkg/pipeline"
	"github.com/lgoulart/jumpmap/pkg/reach"
)

// renderCommand creates the render command for rendering from a record file.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [records.json]",
		Short: "Render a reachability graph from exported records",
		Long: `Render a reachability graph from exported records.

The render command takes a records.json file (produced by 'map -f json'
or 'runs export') and builds and renders the reachability graph without
touching the oracle. Incomplete records are skipped with a warning.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "label edges with direction and charge")
	cmd.Flags().Float64Var(&opts.TierTolerance, "tier-tolerance", 0, "y-tier merge tolerance (default 5)")
	cmd.Flags().Float64Var(&opts.VerticalSpacing, "spacing", 0, "vertical pixels between tiers (default 200)")

	return cmd
}

// runRender loads the records, builds the graph, and renders it.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts pipeline.Options, output string, noCache bool) error {
	ctx := withLogger(cmd.Context(), c.Logger)

	records, err := recio.ImportJSON(input)
	if err != nil {
		return fmt.Errorf("load records %s: %w", input, err)
	}
	c.Logger.Infof("Loaded %d records", len(records))

	g := reach.Build(records, reach.WithLogger(c.Logger))

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering reachability graph...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, g, records, opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	printSuccess("Rendering complete")
	printStats(len(records), len(g.Nodes), len(g.Edges), cacheHit)

	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		base:      strings.TrimSuffix(input, filepath.Ext(input)),
		output:    output,
		cacheHit:  cacheHit,
	})
}

// =============================================================================
// Artifact Output
// =============================================================================

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte // rendered bytes keyed by format
	formats   []string          // formats in user-requested order
	base      string            // fallback base path when output is empty
	output    string            // output file (single format) or base path
	cacheHit  bool
}

// writeArtifacts writes each requested format to its output file.
// A single format goes to the output path as given (or stdout-less
// base.format); multiple formats fan out to base.format files.
func writeArtifacts(p artifactWriteParams) error {
	base := artifactBasePath(p.output, p.base)

	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}

		path := base + "." + format
		if p.output != "" && len(p.formats) == 1 {
			path = p.output
		}

		out, err := openOutput(path)
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			out.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := out.Close(); err != nil {
			return err
		}

		printFile(path)
	}
	return nil
}

// artifactBasePath derives the base output path. If output has a known
// format extension it is stripped, so "graph.svg" and "graph" behave the
// same when multiple formats are requested.
func artifactBasePath(output, fallback string) string {
	if output == "" {
		return fallback
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is "-", it returns os.Stdout wrapped in nopCloser.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
