package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lgoulart/jumpmap/pkg/explore"
	"github.com/lgoulart/jumpmap/pkg/jump"
	"github.com/lgoulart/jumpmap/pkg/pipeline"
	"github.com/lgoulart/jumpmap/pkg/sampler"
	"github.com/lgoulart/jumpmap/pkg/store"
)

// mapCommand creates the map command, the full sweep-and-render pipeline.
func (c *CLI) mapCommand() *cobra.Command {
	var (
		oracleAddr string
		script     bool
		level      int
		xStart     int
		width      int
		platformY  float64
		count      int
		windPhase  float64
		chargesStr string
		dirsStr    string

		expansion  = explore.DefaultOptions()
		noRestrict bool

		formatsStr string
		output     string
		detailed   bool
		noCache    bool
		refresh    bool

		save  bool
		label string
	)

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Map reachability from a platform and render the graph",
		Long: `Map reachability from a platform and render the graph.

Takeoff points are sampled across the platform span, then every
(takeoff, charge, direction) combination is executed against the oracle.
Landings that moved vertically become the next frontier, repeated for the
configured number of layers. The resulting records are built into a
reachability graph and rendered.

Sweep results are cached locally; identical sweeps are not re-executed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				WindPhase: windPhase,
				Formats:   parseFormats(formatsStr),
				Detailed:  detailed,
				Refresh:   refresh,
				Logger:    c.Logger,
			}
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}

			var err error
			if opts.Charges, err = parseCharges(chargesStr); err != nil {
				return err
			}
			if opts.Charges == nil {
				opts.Charges = c.Config.Sweep.Charges
			}
			if opts.Charges == nil {
				opts.Charges = pipeline.DefaultCharges
			}
			if opts.Directions, err = parseDirections(dirsStr); err != nil {
				return err
			}
			if opts.Directions == nil {
				if opts.Directions, err = parseDirections(strings.Join(c.Config.Sweep.Directions, ",")); err != nil {
					return err
				}
			}
			if opts.Directions == nil {
				opts.Directions = jump.Directions
			}

			// Config file values apply where the flag was not given.
			if !cmd.Flags().Changed("wind") {
				opts.WindPhase = c.Config.Sweep.WindPhase
			}
			if !cmd.Flags().Changed("layers") && c.Config.Sweep.MaxLayers > 0 {
				expansion.MaxLayers = c.Config.Sweep.MaxLayers
			}
			if !cmd.Flags().Changed("y-tolerance") && c.Config.Sweep.YTolerance > 0 {
				expansion.YTolerance = c.Config.Sweep.YTolerance
			}

			expansion.RestrictByY = !noRestrict
			opts.Expansion = expansion

			xs, err := sampler.Sample(sampler.Span{XStart: xStart, Width: width}, count)
			if err != nil {
				return err
			}
			opts.Takeoffs = explore.Positions(level, sampler.TakeoffY(platformY), xs)

			return c.runMap(cmd, opts, oracleAddr, script, output, noCache, save, label)
		},
	}

	cmd.Flags().StringVar(&oracleAddr, "oracle", "", "oracle WebSocket address (overrides config)")
	cmd.Flags().BoolVar(&script, "script", false, "use the in-process scripted oracle")
	cmd.Flags().IntVar(&level, "level", 0, "platform level")
	cmd.Flags().IntVar(&xStart, "x-start", 230, "left edge of the platform span")
	cmd.Flags().IntVar(&width, "width", 0, "platform width in pixels (0 = single point)")
	cmd.Flags().Float64Var(&platformY, "y", 329, "platform top y coordinate")
	cmd.Flags().IntVar(&count, "count", sampler.DefaultSampleCount, "takeoff samples per platform")
	cmd.Flags().Float64Var(&windPhase, "wind", 0, "wind phase in radians")
	cmd.Flags().StringVar(&chargesStr, "charges", "", "charge durations, comma-separated (default 5,15,30,60)")
	cmd.Flags().StringVar(&dirsStr, "directions", "", "directions, comma-separated (default right,left)")
	cmd.Flags().IntVar(&expansion.MaxLayers, "layers", expansion.MaxLayers, "frontier expansion depth")
	cmd.Flags().Float64Var(&expansion.YTolerance, "y-tolerance", expansion.YTolerance, "minimum |dy| for frontier admission")
	cmd.Flags().BoolVar(&noRestrict, "no-restrict-y", false, "admit every landing into the next frontier")
	cmd.Flags().BoolVar(&expansion.RevisitPositions, "revisit", false, "re-expand positions already explored in earlier layers")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png, json (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label edges with direction and charge")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached sweep results")
	cmd.Flags().BoolVar(&save, "save", false, "archive the run in the run store")
	cmd.Flags().StringVar(&label, "label", "", "label for the archived run")

	return cmd
}

// runMap executes the pipeline and writes artifacts and, optionally, the
// archived run.
func (c *CLI) runMap(cmd *cobra.Command, opts pipeline.Options, oracleAddr string, script bool, output string, noCache, save bool, label string) error {
	ctx := withLogger(cmd.Context(), c.Logger)

	o, err := c.newOracle(ctx, oracleAddr, script)
	if err != nil {
		return err
	}
	defer o.Close()
	opts.Oracle = o

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	experiments := len(opts.Takeoffs) * len(opts.Charges) * len(opts.Directions)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Mapping reachability (%d first-layer experiments)...", experiments))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Mapping failed")
		return fmt.Errorf("map: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	printSuccess("Mapping complete")
	printStats(result.Stats.RecordCount, result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.SweepHit)

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		base:      "reachability",
		output:    output,
		cacheHit:  result.CacheInfo.RenderHit,
	}); err != nil {
		return err
	}

	if save {
		if err := c.saveRun(ctx, label, opts, result); err != nil {
			return err
		}
	}
	return nil
}

// saveRun archives the sweep in the configured run store.
func (c *CLI) saveRun(ctx context.Context, label string, opts pipeline.Options, result *pipeline.Result) error {
	st, err := c.newStore(ctx)
	if err != nil {
		return fmt.Errorf("open run store: %w", err)
	}
	defer st.Close(ctx)

	run := store.NewRun(label, opts.Takeoffs, opts.Charges, opts.Directions, opts.WindPhase, opts.Expansion, result.Records)
	if err := st.Put(ctx, run); err != nil {
		return fmt.Errorf("archive run: %w", err)
	}

	printNewline()
	printSuccess("Run archived")
	printKeyValue("Run ID", run.ID)
	printNextStep("Inspect", "jumpmap runs show "+run.ID)
	return nil
}
