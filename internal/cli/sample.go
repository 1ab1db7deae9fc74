package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lgoulart/jumpmap/pkg/sampler"
)

// sampleCommand creates the sample command for platform takeoff sampling.
func (c *CLI) sampleCommand() *cobra.Command {
	var (
		xStart int
		width  int
		y      float64
		count  int
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample takeoff x-positions across a platform span",
		Long: `Sample takeoff x-positions across a platform span.

Narrow platforms are sampled exhaustively (every integer x); wider ones
get evenly spaced samples covering both edges. The printed takeoff y is
the platform top shifted up by the king's feet offset.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := sampler.Sample(sampler.Span{XStart: xStart, Width: width}, count)
			if err != nil {
				return err
			}

			parts := make([]string, len(xs))
			for i, x := range xs {
				parts[i] = fmt.Sprintf("%d", x)
			}

			printSuccess("Sampled %d takeoff points", len(xs))
			printKeyValue("X samples", strings.Join(parts, ", "))
			printKeyValue("Takeoff y", fmt.Sprintf("%g", sampler.TakeoffY(y)))
			printNewline()
			printNextStep("Sweep", fmt.Sprintf("jumpmap map --x-start %d --width %d --y %g", xStart, width, y))
			return nil
		},
	}

	cmd.Flags().IntVar(&xStart, "x-start", 0, "left edge of the platform span")
	cmd.Flags().IntVar(&width, "width", 0, "platform width in pixels")
	cmd.Flags().Float64Var(&y, "y", 0, "platform top y coordinate")
	cmd.Flags().IntVar(&count, "count", sampler.DefaultSampleCount, "number of samples")

	return cmd
}
