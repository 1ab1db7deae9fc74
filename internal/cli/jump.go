package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lgoulart/jumpmap/pkg/jump"
)

// jumpCommand creates the jump command for running a single experiment.
func (c *CLI) jumpCommand() *cobra.Command {
	var (
		oracleAddr string
		script     bool
		cfg        jump.Config
		direction  string
		charge     int
	)

	cmd := &cobra.Command{
		Use:   "jump",
		Short: "Run a single jump experiment and print the landing",
		Long: `Run a single jump experiment against the oracle.

The oracle is reset to the given takeoff position, the jump button is held
for the charge duration, and the simulation is stepped until the landing
converges (or the flight cap expires). The landing position is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := jump.ParseDirection(direction)
			if err != nil {
				return err
			}
			action := jump.Action{Direction: dir, ChargeFrames: charge}

			ctx := cmd.Context()
			o, err := c.newOracle(ctx, oracleAddr, script)
			if err != nil {
				return err
			}
			defer o.Close()

			exec := jump.NewExecutor(o, jump.WithLogger(c.Logger))

			prog := newProgress(c.Logger)
			outcome, err := exec.Execute(ctx, cfg, action)
			if err != nil {
				return fmt.Errorf("jump: %w", err)
			}
			prog.done("Jump complete")

			printSuccess("Landed at (%g, %g) on level %d", outcome.X, outcome.Y, outcome.Level)
			printKeyValue("Takeoff", fmt.Sprintf("(%g, %g) level %d", cfg.X, cfg.Y, cfg.Level))
			printKeyValue("Action", fmt.Sprintf("%s, %d charge frames", dir, charge))
			if !outcome.Converged {
				printWarning("Landing did not converge within the flight cap")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&oracleAddr, "oracle", "", "oracle WebSocket address (overrides config)")
	cmd.Flags().BoolVar(&script, "script", false, "use the in-process scripted oracle")
	cmd.Flags().IntVar(&cfg.Level, "level", 0, "takeoff level")
	cmd.Flags().Float64Var(&cfg.X, "x", 230, "takeoff x coordinate")
	cmd.Flags().Float64Var(&cfg.Y, "y", 298, "takeoff y coordinate")
	cmd.Flags().Float64Var(&cfg.WindPhase, "wind", 0, "wind phase in radians")
	cmd.Flags().StringVarP(&direction, "direction", "d", string(jump.DirectionRight), "jump direction: right or left")
	cmd.Flags().IntVarP(&charge, "charge", "c", 15, "charge duration in frames")

	return cmd
}
