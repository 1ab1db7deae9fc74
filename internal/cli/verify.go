package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lgoulart/jumpmap/pkg/jump"
)

// verifyCommand creates the verify command for determinism checking.
func (c *CLI) verifyCommand() *cobra.Command {
	var (
		oracleAddr  string
		script      bool
		cfg         jump.Config
		direction   string
		charge      int
		repetitions int
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify that repeated identical jumps land identically",
		Long: `Verify oracle determinism by repeating the same jump experiment.

The oracle is fully reset before each repetition. The run is deterministic
when every repetition lands at exactly the same (level, x, y); any
difference is reported per repetition for diagnosis.`,
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
			verifier := jump.NewVerifier(exec)

			spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Verifying %d repetitions...", repetitions))
			spinner.Start()

			deterministic, outcomes, err := verifier.Verify(ctx, cfg, action, repetitions)
			if err != nil {
				spinner.StopWithError("Verification failed")
				return fmt.Errorf("verify: %w", err)
			}
			spinner.Stop()

			for i, out := range outcomes {
				marker := iconSuccess
				if i > 0 && !out.Equal(outcomes[0]) {
					marker = iconError
				}
				printDetail("%s rep %d: (%g, %g) level %d converged=%v", marker, i+1, out.X, out.Y, out.Level, out.Converged)
			}

			if deterministic {
				printSuccess("Deterministic across %d repetitions", len(outcomes))
				return nil
			}
			printError("Non-deterministic: outcomes differ across repetitions")
			return fmt.Errorf("determinism check failed")
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
	cmd.Flags().IntVarP(&repetitions, "repetitions", "n", defaultRepetitions, "number of repetitions")

	return cmd
}
