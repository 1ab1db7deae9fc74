package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	recio "github.com/lgoulart/jumpmap/pkg/io"
	"github.com/lgoulart/jumpmap/pkg/jump"
	"github.com/lgoulart/jumpmap/pkg/store"
)

// newStore opens the configured run archive: MongoDB when a URI is set,
// otherwise the file store.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	if uri := c.Config.Store.MongoURI; uri != "" {
		c.Logger.Debugf("Using MongoDB run store")
		return store.NewMongoStore(ctx, uri)
	}
	return store.NewFileStore(c.Config.Store.Dir)
}

// runsCommand creates the runs command group for the run archive.
func (c *CLI) runsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Manage archived mapping runs",
	}

	cmd.AddCommand(c.runsListCommand())
	cmd.AddCommand(c.runsShowCommand())
	cmd.AddCommand(c.runsDeleteCommand())
	cmd.AddCommand(c.runsExportCommand())

	return cmd
}

// runsListCommand creates the "runs list" subcommand.
func (c *CLI) runsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List archived runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close(ctx)

			summaries, err := st.List(ctx)
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				printInfo("No archived runs")
				printNextStep("Create one", "jumpmap map --save")
				return nil
			}

			for _, s := range summaries {
				label := s.Label
				if label == "" {
					label = StyleDim.Render("(unlabeled)")
				}
				fmt.Printf("%s  %s  %s  %s\n",
					StyleHighlight.Render(shortID(s.ID)),
					StyleValue.Render(fmt.Sprintf("%-20s", label)),
					StyleDim.Render(formatRelativeTime(s.CreatedAt)),
					StyleDim.Render(fmt.Sprintf("%d records", s.Records)))
			}
			return nil
		},
	}
}

// runsShowCommand creates the "runs show" subcommand. Without an ID it
// opens an interactive picker.
func (c *CLI) runsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show an archived run (interactive picker without an ID)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close(ctx)

			id := ""
			if len(args) == 1 {
				id = args[0]
			} else {
				id, err = c.pickRun(ctx, st)
				if err != nil {
					return err
				}
				if id == "" {
					return nil // picker dismissed
				}
			}

			run, err := st.Get(ctx, id)
			if err != nil {
				return err
			}

			printKeyValue("Run ID", run.ID)
			if run.Label != "" {
				printKeyValue("Label", run.Label)
			}
			printKeyValue("Created", run.CreatedAt.Format("2006-01-02 15:04:05 MST"))
			printKeyValue("Takeoffs", fmt.Sprintf("%d", len(run.Takeoffs)))
			printKeyValue("Charges", intsToString(run.Charges))
			printKeyValue("Directions", directionsToString(run.Directions))
			printKeyValue("Wind phase", fmt.Sprintf("%g", run.WindPhase))
			printKeyValue("Layers", fmt.Sprintf("%d", run.Options.MaxLayers))
			printKeyValue("Records", fmt.Sprintf("%d", len(run.Records)))
			printNewline()
			printNextStep("Export", "jumpmap runs export "+run.ID)
			return nil
		},
	}
}

// pickRun runs the bubbletea picker over the archived runs and returns
// the selected run ID, or "" when the picker was dismissed.
func (c *CLI) pickRun(ctx context.Context, st store.Store) (string, error) {
	summaries, err := st.List(ctx)
	if err != nil {
		return "", err
	}
	if len(summaries) == 0 {
		printInfo("No archived runs")
		return "", nil
	}

	model := NewRunListModel(summaries)
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}
	m, ok := final.(RunListModel)
	if !ok || m.Selected == nil {
		return "", nil
	}
	return m.Selected.ID, nil
}

// runsDeleteCommand creates the "runs delete" subcommand.
func (c *CLI) runsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete an archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close(ctx)

			if err := st.Delete(ctx, args[0]); err != nil {
				return err
			}
			printSuccess("Deleted run %s", args[0])
			return nil
		},
	}
}

// runsExportCommand creates the "runs export" subcommand.
func (c *CLI) runsExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [id]",
		Short: "Export a run's records as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close(ctx)

			run, err := st.Get(ctx, args[0])
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = shortID(run.ID) + ".records.json"
			}
			if err := recio.ExportJSON(run.Records, path); err != nil {
				return fmt.Errorf("export records: %w", err)
			}

			printSuccess("Exported %d records", len(run.Records))
			printFile(path)
			printNextStep("Render", "jumpmap render "+path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <id>.records.json)")

	return cmd
}

// =============================================================================
// Formatting Helpers
// =============================================================================

// shortID truncates a UUID to its first group for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func intsToString(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}

func directionsToString(ds []jump.Direction) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = string(d)
	}
	return strings.Join(parts, ", ")
}
