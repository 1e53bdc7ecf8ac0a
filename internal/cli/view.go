package cli

import (
	"context"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/drawrows/pkg/pipeline"
)

// viewCommand creates the view command for browsing an assignment.
func (c *CLI) viewCommand() *cobra.Command {
	var byRow bool

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse the row assignment interactively",
		Long: `Browse the row assignment of the intervals in file.

Lists every interval with its row and position on the axis. Press tab to
switch to the depth segments and s to group intervals by row. Nothing is
written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), args[0], byRow)
		},
	}

	cmd.Flags().BoolVar(&byRow, "by-row", false, "start with intervals grouped by row")

	return cmd
}

func (c *CLI) runView(ctx context.Context, input string, byRow bool) error {
	model, err := c.loadAssignment(ctx, input)
	if err != nil {
		return err
	}
	if byRow {
		model.ByRow = true
		model.sortOrder()
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// loadAssignment runs the load and assign stages for the viewer.
func (c *CLI) loadAssignment(ctx context.Context, input string) (AssignmentModel, error) {
	runner := c.newRunner()
	opts := pipeline.Options{Input: input, Logger: c.Logger}

	ivs, err := runner.Load(ctx, opts)
	if err != nil {
		return AssignmentModel{}, err
	}
	res, err := runner.Assign(ctx, ivs, opts)
	if err != nil {
		return AssignmentModel{}, err
	}
	return NewAssignmentModel(res, filepath.Base(input)), nil
}
