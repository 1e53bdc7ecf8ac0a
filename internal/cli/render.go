package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/drawrows/pkg/errors"
	"github.com/matzehuels/drawrows/pkg/pipeline"
)

// renderCommand creates the render command for drawing an assignment.
// Unlike assign it never writes the text files.
func (c *CLI) renderCommand() *cobra.Command {
	var flags commonFlags
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the row assignment as SVG or JSON",
		Long: `Draw the row assignment of the intervals in file.

Each interval becomes a bar on its row; a strip underneath shades the
coverage depth along the axis. Output files are named after the input,
for example regions.txt becomes regions.svg.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.resolveOptions(cmd, &flags, args[0], &opts); err != nil {
				return err
			}
			formats, err := drawingFormats(flags.formats != "", opts.Formats)
			if err != nil {
				return err
			}
			opts.Formats = formats
			return c.runRender(cmd.Context(), opts)
		},
	}

	flags.register(cmd, &opts)
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): svg (default), json (comma-separated)")

	return cmd
}

// drawingFormats keeps the drawing formats. Text formats from a config
// file are dropped; asking for them on the command line is an error.
func drawingFormats(explicit bool, formats []string) ([]string, error) {
	var out []string
	for _, f := range formats {
		switch f {
		case pipeline.FormatSVG, pipeline.FormatJSON:
			out = append(out, f)
		default:
			if explicit {
				return nil, errors.New(errors.ErrCodeInvalidFormat, "render writes drawings only: %q (must be one of: svg, json)", f)
			}
		}
	}
	if len(out) == 0 {
		out = []string{pipeline.FormatSVG}
	}
	return out, nil
}

func (c *CLI) runRender(ctx context.Context, opts pipeline.Options) error {
	c.registerHooks()
	prog := newProgress(c.Logger)

	spinner := newSpinner(ctx, c.Err, "Rendering...")
	spinner.Start()
	result, err := c.newRunner().Execute(ctx, opts)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d file(s)", len(result.Artifacts)))

	c.printResult(result, opts.DryRun)
	return nil
}
