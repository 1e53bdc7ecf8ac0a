package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/drawrows/pkg/pipeline"
)

// assignCommand creates the assign command, the main entry point: it reads
// the interval file and writes the row and segment files.
func (c *CLI) assignCommand() *cobra.Command {
	var flags commonFlags
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "assign [file]",
		Short: "Assign drawing rows to intervals",
		Long: `Assign drawing rows to the intervals in file.

Each input line holds one closed interval as two integers, "begin end".
Blank lines are ignored; any other line that is not two integers is an error.

Two files are written next to the input (or into --out-dir):

  PartA.txt  the row of every interval, in input order
  PartB.txt  depth segments as "low<TAB>high<TAB>depth", ascending

Add drawings with --format txt,svg,json.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.resolveOptions(cmd, &flags, args[0], &opts); err != nil {
				return err
			}
			return c.runAssign(cmd.Context(), opts)
		},
	}

	flags.register(cmd, &opts)
	cmd.Flags().StringVar(&opts.RowsFile, "rows-file", "", "row output file name (default PartA.txt)")
	cmd.Flags().StringVar(&opts.SegmentsFile, "segments-file", "", "segment output file name (default PartB.txt)")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): txt (default), svg, json (comma-separated)")

	return cmd
}

// runAssign executes the pipeline and prints a summary.
func (c *CLI) runAssign(ctx context.Context, opts pipeline.Options) error {
	c.registerHooks()
	prog := newProgress(c.Logger)

	spinner := newSpinner(ctx, c.Err, "Assigning rows...")
	spinner.Start()
	result, err := c.newRunner().Execute(ctx, opts)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Assigned %s intervals", humanize.Comma(int64(result.Stats.Intervals))))

	c.printResult(result, opts.DryRun)
	return nil
}

// printResult prints the run summary and the written files.
func (c *CLI) printResult(result *pipeline.Result, dryRun bool) {
	s := result.Stats
	c.printSuccess("%s intervals on %s rows",
		StyleNumber.Render(humanize.Comma(int64(s.Intervals))),
		StyleNumber.Render(humanize.Comma(int64(s.Rows))))
	c.printStats(
		humanize.Comma(int64(s.Segments))+" segments",
		fmt.Sprintf("max depth %d", s.MaxDepth),
		humanize.Bytes(uint64(s.Bytes)),
		s.Total().Round(time.Millisecond).String(),
	)
	if s.Intervals > 0 && s.Rows == 0 {
		c.printWarning("no rows assigned")
	}

	if dryRun {
		c.printKeyValue("dry run", fmt.Sprintf("%d files not written", len(result.Artifacts)))
		return
	}
	for _, path := range result.Files {
		c.printFile(path)
	}
}
