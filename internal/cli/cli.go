// Package cli implements the drawrows command-line interface.
//
// # Commands
//
//   - assign: Assign drawing rows and write the row and segment files
//   - render: Draw the assignment as SVG or JSON
//   - view: Browse the assignment interactively
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
//
// # Configuration
//
// Defaults are read from drawrows.toml (see package config). Flags always
// take precedence over the config file.
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/drawrows/pkg/buildinfo"
	"github.com/matzehuels/drawrows/pkg/config"
	"github.com/matzehuels/drawrows/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "drawrows"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command results. Err receives progress output.
	Out io.Writer
	Err io.Writer
}

// New creates a new CLI instance with a logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		Err:    w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "drawrows stacks overlapping intervals into drawing rows",
		Long: `drawrows reads closed integer intervals, one "begin end" pair per line,
and assigns each one a drawing row so that overlapping intervals never share
a row. It also reports how many intervals cover each stretch of the axis.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.assignCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// commonFlags are shared by the commands that write files.
type commonFlags struct {
	configPath string
	formats    string
}

func (f *commonFlags) register(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (default ./drawrows.toml)")
	cmd.Flags().StringVarP(&opts.OutputDir, "out-dir", "o", "", "output directory (default: next to the input)")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "check every output invariant before writing")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "compute everything but write nothing")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "drawing width in pixels (default 800)")
	cmd.Flags().Float64Var(&opts.RowHeight, "row-height", 0, "drawing row height in pixels (default 12)")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "label bars with their sequence number")
}

// resolveOptions merges config file values under the flags.
func (c *CLI) resolveOptions(cmd *cobra.Command, f *commonFlags, input string, opts *pipeline.Options) error {
	opts.Input = input
	opts.Formats = parseFormats(f.formats)

	cfg, err := config.Find(f.configPath)
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		c.Logger.Debug("loaded config", "path", cfg.Path)
	}

	verify, labels := opts.Verify, opts.Labels
	cfg.Apply(opts)
	// Explicit boolean flags win, even when false.
	if cmd.Flags().Changed("verify") {
		opts.Verify = verify
	}
	if cmd.Flags().Changed("labels") {
		opts.Labels = labels
	}

	opts.Logger = c.Logger
	return nil
}

// parseFormats parses a comma-separated --format flag.
// Empty input yields nil so the config or pipeline default applies.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
