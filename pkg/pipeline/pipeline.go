// Package pipeline provides the row assignment pipeline for drawrows.
//
// This package implements the complete load → assign → render → write
// pipeline used by every CLI command. Centralizing it keeps defaults and
// validation identical across entry points.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: Read interval records from the input file
//  2. Assign: Compute drawing rows and depth segments (optionally verified)
//  3. Render: Produce every requested artifact in memory
//  4. Write: Move the artifacts into the output directory
//
// Nothing is written until all artifacts rendered successfully, so a failed
// run never leaves partial output.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Input:   "regions.txt",
//	    Formats: []string{"txt", "svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Files)
//
// Run individual stages:
//
//	ivs, err := runner.Load(ctx, opts)
//	res, err := runner.Assign(ctx, ivs, opts)
//	artifacts, err := runner.Render(ctx, res, opts)
package pipeline

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/drawrows/pkg/core/rows"
	"github.com/matzehuels/drawrows/pkg/errors"
	rowsio "github.com/matzehuels/drawrows/pkg/io"
	"github.com/matzehuels/drawrows/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for every command
// =============================================================================

const (
	// DefaultWidth is the default drawing width in pixels.
	DefaultWidth = sink.DefaultWidth

	// DefaultRowHeight is the default height of one drawing row in pixels.
	DefaultRowHeight = sink.DefaultRowHeight
)

// Format constants for output formats.
const (
	FormatTXT  = "txt"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatTXT:  true,
	FormatSVG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the row assignment pipeline.
type Options struct {
	// Input is the interval file to read.
	Input string

	// OutputDir receives every output file. Defaults to the input's directory.
	OutputDir string

	// RowsFile and SegmentsFile name the text outputs (format "txt").
	RowsFile     string
	SegmentsFile string

	// Formats selects the artifacts to produce.
	Formats []string

	// Render options
	Width     float64
	RowHeight float64
	Labels    bool

	// Verify re-checks every output invariant before writing.
	Verify bool

	// DryRun stops after rendering; nothing is written.
	DryRun bool

	// Runtime options
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Assignment holds rows and segments for every interval.
	Assignment *rows.Result

	// Artifacts contains rendered outputs keyed by file name.
	Artifacts map[string][]byte

	// Files lists the written paths, sorted. Empty on a dry run.
	Files []string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Intervals  int
	Rows       int
	Segments   int
	MaxDepth   int
	Bytes      int
	LoadTime   time.Duration
	AssignTime time.Duration
	VerifyTime time.Duration
	RenderTime time.Duration
	WriteTime  time.Duration
}

// Total returns the summed duration of all stages.
func (s Stats) Total() time.Duration {
	return s.LoadTime + s.AssignTime + s.VerifyTime + s.RenderTime + s.WriteTime
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: txt, svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	if o.OutputDir == "" {
		o.OutputDir = filepath.Dir(o.Input)
	}
	if err := errors.ValidatePath(o.OutputDir); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks the fields needed to read the input.
func (o *Options) ValidateForLoad() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input file is required")
	}
	if err := errors.ValidatePath(o.Input); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatTXT}
	}
	if o.RowsFile == "" {
		o.RowsFile = rowsio.DefaultRowsFile
	}
	if o.SegmentsFile == "" {
		o.SegmentsFile = rowsio.DefaultSegmentsFile
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.RowHeight == 0 {
		o.RowHeight = DefaultRowHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Width < 0 || o.RowHeight < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "width and row height must be positive")
	}
	for _, name := range []string{o.RowsFile, o.SegmentsFile} {
		if err := errors.ValidateFilename(name); err != nil {
			return err
		}
	}
	if o.wants(FormatTXT) && o.RowsFile == o.SegmentsFile {
		return errors.New(errors.ErrCodeInvalidPath, "rows and segments file are both %q", o.RowsFile)
	}
	return nil
}

// ArtifactName returns the output file name for a drawing format, derived
// from the input file name ("regions.txt" becomes "regions.svg").
func (o *Options) ArtifactName(format string) string {
	base := filepath.Base(o.Input)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "intervals"
	}
	return base + "." + format
}

func (o *Options) wants(format string) bool {
	for _, f := range o.Formats {
		if f == format {
			return true
		}
	}
	return false
}
