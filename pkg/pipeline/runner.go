package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/drawrows/pkg/core/rows"
	"github.com/matzehuels/drawrows/pkg/errors"
	"github.com/matzehuels/drawrows/pkg/interval"
	rowsio "github.com/matzehuels/drawrows/pkg/io"
	"github.com/matzehuels/drawrows/pkg/observability"
	"github.com/matzehuels/drawrows/pkg/render/sink"
)

// Runner executes pipeline stages.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → assign → render → write pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	result := &Result{}

	// Stage 1: Load
	start := time.Now()
	ivs, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = time.Since(start)
	result.Stats.Intervals = len(ivs)

	logger.Info("loaded intervals",
		"intervals", len(ivs),
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Assign
	start = time.Now()
	res, err := r.assign(ctx, ivs, logger)
	if err != nil {
		return nil, err
	}
	result.Assignment = res
	result.Stats.AssignTime = time.Since(start)
	result.Stats.Rows = res.RowCount
	result.Stats.Segments = len(res.Segments)
	result.Stats.MaxDepth = res.MaxDepth

	logger.Info("assigned rows",
		"rows", res.RowCount,
		"segments", len(res.Segments),
		"duration", result.Stats.AssignTime)

	if opts.Verify {
		start = time.Now()
		if err := rows.Verify(res); err != nil {
			return nil, err
		}
		result.Stats.VerifyTime = time.Since(start)
		logger.Debug("verified assignment", "duration", result.Stats.VerifyTime)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	start = time.Now()
	artifacts, err := r.Render(ctx, res, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(start)
	for _, data := range artifacts {
		result.Stats.Bytes += len(data)
	}

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"files", len(artifacts),
		"duration", result.Stats.RenderTime)

	if opts.DryRun {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 4: Write
	start = time.Now()
	files, err := r.Write(ctx, opts.OutputDir, artifacts)
	if err != nil {
		return nil, err
	}
	result.Files = files
	result.Stats.WriteTime = time.Since(start)

	logger.Debug("wrote outputs",
		"dir", opts.OutputDir,
		"files", len(files),
		"duration", result.Stats.WriteTime)

	return result, nil
}

// Load reads the intervals named by opts.Input.
func (r *Runner) Load(ctx context.Context, opts Options) ([]interval.Interval, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Input)
	start := time.Now()

	ivs, err := interval.Load(ctx, opts.Input)
	hooks.OnLoadComplete(ctx, opts.Input, len(ivs), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return ivs, nil
}

// Assign computes rows and segments, verifying them when opts.Verify is set.
func (r *Runner) Assign(ctx context.Context, ivs []interval.Interval, opts Options) (*rows.Result, error) {
	r.applyLogger(&opts)
	res, err := r.assign(ctx, ivs, opts.Logger)
	if err != nil {
		return nil, err
	}
	if opts.Verify {
		if err := rows.Verify(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (r *Runner) assign(ctx context.Context, ivs []interval.Interval, logger *log.Logger) (*rows.Result, error) {
	hooks := observability.Pipeline()
	hooks.OnAssignStart(ctx, len(ivs))
	start := time.Now()

	res, err := rows.Assign(ivs)
	if err != nil {
		hooks.OnAssignComplete(ctx, 0, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnAssignComplete(ctx, res.RowCount, len(res.Segments), time.Since(start), nil)
	if logger != nil && res.Reassigned > 0 {
		logger.Debug("tie-break moved rows", "reassigned", res.Reassigned)
	}
	return res, nil
}

// Render produces every artifact requested by opts.Formats in memory,
// keyed by output file name.
func (r *Runner) Render(ctx context.Context, res *rows.Result, opts Options) (map[string][]byte, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := r.render(res, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

func (r *Runner) render(res *rows.Result, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte)
	add := func(name string, data []byte) error {
		if _, dup := artifacts[name]; dup {
			return errors.New(errors.ErrCodeInvalidPath, "two outputs are named %q", name)
		}
		artifacts[name] = data
		return nil
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatTXT:
			rowData, segData, err := rowsio.RenderText(res)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "render text")
			}
			if err := add(opts.RowsFile, rowData); err != nil {
				return nil, err
			}
			if err := add(opts.SegmentsFile, segData); err != nil {
				return nil, err
			}
		case FormatSVG:
			svgOpts := []sink.SVGOption{
				sink.WithWidth(opts.Width),
				sink.WithRowHeight(opts.RowHeight),
				sink.WithTitle(opts.ArtifactName(FormatSVG)),
			}
			if opts.Labels {
				svgOpts = append(svgOpts, sink.WithLabels())
			}
			if err := add(opts.ArtifactName(FormatSVG), sink.RenderSVG(res, svgOpts...)); err != nil {
				return nil, err
			}
		case FormatJSON:
			data, err := sink.RenderJSON(res, sink.WithJSONSource(opts.Input), sink.WithJSONRows())
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "render json")
			}
			if err := add(opts.ArtifactName(FormatJSON), data); err != nil {
				return nil, err
			}
		default:
			return nil, ValidateFormat(format)
		}
	}
	return artifacts, nil
}

// Write moves artifacts into dir and returns the written paths.
func (r *Runner) Write(ctx context.Context, dir string, artifacts map[string][]byte) ([]string, error) {
	files, err := rowsio.Export(dir, artifacts)
	if err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	for _, path := range files {
		hooks.OnWrite(ctx, path, len(artifacts[filepath.Base(path)]))
	}
	return files, nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
