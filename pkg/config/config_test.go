package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/drawrows/pkg/errors"
	"github.com/matzehuels/drawrows/pkg/pipeline"
)

const sample = `
output_dir = "out"
rows_file = "rows.txt"
segments_file = "segs.txt"
formats = ["txt", "svg"]
verify = true

[render]
width = 1000
row_height = 14
labels = true
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.OutputDir != "out" || cfg.RowsFile != "rows.txt" || cfg.SegmentsFile != "segs.txt" {
		t.Errorf("paths = %+v", cfg)
	}
	if len(cfg.Formats) != 2 || cfg.Formats[1] != "svg" {
		t.Errorf("Formats = %v", cfg.Formats)
	}
	if !cfg.Verify {
		t.Error("Verify = false")
	}
	if cfg.Render != (Render{Width: 1000, RowHeight: 14, Labels: true}) {
		t.Errorf("Render = %+v", cfg.Render)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.Code
		msg  string
	}{
		{"syntax", "formats = [", errors.ErrCodeInvalidInput, "parse config"},
		{"unknown key", "colour = \"red\"\n[render]\nzoom = 2", errors.ErrCodeInvalidInput, "colour, render.zoom"},
		{"bad format", `formats = ["png"]`, errors.ErrCodeInvalidFormat, "png"},
		{"negative width", "[render]\nwidth = -5", errors.ErrCodeInvalidInput, "positive"},
		{"path in name", `rows_file = "../rows.txt"`, errors.ErrCodeInvalidPath, "separators"},
		{"wrong type", `verify = "yes"`, errors.ErrCodeInvalidInput, "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, tt.code) {
				t.Fatalf("err = %v, want code %s", err, tt.code)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("err = %v, want it to mention %q", err, tt.msg)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if cfg.OutputDir != "" || len(cfg.Formats) != 0 || cfg.Verify {
		t.Errorf("empty config = %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawrows.toml")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeResourceUnavailable) {
		t.Errorf("missing file err = %v, want RESOURCE_UNAVAILABLE", err)
	}
}

func TestLoadKeepsCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte(`formats = ["gif"]`), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("err = %v, want path in message", err)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	// Nothing anywhere: empty config
	cfg, err := Find("")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty", cfg.Path)
	}

	// XDG location
	xdg := filepath.Join(dir, "xdg", "drawrows", "config.toml")
	if err := os.MkdirAll(filepath.Dir(xdg), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(xdg, []byte(`output_dir = "xdg-out"`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Find("")
	if err != nil || cfg.OutputDir != "xdg-out" {
		t.Fatalf("Find = %+v, %v; want xdg config", cfg, err)
	}

	// Local file wins over XDG
	if err := os.WriteFile(FileName, []byte(`output_dir = "local-out"`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Find("")
	if err != nil || cfg.OutputDir != "local-out" {
		t.Fatalf("Find = %+v, %v; want local config", cfg, err)
	}

	// Explicit path wins over both, and must exist
	if _, err := Find(filepath.Join(dir, "nope.toml")); err == nil {
		t.Error("explicit missing config should fail")
	}
}

func TestApply(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}

	opts := pipeline.Options{Input: "a.txt", OutputDir: "flag-out", Formats: []string{"json"}}
	cfg.Apply(&opts)

	if opts.OutputDir != "flag-out" {
		t.Errorf("OutputDir = %q, flags must win", opts.OutputDir)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != "json" {
		t.Errorf("Formats = %v, flags must win", opts.Formats)
	}
	if opts.RowsFile != "rows.txt" || opts.SegmentsFile != "segs.txt" {
		t.Errorf("files = %q, %q", opts.RowsFile, opts.SegmentsFile)
	}
	if opts.Width != 1000 || opts.RowHeight != 14 || !opts.Labels || !opts.Verify {
		t.Errorf("render opts = %+v", opts)
	}
}
