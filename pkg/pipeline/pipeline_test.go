package pipeline

import (
	"testing"

	"github.com/matzehuels/drawrows/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"txt", false},
		{"svg", false},
		{"json", false},
		{"png", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"txt", "svg"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Input: "data/regions.txt"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}

	if opts.OutputDir != "data" {
		t.Errorf("OutputDir = %q, want data", opts.OutputDir)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatTXT {
		t.Errorf("Formats = %v, want [txt]", opts.Formats)
	}
	if opts.RowsFile != "PartA.txt" || opts.SegmentsFile != "PartB.txt" {
		t.Errorf("files = %q, %q", opts.RowsFile, opts.SegmentsFile)
	}
	if opts.Width != DefaultWidth || opts.RowHeight != DefaultRowHeight {
		t.Errorf("size = %v x %v", opts.Width, opts.RowHeight)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	// Idempotent
	opts.Formats = []string{"bogus"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call should be a no-op, got %v", err)
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"no input", Options{}, errors.ErrCodeInvalidInput},
		{"bad format", Options{Input: "a.txt", Formats: []string{"pdf"}}, errors.ErrCodeInvalidFormat},
		{"same names", Options{Input: "a.txt", RowsFile: "out.txt", SegmentsFile: "out.txt"}, errors.ErrCodeInvalidPath},
		{"nested name", Options{Input: "a.txt", RowsFile: "sub/rows.txt"}, errors.ErrCodeInvalidPath},
		{"negative width", Options{Input: "a.txt", Width: -1}, errors.ErrCodeInvalidInput},
		{"control char", Options{Input: "a\x00.txt"}, errors.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestSameNamesAllowedWithoutText(t *testing.T) {
	opts := Options{Input: "a.txt", Formats: []string{"svg"}, RowsFile: "x", SegmentsFile: "x"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("rows/segments names only matter for txt output: %v", err)
	}
}

func TestArtifactName(t *testing.T) {
	tests := []struct {
		input, format, want string
	}{
		{"regions.txt", "svg", "regions.svg"},
		{"dir/regions.txt", "json", "regions.json"},
		{"regions", "svg", "regions.svg"},
		{"archive.tar.gz", "svg", "archive.tar.svg"},
		{".hidden", "svg", ".hidden.svg"},
	}

	for _, tt := range tests {
		opts := Options{Input: tt.input}
		if got := opts.ArtifactName(tt.format); got != tt.want {
			t.Errorf("ArtifactName(%q, %q) = %q, want %q", tt.input, tt.format, got, tt.want)
		}
	}
}

func TestStatsTotal(t *testing.T) {
	s := Stats{LoadTime: 1, AssignTime: 2, VerifyTime: 3, RenderTime: 4, WriteTime: 5}
	if s.Total() != 15 {
		t.Errorf("Total() = %v, want 15", s.Total())
	}
}
