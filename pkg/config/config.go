// Package config loads drawrows settings from TOML files.
//
// A config file sets defaults for the pipeline; command-line flags always
// win over it. Example:
//
//	output_dir = "out"
//	rows_file = "PartA.txt"
//	segments_file = "PartB.txt"
//	formats = ["txt", "svg"]
//	verify = true
//
//	[render]
//	width = 1000
//	row_height = 14
//	labels = true
//
// [Find] looks for a file in this order: an explicit path, ./drawrows.toml,
// then $XDG_CONFIG_HOME/drawrows/config.toml (~/.config when unset).
package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/drawrows/pkg/errors"
	"github.com/matzehuels/drawrows/pkg/pipeline"
)

// FileName is the project-local config file name.
const FileName = "drawrows.toml"

const appName = "drawrows"

// Config mirrors the TOML document.
type Config struct {
	OutputDir    string   `toml:"output_dir"`
	RowsFile     string   `toml:"rows_file"`
	SegmentsFile string   `toml:"segments_file"`
	Formats      []string `toml:"formats"`
	Verify       bool     `toml:"verify"`
	Render       Render   `toml:"render"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

// Render holds drawing settings.
type Render struct {
	Width     float64 `toml:"width"`
	RowHeight float64 `toml:"row_height"`
	Labels    bool    `toml:"labels"`
}

// Parse decodes a TOML document. Unknown keys are rejected so typos do not
// pass silently.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads and decodes the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResourceUnavailable, err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "config %s", path)
	}
	cfg.Path = path
	return cfg, nil
}

// Find resolves and loads the config file. An explicit path must exist;
// missing default locations yield an empty Config.
func Find(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	for _, path := range searchPaths() {
		cfg, err := Load(path)
		if err == nil {
			return cfg, nil
		}
		var e *errors.Error
		if stderrors.As(err, &e) && stderrors.Is(e.Cause, os.ErrNotExist) {
			continue
		}
		return nil, err
	}
	return &Config{}, nil
}

func searchPaths() []string {
	paths := []string{FileName}
	if dir, err := configDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "config.toml"))
	}
	return paths
}

// configDir returns the config directory using XDG standard (~/.config/drawrows/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Validate checks value ranges and formats.
func (c *Config) Validate() error {
	if err := pipeline.ValidateFormats(c.Formats); err != nil {
		return err
	}
	if c.Render.Width < 0 || c.Render.RowHeight < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "render width and row_height must be positive")
	}
	for _, name := range []string{c.RowsFile, c.SegmentsFile} {
		if name == "" {
			continue
		}
		if err := errors.ValidateFilename(name); err != nil {
			return err
		}
	}
	return nil
}

// Apply fills unset fields of opts from the config. Fields already set on
// opts (from flags) are kept.
func (c *Config) Apply(opts *pipeline.Options) {
	if opts.OutputDir == "" {
		opts.OutputDir = c.OutputDir
	}
	if opts.RowsFile == "" {
		opts.RowsFile = c.RowsFile
	}
	if opts.SegmentsFile == "" {
		opts.SegmentsFile = c.SegmentsFile
	}
	if len(opts.Formats) == 0 {
		opts.Formats = append([]string(nil), c.Formats...)
	}
	if opts.Width == 0 {
		opts.Width = c.Render.Width
	}
	if opts.RowHeight == 0 {
		opts.RowHeight = c.Render.RowHeight
	}
	opts.Labels = opts.Labels || c.Render.Labels
	opts.Verify = opts.Verify || c.Verify
}
