// Package config loads placement settings for the xllink command from YAML
// or TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v2"

	"github.com/ukaji3/xllink-go/pkg/xllink"
	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
	"github.com/ukaji3/xllink-go/pkg/xllink/selection"
	"github.com/ukaji3/xllink-go/pkg/xllink/writer"
)

// ErrUnsupportedFormat indicates a config file with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config holds every setting the command reads from a file.
type Config struct {
	Input     InputConfig     `yaml:"input" toml:"input"`
	Placement PlacementConfig `yaml:"placement" toml:"placement"`
	Chart     ChartConfig     `yaml:"chart" toml:"chart"`
	Names     NamesConfig     `yaml:"names" toml:"names"`
	Output    OutputConfig    `yaml:"output" toml:"output"`
}

// InputConfig describes how a CSV table is laid out.
type InputConfig struct {
	HeaderRows int `yaml:"header_rows" toml:"header_rows"`
	IndexCols  int `yaml:"index_cols" toml:"index_cols"`
}

// PlacementConfig describes where a table is written.
type PlacementConfig struct {
	Sheet       string   `yaml:"sheet" toml:"sheet"`
	StartRow    int      `yaml:"start_row" toml:"start_row"`
	StartCol    int      `yaml:"start_col" toml:"start_col"`
	WriteHeader bool     `yaml:"write_header" toml:"write_header"`
	WriteIndex  bool     `yaml:"write_index" toml:"write_index"`
	IndexLabel  string   `yaml:"index_label" toml:"index_label"`
	Columns     []string `yaml:"columns,omitempty" toml:"columns,omitempty"`
	MatchMode   string   `yaml:"match_mode" toml:"match_mode"`
	MergeCells  bool     `yaml:"merge_cells" toml:"merge_cells"`
	BoldLabels  bool     `yaml:"bold_labels" toml:"bold_labels"`
}

// ChartConfig describes an optional chart. An empty Type means no chart.
type ChartConfig struct {
	Type        string `yaml:"type" toml:"type"`
	Title       string `yaml:"title" toml:"title"`
	Cell        string `yaml:"cell" toml:"cell"`
	Orientation string `yaml:"orientation" toml:"orientation"`
	Rows        string `yaml:"rows" toml:"rows"`
	Columns     string `yaml:"columns" toml:"columns"`
}

// NamesConfig describes optional defined names. An empty Prefix means none.
type NamesConfig struct {
	Prefix string `yaml:"prefix" toml:"prefix"`
}

// OutputConfig controls report output.
type OutputConfig struct {
	Pretty bool `yaml:"pretty" toml:"pretty"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			HeaderRows: 1,
			IndexCols:  1,
		},
		Placement: PlacementConfig{
			Sheet:       coord.DefaultSheet,
			WriteHeader: true,
			WriteIndex:  true,
			MatchMode:   selection.MatchPrefix.String(),
			MergeCells:  true,
			BoldLabels:  true,
		},
		Chart: ChartConfig{
			Orientation: "columns",
		},
	}
}

// Load reads the config file at path over the defaults. The format follows
// the extension: .yaml, .yml or .toml. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := Decode(data, filepath.Ext(path), config); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Decode parses data in the format named by ext into config.
func Decode(data []byte, ext string, config *Config) error {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		return yaml.UnmarshalStrict(data, config)
	case "toml":
		return toml.Unmarshal(data, config)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// Save writes config to path in the format its extension names.
func Save(config *Config, path string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	case ".toml":
		data, err = toml.Marshal(config)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Options converts the placement settings to writer options.
func (p PlacementConfig) Options() (writer.Options, error) {
	mode, err := selection.ParseMatchMode(p.MatchMode)
	if err != nil {
		return writer.Options{}, err
	}
	opts := writer.DefaultOptions()
	opts.Sheet = p.Sheet
	opts.StartRow = p.StartRow
	opts.StartCol = p.StartCol
	opts.WriteHeader = xllink.Bool(p.WriteHeader)
	opts.WriteIndex = xllink.Bool(p.WriteIndex)
	opts.IndexLabel = p.IndexLabel
	opts.MatchMode = mode
	opts.MergeCells = xllink.Bool(p.MergeCells)
	opts.BoldLabels = xllink.Bool(p.BoldLabels)
	for _, c := range p.Columns {
		opts.Columns = append(opts.Columns, selection.ParseLabel(c))
	}
	return opts, nil
}

// Spec converts the chart settings to a chart spec.
func (c ChartConfig) Spec() (writer.ChartSpec, error) {
	spec := writer.ChartSpec{
		Type:  c.Type,
		Title: c.Title,
		Cell:  c.Cell,
	}
	switch strings.ToLower(c.Orientation) {
	case "", "columns", "column":
		spec.Orientation = writer.ByColumn
	case "rows", "row":
		spec.Orientation = writer.ByRow
	default:
		return spec, fmt.Errorf("invalid chart orientation: %s (must be rows or columns)", c.Orientation)
	}

	var err error
	if spec.Rows, err = selection.Parse(c.Rows); err != nil {
		return spec, err
	}
	if spec.Columns, err = selection.Parse(c.Columns); err != nil {
		return spec, err
	}
	return spec, nil
}
