// Package main provides the CLI entry point for xllink.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ukaji3/xllink-go/internal/config"
	"github.com/ukaji3/xllink-go/pkg/xllink"
	"github.com/ukaji3/xllink-go/pkg/xllink/output"
)

type app struct {
	configPath string
	outputPath string
	pretty     bool
	verbose    bool

	config *config.Config
	log    zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "xllink",
		Short: "Map tables written to Excel sheets onto their cell coordinates",
		Long: `xllink works out which cells a table occupies when written to a sheet,
writes tables from CSV files, and resolves label selectors to cell ranges.

Commands:
  layout   Derive header, index and data ranges from a table shape.
  write    Write a CSV table to a workbook, with optional chart and names.
  locate   Resolve row and column selectors to cells.
  inspect  Report used ranges and defined names of a workbook.
  config   Write the effective placement config to a file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Placement config file (.yaml, .yml or .toml)")
	flags.StringVarP(&a.outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.BoolVar(&a.pretty, "pretty", false, "Pretty-print JSON output")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(
		a.newLayoutCmd(),
		a.newWriteCmd(),
		a.newLocateCmd(),
		a.newInspectCmd(),
		a.newConfigCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	level := zerolog.InfoLevel
	if a.verbose {
		level = zerolog.DebugLevel
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(level).
		With().Timestamp().Logger()

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.config = cfg
	if a.configPath != "" {
		a.log.Debug().Str("path", a.configPath).Msg("loaded config")
	}
	return nil
}

// emit writes v as JSON to the output file or the command's stdout.
func (a *app) emit(cmd *cobra.Command, v any) error {
	pretty := a.pretty || a.config.Output.Pretty
	if a.outputPath != "" {
		if err := output.WriteFile(a.outputPath, v, pretty); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	return output.Write(cmd.OutOrStdout(), v, pretty)
}

// placementFlags registers the flags that override the placement config.
func placementFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("sheet", "", "Target sheet name")
	flags.Int("start-row", 0, "Zero-based row of the top-left corner")
	flags.Int("start-col", 0, "Zero-based column of the top-left corner")
	flags.Bool("no-header", false, "Do not write column labels")
	flags.Bool("no-index", false, "Do not write row labels")
	flags.String("index-label", "", "Caption written above the index")
	flags.StringSlice("columns", nil, "Columns to place, in order (levels joined by /)")
	flags.String("match-mode", "", "Key matching for hierarchical labels: prefix or innermost")
}

// inputFlags registers the flags describing CSV input.
func inputFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Int("header-rows", 1, "Number of header rows in the CSV")
	flags.Int("index-cols", 1, "Number of index columns in the CSV")
}

// applyFlags copies explicitly set flags over the loaded config.
func (a *app) applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	p := &a.config.Placement
	in := &a.config.Input

	if flags.Changed("sheet") {
		p.Sheet, _ = flags.GetString("sheet")
	}
	if flags.Changed("start-row") {
		p.StartRow, _ = flags.GetInt("start-row")
	}
	if flags.Changed("start-col") {
		p.StartCol, _ = flags.GetInt("start-col")
	}
	if flags.Changed("no-header") {
		v, _ := flags.GetBool("no-header")
		p.WriteHeader = !v
	}
	if flags.Changed("no-index") {
		v, _ := flags.GetBool("no-index")
		p.WriteIndex = !v
	}
	if flags.Changed("index-label") {
		p.IndexLabel, _ = flags.GetString("index-label")
	}
	if flags.Changed("columns") {
		p.Columns, _ = flags.GetStringSlice("columns")
	}
	if flags.Changed("match-mode") {
		p.MatchMode, _ = flags.GetString("match-mode")
	}
	if flags.Changed("header-rows") {
		in.HeaderRows, _ = flags.GetInt("header-rows")
	}
	if flags.Changed("index-cols") {
		in.IndexCols, _ = flags.GetInt("index-cols")
	}
}

// readFrame reads a CSV table laid out as the input config describes.
func (a *app) readFrame(path string) (*xllink.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	frame, err := readRecords(file, a.config.Input)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rows, cols := frame.Shape()
	a.log.Debug().Str("path", path).Int("rows", rows).Int("cols", cols).Msg("read table")
	return frame, nil
}

func readRecords(r io.Reader, in config.InputConfig) (*xllink.Frame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	return xllink.FrameFromRecords(records, in.HeaderRows, in.IndexCols)
}
