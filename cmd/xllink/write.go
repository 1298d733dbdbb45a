package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xllink-go/pkg/xllink/models"
	"github.com/ukaji3/xllink-go/pkg/xllink/writer"
)

func (a *app) newWriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write <table.csv> <book.xlsx>",
		Short: "Write a CSV table to a workbook and report where it landed",
		Long: `Write a CSV table to a workbook at the configured placement. An existing
workbook is updated in place; the target sheet is created when missing.

A chart over the table and defined names for its parts can be added in the
same run.`,
		Example: `  xllink write sales.csv book.xlsx --start-row 4 --start-col 8
  xllink write sales.csv book.xlsx --chart line --chart-title Sales --names sales`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.applyFlags(cmd)
			a.applyChartFlags(cmd)
			return a.write(cmd, args[0], args[1])
		},
	}

	flags := cmd.Flags()
	flags.String("chart", "", fmt.Sprintf("Chart type to add %v", writer.ChartTypes()))
	flags.String("chart-title", "", "Chart title")
	flags.String("chart-cell", "", "Cell to anchor the chart at (default: right of the table)")
	flags.String("chart-orientation", "", "Series direction: columns or rows")
	flags.String("chart-rows", "", "Row selector for charted data")
	flags.String("chart-cols", "", "Column selector for charted data")
	flags.String("names", "", "Prefix for defined names of the data, index and columns")
	placementFlags(cmd)
	inputFlags(cmd)
	return cmd
}

func (a *app) applyChartFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	c := &a.config.Chart
	for name, dst := range map[string]*string{
		"chart":             &c.Type,
		"chart-title":       &c.Title,
		"chart-cell":        &c.Cell,
		"chart-orientation": &c.Orientation,
		"chart-rows":        &c.Rows,
		"chart-cols":        &c.Columns,
		"names":             &a.config.Names.Prefix,
	} {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
}

func (a *app) write(cmd *cobra.Command, csvPath, bookPath string) error {
	frame, err := a.readFrame(csvPath)
	if err != nil {
		return err
	}
	opts, err := a.config.Placement.Options()
	if err != nil {
		return err
	}
	opts.Logger = &a.log

	f, err := openOrCreate(bookPath)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := writer.WriteFrame(f, frame, opts)
	if err != nil {
		return err
	}
	report := models.WriteReport{
		BookName:  filepath.Base(bookPath),
		Placement: m.Placement(),
	}

	if a.config.Chart.Type != "" {
		spec, err := a.config.Chart.Spec()
		if err != nil {
			return err
		}
		if report.Chart, err = writer.AddChart(f, m, spec); err != nil {
			return err
		}
		a.log.Debug().Str("type", report.Chart.ChartType).Str("cell", report.Chart.Cell).Int("series", len(report.Chart.Series)).Msg("added chart")
	}

	if prefix := a.config.Names.Prefix; prefix != "" {
		if report.Names, err = writer.DefineNames(f, m, prefix); err != nil {
			return err
		}
	}

	if err := f.SaveAs(bookPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	a.log.Info().Str("book", bookPath).Str("data", report.Placement.DataRef).Msg("wrote table")
	return a.emit(cmd, report)
}

// openOrCreate opens the workbook at path, or starts a new one if the file
// does not exist.
func openOrCreate(path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err == nil {
		return f, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return excelize.NewFile(), nil
	}
	return nil, fmt.Errorf("failed to open workbook: %w", err)
}
