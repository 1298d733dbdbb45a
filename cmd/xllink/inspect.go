package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xllink-go/pkg/xllink/models"
	"github.com/ukaji3/xllink-go/pkg/xllink/parser"
)

func (a *app) newInspectCmd() *cobra.Command {
	var withCells bool
	cmd := &cobra.Command{
		Use:   "inspect <book.xlsx>",
		Short: "Report used ranges, charts and defined names of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			f, err := excelize.OpenFile(inputPath)
			if err != nil {
				return fmt.Errorf("failed to open workbook: %w", err)
			}
			defer f.Close()

			report, err := inspect(f, withCells)
			if err != nil {
				return err
			}
			charts, err := parser.ExtractCharts(inputPath)
			if err != nil {
				return err
			}
			for sheet, sc := range charts {
				sr := report.Sheets[sheet]
				sr.Charts = sc
				report.Sheets[sheet] = sr
			}
			report.BookName = filepath.Base(inputPath)
			a.log.Debug().Str("book", inputPath).Int("sheets", len(report.Sheets)).Int("names", len(report.Names)).Msg("inspected workbook")
			return a.emit(cmd, report)
		},
	}
	cmd.Flags().BoolVar(&withCells, "cells", false, "Include non-empty cell values")
	return cmd
}

func inspect(f *excelize.File, withCells bool) (*models.WorkbookReport, error) {
	report := &models.WorkbookReport{
		Sheets: make(map[string]models.SheetReport),
		Names:  parser.ExtractDefinedRanges(f),
	}
	printAreas := parser.ExtractPrintAreas(f)

	for _, sheet := range f.GetSheetList() {
		var sr models.SheetReport

		used, ok, err := parser.DetectBounds(f, sheet)
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheet, err)
		}
		if ok {
			sr.UsedRange = used.Address()
		}

		tables, err := parser.DetectTables(f, sheet, parser.DefaultTableParams())
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheet, err)
		}
		for _, t := range tables {
			sr.TableCandidates = append(sr.TableCandidates, t.Address())
		}
		for _, area := range printAreas[sheet] {
			sr.PrintAreas = append(sr.PrintAreas, area.Address())
		}

		if withCells {
			if sr.Rows, err = parser.ExtractCells(f, sheet); err != nil {
				return nil, fmt.Errorf("sheet %s: %w", sheet, err)
			}
		}
		report.Sheets[sheet] = sr
	}
	return report, nil
}
