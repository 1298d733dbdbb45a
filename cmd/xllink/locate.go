package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/xllink-go/pkg/xllink"
	"github.com/ukaji3/xllink-go/pkg/xllink/selection"
)

func (a *app) newLocateCmd() *cobra.Command {
	var row, col string
	cmd := &cobra.Command{
		Use:   "locate <table.csv>",
		Short: "Resolve row and column selectors against a table's placement",
		Long: `Resolve row and column selectors to the cells they cover once the table is
written with the current placement settings.

Selectors:
  :  or empty    whole axis
  @3, @-1        position
  @1:3           positions 1 and 2
  @0,2           bounding span of positions
  Mon            label (2024/Q1 for hierarchical labels)
  Mon:Weds       labels Mon through Weds
  Mon,Weds       bounding span of labels`,
		Example: `  xllink locate sales.csv --row Tues --col Fish
  xllink locate sales.csv --row @1:3 --col :`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.applyFlags(cmd)

			rowSel, err := selection.Parse(row)
			if err != nil {
				return fmt.Errorf("invalid row selector: %w", err)
			}
			colSel, err := selection.Parse(col)
			if err != nil {
				return fmt.Errorf("invalid column selector: %w", err)
			}

			frame, err := a.readFrame(args[0])
			if err != nil {
				return err
			}
			opts, err := a.config.Placement.Options()
			if err != nil {
				return err
			}
			opts.Logger = &a.log

			m, err := xllink.Locate(frame, opts.Options)
			if err != nil {
				return err
			}
			ref, err := m.Select(rowSel, colSel)
			if err != nil {
				return err
			}
			a.log.Debug().Stringer("row", rowSel).Stringer("col", colSel).Str("ref", ref.FormulaRef()).Msg("resolved selection")
			return a.emit(cmd, xllink.Describe(row, col, ref))
		},
	}

	cmd.Flags().StringVar(&row, "row", ":", "Row selector")
	cmd.Flags().StringVar(&col, "col", ":", "Column selector")
	placementFlags(cmd)
	inputFlags(cmd)
	return cmd
}
