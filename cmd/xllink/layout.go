package main

import (
	"github.com/spf13/cobra"

	"github.com/ukaji3/xllink-go/pkg/xllink"
	"github.com/ukaji3/xllink-go/pkg/xllink/layout"
)

func (a *app) newLayoutCmd() *cobra.Command {
	var (
		rows, cols                int
		indexLevels, headerLevels int
	)
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Derive the ranges a table of the given shape occupies",
		Example: `  xllink layout --rows 4 --cols 4
  xllink layout --rows 10 --cols 3 --start-row 4 --start-col 8 --header-levels 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.applyFlags(cmd)
			p := a.config.Placement
			l, err := layout.Derive(layout.Params{
				Sheet:        p.Sheet,
				StartRow:     p.StartRow,
				StartCol:     p.StartCol,
				Rows:         rows,
				Cols:         cols,
				IndexLevels:  indexLevels,
				HeaderLevels: headerLevels,
				WriteHeader:  p.WriteHeader,
				WriteIndex:   p.WriteIndex,
				IndexLabel:   p.IndexLabel != "",
			})
			if err != nil {
				return err
			}
			return a.emit(cmd, xllink.PlacementOf(l))
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&rows, "rows", 0, "Number of data rows")
	flags.IntVar(&cols, "cols", 0, "Number of data columns")
	flags.IntVar(&indexLevels, "index-levels", 1, "Number of row-label columns")
	flags.IntVar(&headerLevels, "header-levels", 1, "Number of column-label rows")
	_ = cmd.MarkFlagRequired("rows")
	_ = cmd.MarkFlagRequired("cols")
	placementFlags(cmd)
	return cmd
}
