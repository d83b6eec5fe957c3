package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lipredict/internal/population"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show LinkedIn usage rates in the survey data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ds, err := population.Load(cfg.DatasetPath)
		if err != nil {
			return err
		}

		column, _ := cmd.Flags().GetString("by")
		tables, err := statsTables(ds, column)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%d respondents, %.1f%% use LinkedIn\n", ds.Len(), population.Overall(ds)*100)
		for _, tb := range tables {
			fmt.Fprintln(w)
			writeTable(w, tb)
		}
		return nil
	},
}

// statsTables aggregates every dimension, or only the one named by column.
func statsTables(ds *population.Dataset, column string) ([]population.Table, error) {
	if column == "" {
		return population.Aggregate(ds), nil
	}
	dim, ok := population.DimensionFor(column)
	if !ok {
		return nil, fmt.Errorf("unknown dimension %q (want one of %s)", column, strings.Join(dimensionColumns(), ", "))
	}
	return []population.Table{population.AggregateBy(ds, dim)}, nil
}

func dimensionColumns() []string {
	cols := make([]string, len(population.Dimensions))
	for i, d := range population.Dimensions {
		cols[i] = d.Column
	}
	return cols
}

func writeTable(w io.Writer, tb population.Table) {
	labelWidth := len(tb.Dimension.Axis)
	for _, g := range tb.Groups {
		labelWidth = max(labelWidth, len(g.Label))
	}

	fmt.Fprintln(w, tb.Dimension.Title)
	fmt.Fprintln(w, strings.Repeat("─", labelWidth+30))
	fmt.Fprintf(w, "%-*s  %6s  %8s\n", labelWidth, tb.Dimension.Axis, "Rows", "Usage")
	for _, g := range tb.Groups {
		fmt.Fprintf(w, "%-*s  %6d  %7.1f%%\n", labelWidth, g.Label, g.Count, g.Percent())
	}
	fmt.Fprintln(w, tb.Dimension.Caption)
}

func init() {
	statsCmd.Flags().String("by", "", "Only show one dimension: "+strings.Join(dimensionColumns(), ", "))
}
