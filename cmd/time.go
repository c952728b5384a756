package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/cronometer-cli/internal/analysis"
	"github.com/KaramelBytes/cronometer-cli/internal/filter"
	"github.com/KaramelBytes/cronometer-cli/internal/nutrients"
	"github.com/KaramelBytes/cronometer-cli/internal/render"
)

var (
	tmSummary      string
	tmSheet        string
	tmCompleteOnly bool
	tmSince        string
	tmNutrients    []string
)

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Daily intake of the given nutrients over time",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := nutrients.NormalizeAll(tmNutrients)
		if err != nil {
			return err
		}
		data, err := loadExport(tmSummary, "summary", settings().SummaryPath, tmSheet)
		if err != nil {
			return err
		}
		filtered, err := filter.Apply(data, filter.Options{
			CompleteOnly: tmCompleteOnly,
			Since:        tmSince,
			DateField:    filter.SummaryDate,
			Nutrients:    names,
		})
		if err != nil {
			return err
		}
		logger.Debug("filters applied", "rows", filtered.Len(), "nutrients", names)

		area := render.ChartArea(render.TerminalSize(), settings().ChartWidth, settings().ChartHeight)
		for _, n := range names {
			s := analysis.TimeSeries(filtered, n, filter.SummaryDate)
			if err := render.Chart(cmd.OutOrStdout(), s, area); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(timeCmd)
	timeCmd.Flags().StringVar(&tmSummary, "summary", "", "path to dailysummary.csv")
	timeCmd.Flags().StringVar(&tmSheet, "sheet", "", "XLSX: sheet name to read (default first sheet)")
	timeCmd.Flags().BoolVar(&tmCompleteOnly, "complete-only", false, "calculate using complete days only")
	timeCmd.Flags().StringVar(&tmSince, "since", "", "calculate using days since (YYYY-MM-DD)")
	timeCmd.Flags().StringArrayVar(&tmNutrients, "nutrient", nil, "nutrient to track (repeatable)")
	_ = timeCmd.MarkFlagRequired("nutrient")
}
