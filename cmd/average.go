package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/cronometer-cli/internal/analysis"
	"github.com/KaramelBytes/cronometer-cli/internal/filter"
	"github.com/KaramelBytes/cronometer-cli/internal/render"
)

var (
	avgSummary      string
	avgSheet        string
	avgCompleteOnly bool
	avgUnder        string
	avgAbove        string
	avgSince        string
	avgJSON         bool
	avgOutput       string
)

var averageCmd = &cobra.Command{
	Use:   "average",
	Short: "Average daily intake of each tracked nutrient",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		under, above, err := calorieBounds(avgUnder, avgAbove)
		if err != nil {
			return err
		}
		data, err := loadExport(avgSummary, "summary", settings().SummaryPath, avgSheet)
		if err != nil {
			return err
		}
		filtered, err := filter.Apply(data, filter.Options{
			CompleteOnly: avgCompleteOnly,
			Under:        under,
			Above:        above,
			Since:        avgSince,
			DateField:    filter.SummaryDate,
		})
		if err != nil {
			return err
		}
		logger.Debug("filters applied", "rows", filtered.Len(), "dropped", data.Len()-filtered.Len())

		avgs := analysis.TotalAverage(filtered)
		return emit(cmd, avgOutput, func(w io.Writer) error {
			if avgJSON {
				return render.JSON(w, avgs)
			}
			return render.AveragesTable(w, "Averages", avgs, tableWidth())
		})
	},
}

func init() {
	rootCmd.AddCommand(averageCmd)
	averageCmd.Flags().StringVar(&avgSummary, "summary", "", "path to dailysummary.csv")
	averageCmd.Flags().StringVar(&avgSheet, "sheet", "", "XLSX: sheet name to read (default first sheet)")
	averageCmd.Flags().BoolVar(&avgCompleteOnly, "complete-only", false, "calculate using complete days only")
	averageCmd.Flags().StringVar(&avgUnder, "disregard-under", "", "disregard days at or under N calories")
	averageCmd.Flags().StringVar(&avgAbove, "disregard-above", "", "disregard days at or over N calories")
	averageCmd.Flags().StringVar(&avgSince, "since", "", "calculate using days since (YYYY-MM-DD)")
	averageCmd.Flags().BoolVar(&avgJSON, "json", false, "return json output")
	averageCmd.Flags().StringVarP(&avgOutput, "output", "o", "", "optional path to write the report")
}
