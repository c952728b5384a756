package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/cronometer-cli/internal/analysis"
	"github.com/KaramelBytes/cronometer-cli/internal/filter"
	"github.com/KaramelBytes/cronometer-cli/internal/nutrients"
	"github.com/KaramelBytes/cronometer-cli/internal/render"
)

var (
	denFoods     string
	denSheet     string
	denSince     string
	denNutrients []string
	denTop       int
	denPer       string
	denJSON      bool
	denOutput    string
)

var densityCmd = &cobra.Command{
	Use:   "density",
	Short: "Top N foods by nutrient density",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := nutrients.NormalizeAll(denNutrients)
		if err != nil {
			return err
		}
		top := settings().DefaultTop
		if cmd.Flags().Changed("top") {
			top = denTop
		}
		per := settings().PerColumn
		if denPer != "" {
			if per, err = nutrients.Normalize(denPer); err != nil {
				return err
			}
		}
		data, err := loadExport(denFoods, "foods", settings().FoodsPath, denSheet)
		if err != nil {
			return err
		}
		filtered, err := filter.Apply(data, filter.Options{Since: denSince, DateField: filter.ServingDate})
		if err != nil {
			return err
		}
		logger.Debug("filters applied", "rows", filtered.Len(), "top", top, "per", per)

		rankings := make([]analysis.Ranking, len(names))
		for i, n := range names {
			rankings[i] = analysis.NutrientDensity(filtered, n, per, top)
		}
		return emit(cmd, denOutput, func(w io.Writer) error {
			for _, r := range rankings {
				var err error
				if denJSON {
					err = render.JSON(w, r)
				} else {
					err = render.RankingTable(w, r.Nutrient, r, tableWidth())
				}
				if err != nil {
					return err
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(densityCmd)
	densityCmd.Flags().StringVar(&denFoods, "foods", "", "path to servings.csv")
	densityCmd.Flags().StringVar(&denSheet, "sheet", "", "XLSX: sheet name to read (default first sheet)")
	densityCmd.Flags().StringVar(&denSince, "since", "", "calculate using days since (YYYY-MM-DD)")
	densityCmd.Flags().StringArrayVar(&denNutrients, "nutrient", nil, "nutrient to rank by (repeatable)")
	densityCmd.Flags().IntVar(&denTop, "top", 5, "number of items (default from config, 5)")
	densityCmd.Flags().StringVar(&denPer, "per", "", "reference column for the ratio (default from config, energy)")
	densityCmd.Flags().BoolVar(&denJSON, "json", false, "return json output")
	densityCmd.Flags().StringVarP(&denOutput, "output", "o", "", "optional path to write the report")
	_ = densityCmd.MarkFlagRequired("nutrient")
}
