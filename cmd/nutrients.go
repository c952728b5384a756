package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/cronometer-cli/internal/nutrients"
	"github.com/KaramelBytes/cronometer-cli/internal/render"
)

var nutrientsCmd = &cobra.Command{
	Use:   "nutrients",
	Short: "List nutrient names accepted by --nutrient and --per",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cols := nutrients.Canonical()
		rows := make([][]string, len(cols))
		for i, c := range cols {
			rows[i] = []string{c, strings.Join(nutrients.Aliases(c), ", ")}
		}
		return render.Table(cmd.OutOrStdout(), "", []string{"Column", "Aliases"}, rows, tableWidth())
	},
}

func init() {
	rootCmd.AddCommand(nutrientsCmd)
}
