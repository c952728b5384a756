package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/cronometer-cli/internal/analysis"
	"github.com/KaramelBytes/cronometer-cli/internal/render"
	"github.com/KaramelBytes/cronometer-cli/internal/table"
	"github.com/KaramelBytes/cronometer-cli/internal/utils"
)

var inspectSheet string

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show the columns of an export with their inferred types",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := utils.ExpandHome(args[0])
		if err != nil {
			return err
		}
		t, err := table.Load(path, table.LoadOptions{Sheet: inspectSheet})
		if err != nil {
			return err
		}
		profiles := analysis.Profile(t)
		rows := make([][]string, len(profiles))
		for i, p := range profiles {
			rng := ""
			if p.Kind == "numeric" {
				rng = fmt.Sprintf("%s … %s", render.FormatNumber(p.Min), render.FormatNumber(p.Max))
			}
			rows[i] = []string{p.Name, p.Kind, strconv.Itoa(p.NonNull), strconv.Itoa(p.Missing), rng}
		}
		title := fmt.Sprintf("%s (%d rows)", t.Name, t.Len())
		return render.Table(cmd.OutOrStdout(), title, []string{"Column", "Kind", "Non-null", "Missing", "Range"}, rows, tableWidth())
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectSheet, "sheet", "", "XLSX: sheet name to read (default first sheet)")
}
