package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/cronometer-cli/internal/config"
	"github.com/KaramelBytes/cronometer-cli/internal/nutrients"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set cronometer configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := settings()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "summary_path: %s\n", c.SummaryPath)
		fmt.Fprintf(out, "foods_path: %s\n", c.FoodsPath)
		fmt.Fprintf(out, "default_top: %d\n", c.DefaultTop)
		fmt.Fprintf(out, "per_column: %s\n", c.PerColumn)
		if c.ChartWidth > 0 {
			fmt.Fprintf(out, "chart_width: %d\n", c.ChartWidth)
		}
		if c.ChartHeight > 0 {
			fmt.Fprintf(out, "chart_height: %d\n", c.ChartHeight)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "summary_path":
			cfg.SummaryPath = val
		case "foods_path":
			cfg.FoodsPath = val
		case "default_top":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for default_top: %v", val)
			}
			cfg.DefaultTop = i
		case "per_column":
			col, err := nutrients.Normalize(val)
			if err != nil {
				return err
			}
			cfg.PerColumn = col
		case "chart_width", "chart_height":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for %s: %v", key, val)
			}
			if strings.HasSuffix(key, "width") {
				cfg.ChartWidth = i
			} else {
				cfg.ChartHeight = i
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
