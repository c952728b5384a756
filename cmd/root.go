package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/cronometer-cli/internal/config"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "cronometer",
		Level:  log.WarnLevel,
	})
)

var rootCmd = &cobra.Command{
	Use:   "cronometer",
	Short: "Analyze your Cronometer nutrition exports",
	Long: `cronometer reads the daily summary and servings CSV exports from Cronometer
and reports average nutrient intake, nutrient trends over time, and the foods
that deliver the most of a nutrient per calorie.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.cronometer/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: analysis commands fall back to settings() defaults
		logger.Warn("failed to load config", "err", err)
		cfg = nil
		return
	}
	cfg = c
	logger.Debug("config loaded", "summary_path", cfg.SummaryPath, "foods_path", cfg.FoodsPath, "default_top", cfg.DefaultTop)
}

func defaultConfig() *cfgpkg.Global {
	return &cfgpkg.Global{DefaultTop: 5, PerColumn: "Energy (kcal)"}
}

// settings returns the loaded configuration, or defaults when none was loaded.
func settings() *cfgpkg.Global {
	if cfg == nil {
		return defaultConfig()
	}
	return cfg
}
