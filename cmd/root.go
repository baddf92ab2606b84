package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/chrisdamba/cafedatasim/internal/models"
	"github.com/chrisdamba/cafedatasim/internal/simulator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "cafedatasim",
	Short: "Generates synthetic sales history for a cafe",
	Long:  `cafedatasim produces a deterministic, seeded history of cafe orders, order line items and an inventory snapshot, shaped by daily, hourly, peak-day and semester demand patterns.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(v, cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := InitLogger(cfg.LogLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting log level: %v\n", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		var progress io.Writer
		if cfg.Progress {
			progress = os.Stderr
		}
		result, err := simulator.Run(ctx, cfg, progress)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating data: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Wrote files to %s\n", result.OutputPath)
		fmt.Printf("Peak days used: %s\n", strings.Join(result.PeakDays, ", "))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON or YAML)")

	rootCmd.Flags().Int("weeks", 56, "Weeks of history to generate, ending on --today")
	rootCmd.Flags().Float64("beta", 1.0, "Sales scale factor")
	rootCmd.Flags().Int("peaks", 12, "Number of peak days to sample")
	rootCmd.Flags().String("today", "2025-09-24", "Last day of generated history (YYYY-MM-DD)")
	rootCmd.Flags().Int64("seed", 69, "Random seed")
	rootCmd.Flags().String("out", ".", "Output root directory")
	rootCmd.Flags().String("menu", "data/menu_items.csv", "Menu catalog CSV")
	rootCmd.Flags().String("ingredients", "data/ingredients.csv", "Ingredient catalog CSV")
	rootCmd.Flags().String("output-format", "csv", "Table format: csv, json or parquet")
	rootCmd.Flags().String("log-level", "INFO", "Log level")
	rootCmd.Flags().Bool("progress", false, "Show a progress bar while synthesizing orders")

	for key, flag := range map[string]string{
		"weeks":         "weeks",
		"beta":          "beta",
		"peaks":         "peaks",
		"today":         "today",
		"seed":          "seed",
		"out":           "out",
		"menu":          "menu",
		"ingredients":   "ingredients",
		"output_format": "output-format",
		"log_level":     "log-level",
		"progress":      "progress",
	} {
		cobra.CheckErr(v.BindPFlag(key, rootCmd.Flags().Lookup(flag)))
	}

	rootCmd.AddCommand(catalogCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
