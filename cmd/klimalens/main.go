package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/klimalens-org/klimalens/helpers"
	"github.com/klimalens-org/klimalens/report"
	"github.com/klimalens-org/klimalens/reshape"
)

// ============================================================================
// KLIMALENS CLI — CSV in, report view models out
// ============================================================================

const version = "0.1.0"

var (
	indicatorsPath string
	countriesPath  string
	specPath       string
	outPath        string
	format         string
	verbose        bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "klimalens",
	Short: "klimalens — World Bank indicator CSVs to report view models",
	Long: `klimalens loads a wide-format World Bank climate/energy indicator CSV and
an ISO country-code CSV, reshapes them into a long observation set, and
builds the report's chart, choropleth, and table view models as JSON.

Rendering the report (HTML, colors, map projections) is left to the
consuming renderer; klimalens only produces the data behind it.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&indicatorsPath, "indicators", "", "Path to the wide-format indicator CSV (required)")
	rootCmd.Flags().StringVar(&countriesPath, "countries", "", "Path to the ISO country-code CSV (required)")
	rootCmd.Flags().StringVar(&specPath, "spec", "", "Path to the YAML report spec (required)")
	rootCmd.Flags().StringVar(&outPath, "out", "", "Write the report JSON to a file instead of stdout")
	rootCmd.Flags().StringVar(&format, "format", "json", "Output format: json, pretty")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.MarkFlagRequired("indicators")
	rootCmd.MarkFlagRequired("countries")
	rootCmd.MarkFlagRequired("spec")
}

func run(cmd *cobra.Command, args []string) error {
	defer logger.Sync()

	specData, err := os.ReadFile(specPath)
	if err != nil {
		return fmt.Errorf("failed to read report spec: %w", err)
	}
	spec, err := report.ParseSpec(specData)
	if err != nil {
		return err
	}
	logger.Debug("Report spec loaded",
		zap.String("title", spec.Title),
		zap.Int("labels", len(spec.Labels)))

	indicatorData, err := os.ReadFile(indicatorsPath)
	if err != nil {
		return fmt.Errorf("failed to read indicator CSV: %w", err)
	}
	rows, err := helpers.ParseIndicatorCSV(indicatorData)
	if err != nil {
		return err
	}

	countryData, err := os.ReadFile(countriesPath)
	if err != nil {
		return fmt.Errorf("failed to read country CSV: %w", err)
	}
	meta, err := helpers.ParseCountryCSV(countryData)
	if err != nil {
		return err
	}

	obs := reshape.Load(rows, meta)
	logger.Info("Dataset loaded",
		zap.Int("indicatorRows", len(rows)),
		zap.Int("countries", len(meta)),
		zap.Int("observations", len(obs)))

	rep, err := report.Build(spec, obs)
	if err != nil {
		return err
	}

	var out []byte
	if format == "pretty" {
		out, err = json.MarshalIndent(rep, "", "  ")
	} else {
		out, err = json.Marshal(rep)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if outPath == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	logger.Info("Report written", zap.String("path", outPath))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
