// Package main provides the entry point for the BetSync limit-risk analyzer.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/betsync/internal/config"
	"github.com/yourusername/betsync/internal/ingest"
	loggerpkg "github.com/yourusername/betsync/internal/logger"
	"github.com/yourusername/betsync/internal/models"
	"github.com/yourusername/betsync/internal/pipeline"
	"github.com/yourusername/betsync/internal/report"
	"github.com/yourusername/betsync/internal/server"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	logger     *logrus.Logger
	cfg        *config.Config

	inputPath  string
	outputPath string
	useSample  bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")

	analyzeCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to bet history CSV ('-' for stdin)")
	analyzeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Optional path for a JSON export of the result")
	analyzeCmd.Flags().BoolVar(&useSample, "sample", false, "Analyze the built-in sample dataset")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "betsync",
	Short: "Heuristic limit-risk scoring for bet histories",
	Long: `betsync ingests a bettor's wager history and computes a heuristic
"risk of being limited" score, flagging betting patterns that look
statistically sharp to sportsbooks.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		logger = loggerpkg.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a bet history CSV and print the limit-risk report",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := readInput()
		if err != nil {
			return err
		}

		analyzer := pipeline.NewAnalyzer(cfg.Scoring, logger)
		result, err := analyzer.Run(records)
		if err != nil {
			return err
		}

		fmt.Print(report.GenerateConsoleReport(result))

		if outputPath != "" {
			if err := report.ExportJSON(result, outputPath); err != nil {
				return fmt.Errorf("failed to export result: %w", err)
			}
			logger.WithField("path", outputPath).Info("Result exported")
		}
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the stateless HTTP analyze service",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := server.New(cfg, logger)
		return srv.ListenAndServe(ctx)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("betsync %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	loaded, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if err := config.Validate(loaded); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = loaded
	return nil
}

// readInput resolves the analyze input: the bundled sample, stdin, or a file.
func readInput() ([]models.WagerRecord, error) {
	if useSample {
		return ingest.Read(strings.NewReader(ingest.SampleCSV))
	}
	if inputPath == "" {
		return nil, fmt.Errorf("--input is required (or pass --sample)")
	}
	if inputPath == "-" {
		return ingest.Read(os.Stdin)
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	return ingest.Read(f)
}
