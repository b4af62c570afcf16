// Package report renders analysis results for the console and for export.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yourusername/betsync/internal/pipeline"
)

// Risk band boundaries for the headline badge.
const (
	highBandFloor     = 66.0
	elevatedBandFloor = 40.0
)

// RiskBand maps a composite score onto the headline band shown next to it.
func RiskBand(score float64) string {
	switch {
	case score >= highBandFloor:
		return "high"
	case score >= elevatedBandFloor:
		return "elevated"
	default:
		return "low"
	}
}

// GenerateConsoleReport formats an analysis result for terminal output.
func GenerateConsoleReport(result *pipeline.Result) string {
	var builder strings.Builder
	builder.WriteString("Limit Risk Report\n")
	builder.WriteString("=================\n")
	builder.WriteString(fmt.Sprintf("Run ID: %s\n", result.RunID))
	builder.WriteString(fmt.Sprintf("Rows Analyzed: %d (%d dropped)\n", len(result.Records), result.DroppedRows))
	builder.WriteString(fmt.Sprintf("Limit Risk Score: %.1f/100 (%s)\n", result.Profile.Score, RiskBand(result.Profile.Score)))
	builder.WriteString(fmt.Sprintf("Avg CLV: %.2f%%\n", result.Metrics.AvgCLV))
	builder.WriteString(fmt.Sprintf("Bets Beating Close: %.1f%%\n", result.Metrics.PosCLVRate*100))
	builder.WriteString(fmt.Sprintf("Stake CV: %.2f%%\n", result.Metrics.StakeCV))
	builder.WriteString(fmt.Sprintf("Market HHI: %.3f\n", result.Metrics.MarketHHI))
	builder.WriteString(fmt.Sprintf("Book HHI: %.3f\n", result.Metrics.BookHHI))
	builder.WriteString(fmt.Sprintf("Lead Time: %.1fh mean, %.1fh std\n", result.Metrics.LeadMean, result.Metrics.LeadStd))
	builder.WriteString("Recommendations:\n")
	for _, rec := range result.Profile.Recommendations {
		builder.WriteString(fmt.Sprintf("  - %s\n", rec))
	}
	return builder.String()
}

// ExportJSON writes the full analysis result to a JSON file, creating parent
// directories as needed.
func ExportJSON(result *pipeline.Result, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	return os.WriteFile(outputPath, data, 0o644)
}
