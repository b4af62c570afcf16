// Package pipeline runs the full limit-risk analysis pass over one upload.
package pipeline

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/betsync/internal/analysis"
	"github.com/yourusername/betsync/internal/clean"
	"github.com/yourusername/betsync/internal/config"
	"github.com/yourusername/betsync/internal/models"
	"github.com/yourusername/betsync/internal/risk"
)

// topMarketCount bounds the market breakdown handed to chart rendering.
const topMarketCount = 10

// Result is the complete output of one analysis pass: everything the
// presentation layer needs to render metrics, score, recommendations and
// distribution charts. Nothing in it outlives the invocation.
type Result struct {
	RunID       uuid.UUID `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	TotalRows   int `json:"total_rows"`
	DroppedRows int `json:"dropped_rows"`

	Metrics models.AggregateMetrics `json:"metrics"`
	Profile models.RiskProfile      `json:"profile"`

	Records    models.Dataset         `json:"records"`
	TopMarkets []analysis.MarketCount `json:"top_markets"`
}

// Analyzer wires the cleaner, metrics engine, scorer and recommendation
// engine into one strictly one-directional pass. Stateless: safe to share,
// every Run is an isolated computation.
type Analyzer struct {
	scoring config.ScoringConfig
	cleaner *clean.Cleaner
	logger  *logrus.Logger
}

// NewAnalyzer creates an analyzer with the given scoring heuristics.
func NewAnalyzer(scoring config.ScoringConfig, logger *logrus.Logger) *Analyzer {
	return &Analyzer{
		scoring: scoring,
		cleaner: clean.NewCleaner(logger),
		logger:  logger,
	}
}

// Run executes raw records → cleaned dataset → aggregate metrics → risk
// profile → recommendations. If cleaning drops every row the pass halts with
// models.ErrNoValidRows before any statistics run.
func (a *Analyzer) Run(records []models.WagerRecord) (*Result, error) {
	dataset, dropped := a.cleaner.Clean(records)
	if len(dataset) == 0 {
		return nil, models.ErrNoValidRows
	}

	metrics := analysis.Compute(dataset)
	profile := risk.Score(metrics, a.scoring)

	result := &Result{
		RunID:       uuid.New(),
		GeneratedAt: time.Now().UTC(),
		TotalRows:   len(records),
		DroppedRows: dropped,
		Metrics:     metrics,
		Profile:     profile,
		Records:     dataset,
		TopMarkets:  analysis.TopMarkets(dataset, topMarketCount),
	}

	a.logger.WithFields(logrus.Fields{
		"run_id":       result.RunID,
		"total_rows":   result.TotalRows,
		"dropped_rows": result.DroppedRows,
		"score":        profile.Score,
	}).Info("Analysis completed")

	return result, nil
}
