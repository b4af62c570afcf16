// Package risk maps aggregate betting metrics to a limit-risk profile.
package risk

import (
	"math"

	"github.com/yourusername/betsync/internal/config"
	"github.com/yourusername/betsync/internal/models"
)

// Score maps the aggregate metrics onto seven [0,1] sub-risks using the
// configured heuristic bands and combines them into the weighted 0-100
// composite, rounded to one decimal. Pure and total: defined for every
// finite metrics input, no error path.
func Score(m models.AggregateMetrics, cfg config.ScoringConfig) models.RiskProfile {
	b := cfg.Bands

	sub := models.SubRisks{
		CLV:      clamp01((m.AvgCLV - b.CLVFloor) / b.CLVSpan),
		PosCLV:   clamp01((m.PosCLVRate - b.PosCLVFloor) / b.PosCLVSpan),
		Stake:    clamp01((b.StakeCVCeiling - math.Min(m.StakeCV, b.StakeCVCap)) / b.StakeCVCeiling),
		Market:   clamp01((m.MarketHHI - b.MarketHHIFloor) / b.MarketHHISpan),
		Book:     clamp01((m.BookHHI - b.BookHHIFloor) / b.BookHHISpan),
		LeadMean: clamp01((m.LeadMean - b.LeadMeanFloor) / b.LeadMeanSpan),
		LeadStd:  clamp01((b.LeadStdCeiling - math.Min(m.LeadStd, b.LeadStdCap)) / b.LeadStdCeiling),
	}

	w := cfg.Weights
	composite := w.CLV*sub.CLV +
		w.PosCLV*sub.PosCLV +
		w.Stake*sub.Stake +
		w.Market*sub.Market +
		w.Book*sub.Book +
		w.LeadMean*sub.LeadMean +
		w.LeadStd*sub.LeadStd

	profile := models.RiskProfile{
		Score:    math.Round(100.0*composite*10) / 10,
		SubRisks: sub,
	}
	profile.Recommendations = Recommendations(profile, cfg.RecommendationThreshold)

	return profile
}

func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
