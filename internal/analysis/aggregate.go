// Package analysis computes aggregate statistics over a cleaned dataset.
package analysis

import (
	"math"
	"sort"

	"github.com/yourusername/betsync/internal/models"
)

// stakeEpsilon guards the coefficient-of-variation denominator when every
// stake is identical.
const stakeEpsilon = 1e-9

// Compute derives the aggregate metrics for one dataset. The caller
// guarantees the dataset is non-empty; the pipeline halts on empty datasets
// before reaching this point.
func Compute(dataset models.Dataset) models.AggregateMetrics {
	clv := make([]float64, len(dataset))
	stakes := make([]float64, len(dataset))
	leads := make([]float64, len(dataset))
	markets := make([]string, len(dataset))
	books := make([]string, len(dataset))

	positive := 0
	for i, rec := range dataset {
		clv[i] = rec.CLVPercent
		stakes[i] = rec.Stake
		leads[i] = rec.LeadHours
		markets[i] = rec.MarketType
		books[i] = rec.Book
		if rec.CLVPercent > 0 {
			positive++
		}
	}

	return models.AggregateMetrics{
		AvgCLV:     mean(clv),
		PosCLVRate: float64(positive) / float64(len(dataset)),
		StakeCV:    stddevSample(stakes) / (mean(stakes) + stakeEpsilon) * 100.0,
		MarketHHI:  Herfindahl(markets),
		BookHHI:    Herfindahl(books),
		LeadMean:   mean(leads),
		LeadStd:    stddevSample(leads),
	}
}

// Herfindahl returns the sum of squared category shares for a categorical
// column: 1.0 for a single category, 1/N for N evenly spread categories.
// Empty values count as their own category rather than being excluded.
func Herfindahl(values []string) float64 {
	if len(values) == 0 {
		return 0
	}

	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	total := float64(len(values))
	hhi := 0.0
	for _, n := range counts {
		share := float64(n) / total
		hhi += share * share
	}
	return hhi
}

// MarketCount pairs a market type with its bet count, for the presentation
// layer's top-markets chart.
type MarketCount struct {
	MarketType string `json:"market_type"`
	Count      int    `json:"count"`
}

// TopMarkets returns the n most frequent market types, ordered by count
// descending with ties broken by name for stable output.
func TopMarkets(dataset models.Dataset, n int) []MarketCount {
	counts := make(map[string]int)
	for _, rec := range dataset {
		counts[rec.MarketType]++
	}

	ranked := make([]MarketCount, 0, len(counts))
	for market, count := range counts {
		ranked = append(ranked, MarketCount{MarketType: market, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].MarketType < ranked[j].MarketType
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddevSample uses the N-1 denominator. A single observation has no sample
// variance; 0 keeps the downstream scoring total and finite.
func stddevSample(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	variance := 0.0
	for _, v := range values {
		diff := v - m
		variance += diff * diff
	}
	variance /= float64(len(values) - 1)
	return math.Sqrt(variance)
}
