// Package clean normalizes raw wager rows into the analyzable dataset.
package clean

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/betsync/internal/models"
	"github.com/yourusername/betsync/internal/odds"
)

// Cleaner applies odds normalization, timestamp parsing and per-row
// derivations across a raw dataset, silently dropping unrecoverable rows.
type Cleaner struct {
	logger *logrus.Logger
}

// NewCleaner creates a cleaner. The logger is required.
func NewCleaner(logger *logrus.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean converts raw wager records into cleaned records, computing lead time
// and CLV per row. Rows with an invalid odds value, unparseable timestamp,
// non-numeric stake, or a non-finite derived value are dropped without error.
// The second return value is the number of rows dropped. The input is never
// mutated.
func (c *Cleaner) Clean(records []models.WagerRecord) (models.Dataset, int) {
	cleaned := make(models.Dataset, 0, len(records))
	dropped := 0

	for i, rec := range records {
		out, ok := c.cleanOne(rec)
		if !ok {
			dropped++
			c.logger.WithFields(logrus.Fields{
				"row":  i,
				"book": rec.Book,
			}).Debug("Dropped unrecoverable row")
			continue
		}
		cleaned = append(cleaned, out)
	}

	c.logger.WithFields(logrus.Fields{
		"total":   len(records),
		"cleaned": len(cleaned),
		"dropped": dropped,
	}).Info("Dataset cleaned")

	return cleaned, dropped
}

func (c *Cleaner) cleanOne(rec models.WagerRecord) (models.CleanedRecord, bool) {
	placed, err := odds.Normalize(rec.OddsPlaced)
	if err != nil {
		return models.CleanedRecord{}, false
	}

	closing, err := odds.Normalize(rec.ClosingOdds)
	if err != nil {
		return models.CleanedRecord{}, false
	}

	stake, ok := parseStake(rec.Stake)
	if !ok {
		return models.CleanedRecord{}, false
	}

	betTime, err := ParseTime(rec.BetTime)
	if err != nil {
		return models.CleanedRecord{}, false
	}

	eventTime, err := ParseTime(rec.EventTime)
	if err != nil {
		return models.CleanedRecord{}, false
	}

	// Negative lead times are kept: a bet recorded after event start is the
	// uploader's problem, not a parse failure.
	leadHours := eventTime.Sub(betTime).Hours()
	clvPercent := (closing - placed) / placed * 100.0

	if !isFinite(leadHours) || !isFinite(clvPercent) {
		return models.CleanedRecord{}, false
	}

	return models.CleanedRecord{
		Book:               rec.Book,
		Sport:              rec.Sport,
		MarketType:         rec.MarketType,
		Result:             rec.Result,
		OddsPlacedDecimal:  placed,
		ClosingOddsDecimal: closing,
		Stake:              stake,
		BetTime:            betTime,
		EventTime:          eventTime,
		LeadHours:          leadHours,
		CLVPercent:         clvPercent,
	}, true
}

// parseStake reads a stake amount through the decimal money type before
// handing the statistics a float64.
func parseStake(raw string) (float64, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}

	f := d.InexactFloat64()
	if !isFinite(f) {
		return 0, false
	}
	return f, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
