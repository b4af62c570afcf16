// Package models defines the core domain types for the BetSync analyzer.
package models

import "time"

// WagerRecord is one raw row from an uploaded bet history. All fields are
// kept as read; normalization happens in the cleaner, never here.
type WagerRecord struct {
	Book        string `json:"book"`
	Sport       string `json:"sport"`
	MarketType  string `json:"market_type"`
	OddsPlaced  string `json:"odds_placed"`
	ClosingOdds string `json:"closing_odds"`
	Stake       string `json:"stake"`
	BetTime     string `json:"bet_time"`
	EventTime   string `json:"event_time"`
	Result      string `json:"result"` // unused by scoring, carried through
}

// CleanedRecord is a WagerRecord that survived normalization. It exists only
// when both odds, the stake, both timestamps and the derived values are
// finite, defined numbers.
type CleanedRecord struct {
	Book       string `json:"book"`
	Sport      string `json:"sport"`
	MarketType string `json:"market_type"`
	Result     string `json:"result"`

	OddsPlacedDecimal  float64 `json:"odds_placed_decimal"`
	ClosingOddsDecimal float64 `json:"closing_odds_decimal"`
	Stake              float64 `json:"stake"`

	BetTime   time.Time `json:"bet_time"`
	EventTime time.Time `json:"event_time"`

	// LeadHours is EventTime minus BetTime in hours. Negative values are
	// kept: a bet logged after the event start is not rejected.
	LeadHours  float64 `json:"lead_hours"`
	CLVPercent float64 `json:"clv_percent"`
}

// Dataset is an ordered sequence of cleaned records for one analysis pass.
// It is built once per upload and never mutated.
type Dataset []CleanedRecord
