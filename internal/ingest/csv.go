// Package ingest reads uploaded bet-history CSV files into raw wager records.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/yourusername/betsync/internal/models"
)

// RequiredColumns are the case-sensitive headers every upload must carry.
// Result is recognized but optional: scoring never reads it.
var RequiredColumns = []string{
	"Book", "Sport", "MarketType", "OddsPlaced", "ClosingOdds",
	"Stake", "BetTime", "EventTime",
}

const resultColumn = "Result"

// SampleCSV is the 5-row helper dataset offered to users; it must always
// clean with zero dropped rows.
const SampleCSV = `Book,Sport,MarketType,OddsPlaced,ClosingOdds,Stake,BetTime,EventTime,Result
Bet99,NBA,PlayerPoints,+110,+100,50,2025-10-10 13:00:00,2025-10-10 19:30:00,W
Bet99,NHL,Moneyline,-120,-115,55,2025-10-10 14:05:00,2025-10-10 20:00:00,L
FanDuel,NBA,AltSpread,2.05,1.98,50,2025-10-09 10:00:00,2025-10-10 19:30:00,W
Bet365,NFL,Totals,1.91,1.90,60,2025-10-08 09:45:00,2025-10-12 13:00:00,L
BetMGM,NHL,ShotsOnGoal,+125,+120,50,2025-10-11 12:00:00,2025-10-11 19:00:00,W
`

// Read parses a CSV stream into raw wager records. Missing required columns
// make the whole upload fail with a *models.MissingColumnsError; extra
// columns are ignored and rows with the wrong field count are skipped as
// row-level noise.
func Read(r io.Reader) ([]models.WagerRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // row length enforced against the header below

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty upload: %w", models.ErrEmptyInput)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []models.WagerRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue // malformed row, not a structural failure
			}
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		if len(row) < len(header) {
			continue
		}

		records = append(records, models.WagerRecord{
			Book:        row[index["Book"]],
			Sport:       row[index["Sport"]],
			MarketType:  row[index["MarketType"]],
			OddsPlaced:  row[index["OddsPlaced"]],
			ClosingOdds: row[index["ClosingOdds"]],
			Stake:       row[index["Stake"]],
			BetTime:     row[index["BetTime"]],
			EventTime:   row[index["EventTime"]],
			Result:      optionalField(row, index, resultColumn),
		})
	}

	if len(records) == 0 {
		return nil, models.ErrEmptyInput
	}
	return records, nil
}

// columnIndex maps header names to positions and reports every missing
// required column at once.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &models.MissingColumnsError{Columns: missing}
	}
	return index, nil
}

func optionalField(row []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
