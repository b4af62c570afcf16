package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/betsync/internal/models"
)

func TestReadSampleCSV(t *testing.T) {
	records, err := Read(strings.NewReader(SampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 5)

	first := records[0]
	assert.Equal(t, "Bet99", first.Book)
	assert.Equal(t, "NBA", first.Sport)
	assert.Equal(t, "PlayerPoints", first.MarketType)
	assert.Equal(t, "+110", first.OddsPlaced)
	assert.Equal(t, "+100", first.ClosingOdds)
	assert.Equal(t, "50", first.Stake)
	assert.Equal(t, "W", first.Result)
}

func TestReadMissingColumns(t *testing.T) {
	csvData := "Book,Sport,Stake\nBet99,NBA,50\n"

	_, err := Read(strings.NewReader(csvData))
	require.Error(t, err)

	var missingErr *models.MissingColumnsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"MarketType", "OddsPlaced", "ClosingOdds", "BetTime", "EventTime"}, missingErr.Columns)
}

func TestReadResultColumnOptional(t *testing.T) {
	csvData := "Book,Sport,MarketType,OddsPlaced,ClosingOdds,Stake,BetTime,EventTime\n" +
		"Bet99,NBA,Moneyline,+110,+100,50,2025-10-10 13:00:00,2025-10-10 19:30:00\n"

	records, err := Read(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Result)
}

func TestReadEmptyUpload(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	assert.ErrorIs(t, err, models.ErrEmptyInput)
}

func TestReadHeaderOnly(t *testing.T) {
	header := strings.Join(append(append([]string{}, RequiredColumns...), "Result"), ",") + "\n"
	_, err := Read(strings.NewReader(header))
	assert.ErrorIs(t, err, models.ErrEmptyInput)
}

func TestReadSkipsShortRows(t *testing.T) {
	csvData := SampleCSV + "BetMGM,NHL\n"

	records, err := Read(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Len(t, records, 5)
}

func TestReadIgnoresExtraColumns(t *testing.T) {
	csvData := "Note,Book,Sport,MarketType,OddsPlaced,ClosingOdds,Stake,BetTime,EventTime,Result\n" +
		"x,Bet99,NBA,Moneyline,+110,+100,50,2025-10-10 13:00:00,2025-10-10 19:30:00,W\n"

	records, err := Read(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Bet99", records[0].Book)
}
