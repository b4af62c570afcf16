package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/betsync/internal/models"
)

func TestHerfindahlSingleCategory(t *testing.T) {
	assert.InDelta(t, 1.0, Herfindahl([]string{"Moneyline", "Moneyline", "Moneyline"}), 1e-12)
}

func TestHerfindahlEvenSpread(t *testing.T) {
	values := []string{"a", "b", "c", "d", "a", "b", "c", "d"}
	assert.InDelta(t, 0.25, Herfindahl(values), 1e-12)
}

func TestHerfindahlMissingValuesFormOwnGroup(t *testing.T) {
	// Two categories: "Totals" and the empty string.
	assert.InDelta(t, 0.5, Herfindahl([]string{"Totals", "", "Totals", ""}), 1e-12)
}

func TestComputeAggregates(t *testing.T) {
	dataset := models.Dataset{
		{Book: "Bet99", MarketType: "Moneyline", Stake: 50, LeadHours: 6, CLVPercent: 2.0},
		{Book: "Bet99", MarketType: "Moneyline", Stake: 50, LeadHours: 6, CLVPercent: -1.0},
		{Book: "FanDuel", MarketType: "Totals", Stake: 50, LeadHours: 6, CLVPercent: 5.0},
		{Book: "Bet365", MarketType: "Spread", Stake: 50, LeadHours: 6, CLVPercent: 0.0},
	}

	m := Compute(dataset)

	assert.InDelta(t, 1.5, m.AvgCLV, 1e-9)
	assert.InDelta(t, 0.5, m.PosCLVRate, 1e-9) // CLV > 0 in 2 of 4 rows
	assert.InDelta(t, 0.0, m.StakeCV, 1e-9)    // identical stakes
	assert.InDelta(t, 6.0, m.LeadMean, 1e-9)
	assert.InDelta(t, 0.0, m.LeadStd, 1e-9)

	// Markets: Moneyline 2/4, Totals 1/4, Spread 1/4.
	assert.InDelta(t, 0.25+0.0625+0.0625, m.MarketHHI, 1e-9)
	// Books: Bet99 2/4, FanDuel 1/4, Bet365 1/4.
	assert.InDelta(t, 0.375, m.BookHHI, 1e-9)
}

func TestComputeStakeCVUsesSampleStddev(t *testing.T) {
	dataset := models.Dataset{
		{Stake: 40, CLVPercent: 1},
		{Stake: 60, CLVPercent: 1},
	}

	m := Compute(dataset)
	// sample stddev of {40, 60} = sqrt(200) ≈ 14.1421; mean = 50.
	assert.InDelta(t, 28.2842712, m.StakeCV, 1e-4)
}

func TestTopMarkets(t *testing.T) {
	dataset := models.Dataset{
		{MarketType: "Totals"},
		{MarketType: "Moneyline"},
		{MarketType: "Totals"},
		{MarketType: "Spread"},
		{MarketType: "Moneyline"},
		{MarketType: "Totals"},
	}

	top := TopMarkets(dataset, 2)
	require.Len(t, top, 2)
	assert.Equal(t, MarketCount{MarketType: "Totals", Count: 3}, top[0])
	assert.Equal(t, MarketCount{MarketType: "Moneyline", Count: 2}, top[1])
}

func TestTopMarketsTieBrokenByName(t *testing.T) {
	dataset := models.Dataset{
		{MarketType: "Spread"},
		{MarketType: "Moneyline"},
	}

	top := TopMarkets(dataset, 10)
	require.Len(t, top, 2)
	assert.Equal(t, "Moneyline", top[0].MarketType)
	assert.Equal(t, "Spread", top[1].MarketType)
}
