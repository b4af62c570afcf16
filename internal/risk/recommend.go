package risk

import "github.com/yourusername/betsync/internal/models"

// NeutralRecommendation is emitted when no sub-risk crosses the threshold.
const NeutralRecommendation = "Profile looks reasonably recreational. Keep rotating markets, stakes, and timing."

// Advisory strings per dimension, in the fixed emission order.
const (
	recCLV      = "High positive CLV: mix in later bets or smaller edges to look less sharp."
	recPosCLV   = "Large share beating the close: add some neutral/coin-flip markets."
	recStake    = "Stake sizes too consistent: vary stakes ±10–25% around your base."
	recMarket   = "Market concentration high: add 2–3 different markets or sports weekly."
	recBook     = "Book concentration high: spread action across additional legal books."
	recLeadMean = "You bet very early on average: add some closer-to-start bets."
	recLeadStd  = "Bet timing is very consistent: randomize time-of-day you place bets."
)

// Recommendations returns one fixed advisory string per sub-risk exceeding
// the threshold, in a stable dimension order. When nothing crosses the
// threshold the single neutral message is returned instead of an empty list.
func Recommendations(profile models.RiskProfile, threshold float64) []string {
	var recs []string

	sub := profile.SubRisks
	if sub.CLV > threshold {
		recs = append(recs, recCLV)
	}
	if sub.PosCLV > threshold {
		recs = append(recs, recPosCLV)
	}
	if sub.Stake > threshold {
		recs = append(recs, recStake)
	}
	if sub.Market > threshold {
		recs = append(recs, recMarket)
	}
	if sub.Book > threshold {
		recs = append(recs, recBook)
	}
	if sub.LeadMean > threshold {
		recs = append(recs, recLeadMean)
	}
	if sub.LeadStd > threshold {
		recs = append(recs, recLeadStd)
	}

	if len(recs) == 0 {
		return []string{NeutralRecommendation}
	}
	return recs
}
