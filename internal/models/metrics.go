package models

// AggregateMetrics holds the aggregate statistics computed over one Dataset.
// Computed once per analysis pass; immutable afterwards.
type AggregateMetrics struct {
	// AvgCLV is the arithmetic mean of per-record CLV, in percent.
	AvgCLV float64 `json:"avg_clv"`
	// PosCLVRate is the fraction of records that beat the closing line.
	PosCLVRate float64 `json:"pos_clv_rate"`
	// StakeCV is the stake coefficient of variation, in percent.
	StakeCV float64 `json:"stake_cv"`
	// MarketHHI and BookHHI are Herfindahl concentration indices over the
	// MarketType and Book columns.
	MarketHHI float64 `json:"market_hhi"`
	BookHHI   float64 `json:"book_hhi"`
	// LeadMean and LeadStd describe the lead-time distribution, in hours.
	LeadMean float64 `json:"lead_mean"`
	LeadStd  float64 `json:"lead_std"`
}
