package models

// SubRisks are the seven normalized risk dimensions, each clamped to [0, 1].
type SubRisks struct {
	CLV      float64 `json:"clv"`
	PosCLV   float64 `json:"posclv"`
	Stake    float64 `json:"stake"`
	Market   float64 `json:"market"`
	Book     float64 `json:"book"`
	LeadMean float64 `json:"lead_mean"`
	LeadStd  float64 `json:"lead_std"`
}

// RiskProfile is the scoring output: the weighted composite limit-risk score
// (0-100, one decimal place), its sub-risks, and the advisory strings
// triggered by sub-risks exceeding the recommendation threshold.
type RiskProfile struct {
	Score           float64  `json:"score"`
	SubRisks        SubRisks `json:"sub_risks"`
	Recommendations []string `json:"recommendations"`
}
