// Package config provides configuration management for the BetSync analyzer.
package config

// Config represents the complete application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics" validate:"required"`
	Scoring ScoringConfig `mapstructure:"scoring" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// ServerConfig represents the HTTP analyze service configuration
type ServerConfig struct {
	Address            string   `mapstructure:"address" validate:"required"`
	RequestsPerSecond  float64  `mapstructure:"requests_per_second" validate:"required,gt=0"`
	Burst              int      `mapstructure:"burst" validate:"required,gt=0"`
	MaxUploadBytes     int64    `mapstructure:"max_upload_bytes" validate:"required,gt=0"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required"`
}

// ScoringConfig is the single immutable home of every scoring heuristic:
// the sub-risk bands, the composite weights and the recommendation
// threshold. Tuning happens here, never in the scoring algorithm.
type ScoringConfig struct {
	Weights                 WeightsConfig `mapstructure:"weights" validate:"required"`
	Bands                   BandsConfig   `mapstructure:"bands" validate:"required"`
	RecommendationThreshold float64       `mapstructure:"recommendation_threshold" validate:"gte=0,lte=1"`
}

// WeightsConfig holds the composite-score weights. They must sum to 1.
type WeightsConfig struct {
	CLV      float64 `mapstructure:"clv" validate:"gte=0,lte=1"`
	PosCLV   float64 `mapstructure:"posclv" validate:"gte=0,lte=1"`
	Stake    float64 `mapstructure:"stake" validate:"gte=0,lte=1"`
	Market   float64 `mapstructure:"market" validate:"gte=0,lte=1"`
	Book     float64 `mapstructure:"book" validate:"gte=0,lte=1"`
	LeadMean float64 `mapstructure:"lead_mean" validate:"gte=0,lte=1"`
	LeadStd  float64 `mapstructure:"lead_std" validate:"gte=0,lte=1"`
}

// BandsConfig holds the heuristic normalization bands that map each
// aggregate metric onto a [0,1] sub-risk.
type BandsConfig struct {
	// CLV: (avgCLV - floor) / span. 1% average CLV is fine, 5%+ looks sharp.
	CLVFloor float64 `mapstructure:"clv_floor"`
	CLVSpan  float64 `mapstructure:"clv_span" validate:"required,gt=0"`

	// PosCLV: (posCLVRate - floor) / span.
	PosCLVFloor float64 `mapstructure:"posclv_floor"`
	PosCLVSpan  float64 `mapstructure:"posclv_span" validate:"required,gt=0"`

	// Stake: (ceiling - min(stakeCV, cap)) / ceiling. Low variance reads
	// as automated staking.
	StakeCVCeiling float64 `mapstructure:"stake_cv_ceiling" validate:"required,gt=0"`
	StakeCVCap     float64 `mapstructure:"stake_cv_cap" validate:"required,gt=0"`

	// Market / book concentration: (hhi - floor) / span.
	MarketHHIFloor float64 `mapstructure:"market_hhi_floor"`
	MarketHHISpan  float64 `mapstructure:"market_hhi_span" validate:"required,gt=0"`
	BookHHIFloor   float64 `mapstructure:"book_hhi_floor"`
	BookHHISpan    float64 `mapstructure:"book_hhi_span" validate:"required,gt=0"`

	// Lead mean: (leadMean - floor) / span. Betting far ahead looks
	// model-driven.
	LeadMeanFloor float64 `mapstructure:"lead_mean_floor"`
	LeadMeanSpan  float64 `mapstructure:"lead_mean_span" validate:"required,gt=0"`

	// Lead std: (ceiling - min(leadStd, cap)) / ceiling. Consistent timing
	// looks automated.
	LeadStdCeiling float64 `mapstructure:"lead_std_ceiling" validate:"required,gt=0"`
	LeadStdCap     float64 `mapstructure:"lead_std_cap" validate:"required,gt=0"`
}

// DefaultScoring returns the fixed heuristic bands, weights and threshold the
// analyzer ships with.
func DefaultScoring() ScoringConfig {
	return ScoringConfig{
		Weights: WeightsConfig{
			CLV:      0.28,
			PosCLV:   0.12,
			Stake:    0.16,
			Market:   0.14,
			Book:     0.10,
			LeadMean: 0.10,
			LeadStd:  0.10,
		},
		Bands: BandsConfig{
			CLVFloor:       1.0,
			CLVSpan:        4.0,
			PosCLVFloor:    0.55,
			PosCLVSpan:     0.25,
			StakeCVCeiling: 12.0,
			StakeCVCap:     30.0,
			MarketHHIFloor: 0.20,
			MarketHHISpan:  0.60,
			BookHHIFloor:   0.25,
			BookHHISpan:    0.60,
			LeadMeanFloor:  12.0,
			LeadMeanSpan:   48.0,
			LeadStdCeiling: 6.0,
			LeadStdCap:     24.0,
		},
		RecommendationThreshold: 0.6,
	}
}

// Sum returns the total of all weights.
func (w WeightsConfig) Sum() float64 {
	return w.CLV + w.PosCLV + w.Stake + w.Market + w.Book + w.LeadMean + w.LeadStd
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
