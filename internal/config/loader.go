// Package config provides configuration management for the BetSync analyzer.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads and parses the configuration from file and environment
// variables. Environment variable placeholders in the YAML file (${VAR_NAME})
// are expanded before parsing. A missing file is not an error: defaults plus
// BETSYNC_* environment overrides produce a complete configuration.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = "config/config.yaml"
	}

	v.SetConfigType("yaml")

	// Set environment variable prefix
	v.SetEnvPrefix("BETSYNC")

	// Enable automatic binding of environment variables
	v.AutomaticEnv()

	// Replace dots with underscores in environment variable names
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// Read and expand the configuration file if it exists
	if data, err := os.ReadFile(configPath); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults installs the complete default configuration, including the
// fixed scoring heuristics of DefaultScoring.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "betsync")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.requests_per_second", 10.0)
	v.SetDefault("server.burst", 20)
	v.SetDefault("server.max_upload_bytes", 10<<20)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	scoring := DefaultScoring()
	v.SetDefault("scoring.recommendation_threshold", scoring.RecommendationThreshold)

	v.SetDefault("scoring.weights.clv", scoring.Weights.CLV)
	v.SetDefault("scoring.weights.posclv", scoring.Weights.PosCLV)
	v.SetDefault("scoring.weights.stake", scoring.Weights.Stake)
	v.SetDefault("scoring.weights.market", scoring.Weights.Market)
	v.SetDefault("scoring.weights.book", scoring.Weights.Book)
	v.SetDefault("scoring.weights.lead_mean", scoring.Weights.LeadMean)
	v.SetDefault("scoring.weights.lead_std", scoring.Weights.LeadStd)

	v.SetDefault("scoring.bands.clv_floor", scoring.Bands.CLVFloor)
	v.SetDefault("scoring.bands.clv_span", scoring.Bands.CLVSpan)
	v.SetDefault("scoring.bands.posclv_floor", scoring.Bands.PosCLVFloor)
	v.SetDefault("scoring.bands.posclv_span", scoring.Bands.PosCLVSpan)
	v.SetDefault("scoring.bands.stake_cv_ceiling", scoring.Bands.StakeCVCeiling)
	v.SetDefault("scoring.bands.stake_cv_cap", scoring.Bands.StakeCVCap)
	v.SetDefault("scoring.bands.market_hhi_floor", scoring.Bands.MarketHHIFloor)
	v.SetDefault("scoring.bands.market_hhi_span", scoring.Bands.MarketHHISpan)
	v.SetDefault("scoring.bands.book_hhi_floor", scoring.Bands.BookHHIFloor)
	v.SetDefault("scoring.bands.book_hhi_span", scoring.Bands.BookHHISpan)
	v.SetDefault("scoring.bands.lead_mean_floor", scoring.Bands.LeadMeanFloor)
	v.SetDefault("scoring.bands.lead_mean_span", scoring.Bands.LeadMeanSpan)
	v.SetDefault("scoring.bands.lead_std_ceiling", scoring.Bands.LeadStdCeiling)
	v.SetDefault("scoring.bands.lead_std_cap", scoring.Bands.LeadStdCap)
}
