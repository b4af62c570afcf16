// Package config provides configuration management for the BetSync analyzer.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadDefaults verifies a complete configuration materializes with no
// file present at all.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "betsync", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	assert.Equal(t, DefaultScoring(), cfg.Scoring)
	require.NoError(t, Validate(cfg))
}

func TestLoadFileOverrides(t *testing.T) {
	path := writeConfig(t, `
app:
  name: betsync-test
  environment: staging
  log_level: debug
server:
  address: ":9999"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "betsync-test", cfg.App.Name)
	assert.Equal(t, "staging", cfg.App.Environment)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, ":9999", cfg.Server.Address)

	// Untouched sections keep their defaults.
	assert.Equal(t, DefaultScoring().Weights, cfg.Scoring.Weights)
}

func TestLoadEnvExpansion(t *testing.T) {
	t.Setenv("TEST_BETSYNC_ADDR", ":7070")
	path := writeConfig(t, `
server:
  address: "${TEST_BETSYNC_ADDR}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Address)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "app: [not: valid")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejectsBadWeightSum(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	cfg.Scoring.Weights.CLV = 0.50 // default sum is now 1.22
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	cfg.App.LogLevel = "verbose"
	assert.Error(t, Validate(cfg))
}

func TestValidateRejectsCapBelowCeiling(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	cfg.Scoring.Bands.StakeCVCap = 5.0 // below the 12.0 ceiling
	assert.Error(t, Validate(cfg))
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, DefaultScoring().Weights.Sum(), 1e-9)
}
