package odds

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAmerican(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"positive american", "+110", 2.10},
		{"even money", "+100", 2.00},
		{"negative american", "-120", 1.0 + 100.0/120.0},
		{"negative favorite", "-115", 1.0 + 100.0/115.0},
		{"unsigned large positive", "110", 2.10},
		{"whitespace tolerated", " +125 ", 2.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestNormalizeDecimalPassthrough(t *testing.T) {
	for _, raw := range []string{"2.05", "1.91", "1.01", "100.0", "50"} {
		got, err := Normalize(raw)
		require.NoError(t, err, "raw=%q", raw)

		want, _ := strconv.ParseFloat(raw, 64)
		assert.Equal(t, want, got, "raw=%q", raw)
	}
}

// "+50" parses to 50, which sits inside the decimal window, so the decimal
// interpretation wins over the '+' prefix.
func TestNormalizeDecimalWindowBeatsPlusPrefix(t *testing.T) {
	got, err := Normalize("+50")
	require.NoError(t, err)
	assert.Equal(t, 50.0, got)
}

// The '-' prefix bypasses the decimal window entirely: "-1.5" is negative
// American odds, not decimal 1.5.
func TestNormalizeMinusPrefixPrecedence(t *testing.T) {
	got, err := Normalize("-1.5")
	require.NoError(t, err)
	assert.InDelta(t, 1.0+100.0/1.5, got, 1e-9)
}

func TestNormalizeInvalid(t *testing.T) {
	for _, raw := range []string{"abc", "", "+abc", "-", "0.5", "1.005", "NaN", "+Inf"} {
		_, err := Normalize(raw)
		assert.ErrorIs(t, err, ErrUnparseable, "raw=%q", raw)
	}
}

// Normalizing an already-decimal value again yields the same value.
func TestNormalizeIdempotentOnDecimal(t *testing.T) {
	for _, raw := range []string{"1.01", "2.05", "19.5", "100.0"} {
		once, err := Normalize(raw)
		require.NoError(t, err)

		twice, err := Normalize(strconv.FormatFloat(once, 'f', -1, 64))
		require.NoError(t, err)
		assert.Equal(t, once, twice, "raw=%q", raw)
	}
}

func TestNormalizeLargeUnsignedBoundary(t *testing.T) {
	// 100.5 falls just outside the decimal window and is read as +100.5.
	got, err := Normalize("100.5")
	require.NoError(t, err)
	assert.InDelta(t, 1.0+100.5/100.0, got, 1e-9)
	assert.False(t, math.IsNaN(got))
}
