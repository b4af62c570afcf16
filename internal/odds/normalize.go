// Package odds normalizes mixed-format betting odds to decimal odds.
package odds

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrUnparseable marks an odds value that fits no known format. Callers drop
// the row rather than propagate this.
var ErrUnparseable = errors.New("odds value is unparseable")

// Normalize converts an American or Decimal odds string to decimal odds.
//
// A leading '-' takes precedence: the value is treated as explicit negative
// American odds before any range heuristic runs. Reordering this check would
// reclassify edge values like "-1.5".
func Normalize(raw string) (float64, error) {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "-") {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, ErrUnparseable
		}
		return 1.0 + 100.0/math.Abs(v), nil
	}

	return americanToDecimal(s)
}

// americanToDecimal applies the shared heuristic for non-negative-prefixed
// input: values inside the decimal window pass through unchanged, everything
// else is interpreted as American odds.
func americanToDecimal(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrUnparseable
	}

	// Decimal range heuristic: real American odds never land here, real
	// decimal odds almost always do. Decimal interpretation wins on overlap.
	if v >= 1.01 && v <= 100.0 {
		return v, nil
	}

	// Explicit positive American odds, e.g. "+110".
	if strings.HasPrefix(s, "+") {
		return 1.0 + v/100.0, nil
	}

	// Negative American odds without the string prefix (already-parsed input).
	if v < 0 {
		return 1.0 + 100.0/math.Abs(v), nil
	}

	// Unsigned large number like 110, treated as +110.
	if v >= 100 {
		return 1.0 + v/100.0, nil
	}

	// Covers (0, 1.01) and other unclassifiable shapes.
	return 0, ErrUnparseable
}
