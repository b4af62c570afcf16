package clean

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseTime parses a heterogeneous date/time string into a canonical
// timestamp. It accepts ISO-like layouts, "YYYY-MM-DD HH:MM:SS" and the other
// common human formats dateparse recognizes. Failures come back as an error;
// the cleaner turns them into a row drop, nothing ever panics or propagates.
func ParseTime(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable timestamp %q: %w", s, err)
	}
	return t, nil
}
