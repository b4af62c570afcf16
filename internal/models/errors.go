package models

import (
	"errors"
	"fmt"
	"strings"
)

// Custom errors
var (
	// ErrNoValidRows is returned when every uploaded row was dropped during
	// cleaning. Distinct from MissingColumnsError: the file was structurally
	// fine, the data in it was not.
	ErrNoValidRows = errors.New("no valid rows after cleaning")

	// ErrEmptyInput is returned when the upload contains a header but no
	// data rows at all.
	ErrEmptyInput = errors.New("input contains no data rows")
)

// MissingColumnsError reports a structurally invalid upload. It names every
// missing required column so the caller can surface the full list at once.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}
