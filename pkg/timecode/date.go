package timecode

import (
	"strings"
	"time"
)

const (
	layoutISO = "2006-01-02"
	layoutDMY = "02/01/2006"
)

// IsBlankDate reports whether a catalog date carries no usable value. The
// source data uses several placeholder spellings for a missing date.
func IsBlankDate(v string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == "nan" || trimmed == "00/00/00"
}

// CanonicalDate normalizes a date into the catalog's DD/MM/YYYY form. ISO
// dates (YYYY-MM-DD, the shape produced by date inputs and flags) are
// converted; values already in DD/MM/YYYY pass through; anything else is
// returned unchanged rather than rejected.
func CanonicalDate(v string) string {
	trimmed := strings.TrimSpace(v)
	if IsBlankDate(trimmed) {
		return ""
	}
	if t, err := time.Parse(layoutISO, trimmed); err == nil {
		return t.Format(layoutDMY)
	}
	return trimmed
}

// DisplayDate renders a date for output, substituting the N/A sentinel for
// missing values.
func DisplayDate(v string) string {
	if IsBlankDate(v) {
		return NotAvailable
	}
	return strings.TrimSpace(v)
}

// DisplayTime renders a tape offset for output. A literal zero offset is
// shown as N/A, consistent with the zero-as-unset duration policy.
func DisplayTime(v string) string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" || trimmed == "nan" || trimmed == Zero {
		return NotAvailable
	}
	return trimmed
}
