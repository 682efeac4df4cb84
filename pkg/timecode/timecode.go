package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// NotAvailable is the sentinel used throughout hand-entered catalog data
	// for a missing time or date value.
	NotAvailable = "N/A"

	// Zero is the canonical rendering of an empty or underivable duration.
	Zero = "00:00:00"

	secondsPerDay = 24 * 3600
)

// IsBlank reports whether a time value carries no usable information.
func IsBlank(v string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == NotAvailable
}

// ParseSeconds converts a colon-separated offset into whole seconds. It
// accepts one group (SS), two (MM:SS), or three (HH:MM:SS); any group that
// does not parse as a non-negative integer counts as zero. Blank, "N/A", or
// otherwise malformed input yields 0. The source data is hand-transcribed, so
// this parser never fails.
func ParseSeconds(v string) int {
	if IsBlank(v) {
		return 0
	}

	parts := strings.Split(strings.TrimSpace(v), ":")
	groups := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			n = 0
		}
		groups[i] = n
	}

	switch len(groups) {
	case 3:
		return groups[0]*3600 + groups[1]*60 + groups[2]
	case 2:
		return groups[0]*60 + groups[1]
	case 1:
		return groups[0]
	}
	return 0
}

// FormatSeconds renders seconds as zero-padded HH:MM:SS. Negative input is
// clamped to zero.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ComputeDuration derives the span between two tape offsets. Either side
// being blank, the "N/A" sentinel, or parsing to exactly zero yields the zero
// duration: a literal 00:00:00 start is indistinguishable from "no value" in
// this data, so zero is treated as unset rather than as midnight. A negative
// span is assumed to cross a day boundary and wraps by 24 hours.
func ComputeDuration(start, end string) string {
	if IsBlank(start) || IsBlank(end) {
		return Zero
	}

	startSeconds := ParseSeconds(start)
	endSeconds := ParseSeconds(end)
	if startSeconds == 0 || endSeconds == 0 {
		return Zero
	}

	duration := endSeconds - startSeconds
	if duration < 0 {
		duration += secondsPerDay
	}
	return FormatSeconds(duration)
}

// ToMinutes converts a duration into fractional minutes for aggregation
// across many events. Blank and malformed input counts as zero.
func ToMinutes(v string) float64 {
	if IsBlank(v) {
		return 0
	}

	parts := strings.Split(strings.TrimSpace(v), ":")
	groups := make([]float64, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			n = 0
		}
		groups[i] = float64(n)
	}

	switch len(groups) {
	case 3:
		return groups[0]*60 + groups[1] + groups[2]/60
	case 2:
		return groups[0] + groups[1]/60
	case 1:
		return groups[0] / 60
	}
	return 0
}

// FormatMinutes renders an aggregate minute total as a compact human string,
// dropping higher units that are zero: "2h 5m 30s", "5m 30s", or "30s".
func FormatMinutes(minutes float64) string {
	hours := int(minutes) / 60
	mins := int(minutes) % 60
	secs := int(math.Floor(math.Mod(minutes, 1) * 60))

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, mins, secs)
	case mins > 0:
		return fmt.Sprintf("%dm %ds", mins, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}
