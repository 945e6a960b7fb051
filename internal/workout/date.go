package workout

import (
	"regexp"
	"strings"
)

// datePattern matches strict YYYY-MM-DD: four-digit year, month 01-12,
// day 01-31. Calendar validity beyond that (Feb 30) is the store's problem.
var datePattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)

// ValidDate reports whether value is an acceptable workout date key.
func ValidDate(value string) bool {
	return datePattern.MatchString(value)
}

// DateOnly strips any time-of-day suffix from a stored date value so it can
// be used as a store key ("2025-07-12T00:00:00Z" -> "2025-07-12").
func DateOnly(value string) string {
	trimmed := strings.TrimSpace(value)
	if idx := strings.IndexByte(trimmed, 'T'); idx >= 0 {
		return trimmed[:idx]
	}
	return trimmed
}
