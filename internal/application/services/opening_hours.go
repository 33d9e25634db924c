package services

import (
	"strings"
	"time"
)

// IsOpenOn reports whether a facility should be treated as open on weekday,
// judged from provider weekday_text lines such as "Monday: 9:00 AM – 5:00 PM".
// Missing or unrecognised schedules count as open; only a matching line that
// mentions "closed" excludes the facility.
func IsOpenOn(weekday time.Weekday, lines []string) bool {
	if lines == nil {
		return true
	}

	// time.Weekday names are the English calendar names with Sunday at 0.
	name := weekday.String()
	for _, line := range lines {
		if !strings.HasPrefix(line, name) {
			continue
		}
		return !strings.Contains(strings.ToLower(line), "closed")
	}
	return true
}
