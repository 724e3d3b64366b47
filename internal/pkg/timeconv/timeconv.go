// Package timeconv holds the fixed conversions between the display-facing
// schedule vocabulary and the persisted task columns: 12-hour display times
// to 24-hour time-of-day strings, per-activity default durations, and the
// database category vocabulary.
package timeconv

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var twelveHourRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`)

// To24Hour converts a display time like "6:00 AM" to "06:00:00".
// A bare "HH:MM" gets ":00" appended; anything else passes through unchanged
// rather than failing, matching how confirmed slots have always been stored.
func To24Hour(display string) string {
	s := strings.TrimSpace(display)

	if m := twelveHourRe.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		suffix := strings.ToUpper(m[3])
		if suffix == "AM" {
			if hour == 12 {
				hour = 0
			}
		} else if hour != 12 {
			hour += 12
		}
		return fmt.Sprintf("%02d:%s:00", hour, m[2])
	}

	upper := strings.ToUpper(s)
	if strings.Count(s, ":") == 1 && !strings.Contains(upper, "AM") && !strings.Contains(upper, "PM") {
		return s + ":00"
	}

	return s
}

// DurationMinutes returns the default block length for an activity name.
func DurationMinutes(activity string) int {
	name := strings.ToLower(activity)
	switch {
	case strings.Contains(name, "sleep"):
		return 360
	case strings.Contains(name, "work"), strings.Contains(name, "study"):
		return 240
	case strings.Contains(name, "meal"), strings.Contains(name, "exercise"):
		return 60
	default:
		return 60
	}
}

// EndTime adds minutes to a "HH:MM:SS" start time, wrapping past midnight.
func EndTime(start string, minutes int) string {
	parts := strings.Split(start, ":")
	if len(parts) < 2 {
		return start
	}
	hour, err1 := strconv.Atoi(parts[0])
	min, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return start
	}

	total := (hour*60 + min + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d:00", total/60, total%60)
}

// DBCategory maps a slot category to the persisted category vocabulary.
func DBCategory(category string) string {
	switch strings.ToLower(category) {
	case "work":
		return "Work"
	case "personal", "health":
		return "Personal"
	case "family":
		return "Family Time"
	case "sleep":
		return "Sleep"
	default:
		return "Personal"
	}
}
