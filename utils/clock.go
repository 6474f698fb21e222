package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

var weekdayNames = map[string]time.Weekday{
	"SUN": time.Sunday,
	"MON": time.Monday,
	"TUE": time.Tuesday,
	"WED": time.Wednesday,
	"THU": time.Thursday,
	"FRI": time.Friday,
	"SAT": time.Saturday,
}

// ParseWeekday converts a three-letter day tag ("SUN".."SAT") to a weekday.
func ParseWeekday(s string) (time.Weekday, error) {
	day, ok := weekdayNames[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("invalid day of week: %q", s)
	}
	return day, nil
}

// ParseClock converts a wire-format "HH:MM:SS" (seconds optional) clock
// time into minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock time: %q", s)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 23 {
		return 0, fmt.Errorf("invalid hour in clock time: %q", s)
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("invalid minute in clock time: %q", s)
	}
	if len(parts) == 3 {
		ss, err := strconv.Atoi(parts[2])
		if err != nil || ss < 0 || ss > 59 {
			return 0, fmt.Errorf("invalid second in clock time: %q", s)
		}
	}
	return hh*60 + mm, nil
}

// FormatClock renders minutes from midnight as "HH:MM:SS".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}

// ParseDate parses a wire-format calendar date in the local time zone.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return d, nil
}

// Today truncates now to midnight in its own location, the reference point
// for all "no past dates" checks.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
