package pnl

import (
	"fmt"
	"time"
)

// DateFormat is the format used to read dates from the command line.
const DateFormat = "2006-01-02"

func parseDay(s string) (time.Time, error) {
	day, err := time.ParseInLocation(DateFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return day, nil
}

// ParseDayStart parses a YYYY-MM-DD date and returns the epoch seconds of
// 00:00:00 UTC on that day. Used for inclusive start-of-window filters.
func ParseDayStart(s string) (int64, error) {
	day, err := parseDay(s)
	if err != nil {
		return 0, err
	}
	return day.Unix(), nil
}

// ParseDayEnd parses a YYYY-MM-DD date and returns the epoch seconds of
// 23:59:59 UTC on that day, so the whole day is inside the window.
func ParseDayEnd(s string) (int64, error) {
	day, err := parseDay(s)
	if err != nil {
		return 0, err
	}
	return day.Add(24*time.Hour - time.Second).Unix(), nil
}
