package utils

import (
	"errors"
	"fmt"
	"time"
)

// ErrPastTime is returned when a reminder time is strictly before "now".
var ErrPastTime = errors.New("reminder time cannot be in the past")

// ErrInvalidTime is returned when a timestamp cannot be parsed at all.
var ErrInvalidTime = errors.New("invalid timestamp")

// layouts without zone info; such timestamps are treated as UTC as-is,
// no conversion (a naive local time is silently taken for UTC)
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// NormalizeReminderTime parses an ISO-8601 timestamp and converts it to a
// canonical UTC instant. An explicit offset is honoured; a timestamp with no
// zone info is assumed to already be UTC. Values strictly earlier than now
// are rejected with ErrPastTime.
func NormalizeReminderTime(raw string, now time.Time) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		for _, layout := range naiveLayouts {
			if t, lerr := time.ParseInLocation(layout, raw, time.UTC); lerr == nil {
				parsed = t
				err = nil
				break
			}
		}
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}

	utc := parsed.UTC()
	if utc.Before(now.UTC()) {
		return time.Time{}, ErrPastTime
	}
	return utc, nil
}

// ParseUTC parses an ISO-8601 timestamp (offset optional) into a UTC instant
// with no past-time check.
func ParseUTC(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
}
