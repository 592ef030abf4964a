package utils

import (
	"hospital-service/internal/pkg/constvars"
	"strings"
	"time"
)

func ParseDate(value string) (time.Time, error) {
	return time.Parse(constvars.DateLayout, strings.TrimSpace(value))
}

// NormalizeTime accepts HH:MM or HH:MM:SS and returns HH:MM:00. Seconds are dropped because
// slots are booked at minute precision.
func NormalizeTime(value string) (string, error) {
	value = strings.TrimSpace(value)

	layout := constvars.TimeLayoutMinutes
	if strings.Count(value, ":") == 2 {
		layout = constvars.TimeLayoutSeconds
	}

	parsed, err := time.Parse(layout, value)
	if err != nil {
		return "", err
	}
	return parsed.Format(constvars.TimeLayoutMinutes) + ":00", nil
}

func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
