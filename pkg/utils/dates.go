package utils

import (
	"math"
	"time"
)

const DateLayout = "2006-01-02"

// DateOnly truncates a timestamp to midnight UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// Nights counts the nights in a half-open stay. Never negative.
func Nights(checkIn, checkOut time.Time) int {
	n := int(DateOnly(checkOut).Sub(DateOnly(checkIn)).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// MonthBounds returns the first day of the month containing t and the
// first day of the following month.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// OverlapsHalfOpen reports whether [aStart, aEnd) intersects [bStart, bEnd).
// Standard hotel-night convention: the checkout day is free.
func OverlapsHalfOpen(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aEnd.After(bStart) && aStart.Before(bEnd)
}

// CoversInclusive reports whether day d falls inside [start, end], both ends
// included. Blackout blocks use inclusive bounds: start == end holds one day.
func CoversInclusive(d, start, end time.Time) bool {
	return !d.Before(DateOnly(start)) && !d.After(DateOnly(end))
}

// OverlapsInclusive reports whether [aStart, aEnd] intersects [bStart, bEnd).
// Used to test an inclusive blackout range against a half-open stay.
func OverlapsInclusive(aStart, aEnd, bStart, bEnd time.Time) bool {
	// An inclusive end date blocks through the whole day, so shift it by one
	// to compare half-open against half-open.
	return DateOnly(aEnd).AddDate(0, 0, 1).After(bStart) && DateOnly(aStart).Before(bEnd)
}

// Round2 rounds a monetary amount to 2 decimal places
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
