// Package dates normalizes the date and time strings found in provider
// payloads into canonical UTC timestamps.
package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"

	// series declare IANA zones such as US/Eastern; embed the database so
	// lookups do not depend on the host.
	_ "time/tzdata"
)

const (
	// DateTimeLayout is the provider layout for intraday timestamps.
	DateTimeLayout = "2006-01-02 15:04:05"
	// DateLayout is the provider layout for calendar days.
	DateLayout = "2006-01-02"
)

// ErrInvalidDateFormat is returned when a string matches no known layout.
var ErrInvalidDateFormat = errors.New("invalid date format")

// Normalize converts raw into a UTC timestamp, reading intraday timestamps as UTC.
func Normalize(raw string) (time.Time, error) {
	return NormalizeIn(raw, time.UTC)
}

// NormalizeIn converts raw into a UTC timestamp. raw must match a layout
// exactly; surrounding whitespace is rejected.
//
// A "YYYY-MM-DD HH:MM:SS" value is read as a wall clock in loc and converted
// to UTC. A bare "YYYY-MM-DD" value is a calendar day and always maps to
// 00:00:00 UTC of that day, whatever loc is.
func NormalizeIn(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	switch len(raw) {
	case len(DateTimeLayout):
		t, err := time.ParseInLocation(DateTimeLayout, raw, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, raw)
		}
		return t.UTC(), nil
	case len(DateLayout):
		t, err := time.Parse(DateLayout, raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, raw)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, raw)
}

// ParseInput parses a user supplied date: either a bare calendar day or an
// RFC 3339 timestamp (e.g. 2021-06-11T22:26:00.000Z).
func ParseInput(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if len(s) == len(DateLayout) {
		return Normalize(s)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, raw)
	}
	return t.UTC(), nil
}

// Day truncates t to midnight UTC of its UTC calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// LoadLocation resolves a provider time zone name, falling back to UTC when
// the name is empty or unknown.
func LoadLocation(name string) *time.Location {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
