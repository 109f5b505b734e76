package domain

import (
	"time"
	// Embedded zone database so Europe/Warsaw resolves in minimal containers
	_ "time/tzdata"
)

// TimeZoneName is the only civil calendar the service works in.
const TimeZoneName = "Europe/Warsaw"

var location = mustLoadLocation(TimeZoneName)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Location returns the Europe/Warsaw location.
func Location() *time.Location {
	return location
}

// DateOf returns midnight of t's civil date in Europe/Warsaw.
func DateOf(t time.Time) time.Time {
	local := t.In(location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, location)
}

// ParseDate parses "YYYY-MM-DD" as a Europe/Warsaw civil date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, location)
}

// IsSameDay reports whether a and b fall on the same Europe/Warsaw civil date.
func IsSameDay(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}

// IsDateInPast reports whether date is before today's civil date.
func IsDateInPast(date, now time.Time) bool {
	return DateOf(date).Before(DateOf(now))
}
