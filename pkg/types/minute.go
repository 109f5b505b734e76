package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// MinutesPerDay is the number of minutes in a civil day.
const MinutesPerDay Minute = 24 * 60

var (
	// ErrInvalidTimeFormat is returned when a string is not a zero-padded "HH:MM" time
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

	// ErrTimeOutOfRange is returned when hours or minutes are out of range
	ErrTimeOutOfRange = errors.New("types: time out of range")
)

// Minute is a time of day expressed as minutes since midnight.
// All slot arithmetic is done in this unit; "HH:MM" strings only exist at the boundaries.
type Minute int

// NewMinute builds a Minute from hours and minutes without validation.
func NewMinute(hour, minute int) Minute {
	return Minute(hour*60 + minute)
}

// ParseMinute parses a zero-padded "HH:MM" string.
func ParseMinute(s string) (Minute, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := parseTwoDigits(s[0:2])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, err := parseTwoDigits(s[3:5])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}

	return NewMinute(hour, minute), nil
}

// MustParseMinute is like ParseMinute but panics on error. Intended for constants and tests.
func MustParseMinute(s string) Minute {
	m, err := ParseMinute(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MinuteOf returns the time of day of t in t's location, truncated to the minute.
func MinuteOf(t time.Time) Minute {
	return NewMinute(t.Hour(), t.Minute())
}

// Hour returns the hour part.
func (m Minute) Hour() int {
	return int(m) / 60
}

// Min returns the minute-of-hour part.
func (m Minute) Min() int {
	return int(m) % 60
}

// Add returns m shifted by the given number of minutes.
func (m Minute) Add(minutes int) Minute {
	return m + Minute(minutes)
}

// Valid reports whether m is inside [00:00, 24:00).
func (m Minute) Valid() bool {
	return m >= 0 && m < MinutesPerDay
}

// String formats m as zero-padded "HH:MM".
func (m Minute) String() string {
	return fmt.Sprintf("%02d:%02d", m.Hour(), m.Min())
}

// MarshalJSON encodes m as "HH:MM".
func (m Minute) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.String())), nil
}

// UnmarshalJSON decodes "HH:MM".
func (m *Minute) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimeFormat, string(data))
	}
	parsed, err := ParseMinute(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Scan implements sql.Scanner for Postgres TIME columns ("HH:MM:SS").
func (m *Minute) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*m = MinuteOf(v)
		return nil
	case []byte:
		return m.scanString(string(v))
	case string:
		return m.scanString(v)
	case nil:
		return fmt.Errorf("%w: NULL time", ErrInvalidTimeFormat)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeFormat, src)
	}
}

// Value implements driver.Valuer.
func (m Minute) Value() (driver.Value, error) {
	return m.String(), nil
}

func (m *Minute) scanString(s string) error {
	if len(s) >= 5 {
		s = s[:5]
	}
	parsed, err := ParseMinute(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func parseTwoDigits(s string) (int, error) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, ErrInvalidTimeFormat
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), nil
}
