package domain

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is a day of the week with Monday as the first day.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysInWeek is the number of entries in a weekly template.
const DaysInWeek = 7

var weekdayNames = [DaysInWeek]string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// AllWeekdays lists weekdays from Monday to Sunday.
var AllWeekdays = [DaysInWeek]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// String returns the lower-case English name used as the JSON key.
func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Valid reports whether d is between Monday and Sunday.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// ParseWeekday matches an English weekday name case-insensitively.
func ParseWeekday(name string) (Weekday, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, n := range weekdayNames {
		if n == normalized {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

// WeekdayOf returns the weekday of t's Europe/Warsaw civil date.
func WeekdayOf(t time.Time) Weekday {
	// time.Weekday starts on Sunday = 0
	return Weekday((int(t.In(location).Weekday()) + 6) % DaysInWeek)
}
