package domain

import "github.com/m04kA/SMC-TireSlotService/pkg/types"

// Interval is a half-open range [Start, End) of minutes within one civil day.
type Interval struct {
	Start types.Minute
	End   types.Minute
}

// Len returns the interval length in minutes, zero for degenerate intervals.
func (i Interval) Len() int {
	if i.End <= i.Start {
		return 0
	}
	return int(i.End - i.Start)
}

// IsEmpty reports whether the interval covers no minute.
func (i Interval) IsEmpty() bool {
	return i.End <= i.Start
}

// Overlaps reports whether two intervals share at least one minute.
// Touching intervals do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// BookedSlot is a booked customer window as exchanged with the booking store.
type BookedSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
