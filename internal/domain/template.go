package domain

import (
	"fmt"

	"github.com/goccy/go-json"
)

// DaySpec describes opening hours of a single weekday.
// StartTime and EndTime are carried even when the day is unavailable.
type DaySpec struct {
	IsAvailable bool   `json:"isAvailable"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// WeeklyTemplate is the workshop availability for every weekday plus a single time gap.
type WeeklyTemplate struct {
	Days    [DaysInWeek]DaySpec
	TimeGap int
}

// Day returns opening hours of the given weekday. Out-of-range weekdays yield an unavailable day.
func (t WeeklyTemplate) Day(d Weekday) DaySpec {
	if !d.Valid() {
		return DaySpec{StartTime: DefaultDayStart, EndTime: DefaultDayEnd}
	}
	return t.Days[d]
}

// SetDay replaces opening hours of the given weekday.
func (t *WeeklyTemplate) SetDay(d Weekday, spec DaySpec) {
	if d.Valid() {
		t.Days[d] = spec
	}
}

// DefaultDaySpec is used for weekdays missing from a stored template.
func DefaultDaySpec(d Weekday) DaySpec {
	return DaySpec{
		IsAvailable: d >= Monday && d <= Friday,
		StartTime:   DefaultDayStart,
		EndTime:     DefaultDayEnd,
	}
}

// DefaultWeeklyTemplate is Monday to Friday 09:00-17:00 with the default time gap.
func DefaultWeeklyTemplate() WeeklyTemplate {
	var t WeeklyTemplate
	for _, d := range AllWeekdays {
		t.Days[d] = DefaultDaySpec(d)
	}
	t.TimeGap = DefaultTimeGapMinutes
	return t
}

// MarshalJSON encodes the template as {monday: {...}, ..., sunday: {...}, timeGap: n}.
func (t WeeklyTemplate) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, DaysInWeek+1)
	for _, d := range AllWeekdays {
		out[d.String()] = t.Days[d]
	}
	out["timeGap"] = t.TimeGap
	return json.Marshal(out)
}

// UnmarshalJSON accepts weekday keys in any case. Missing weekdays get DefaultDaySpec.
func (t *WeeklyTemplate) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	result := DefaultWeeklyTemplate()
	result.TimeGap = 0

	for key, value := range raw {
		if key == "timeGap" {
			if err := json.Unmarshal(value, &result.TimeGap); err != nil {
				return fmt.Errorf("timeGap: %w", err)
			}
			continue
		}

		day, err := ParseWeekday(key)
		if err != nil {
			continue
		}

		var spec DaySpec
		if err := json.Unmarshal(value, &spec); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		result.Days[day] = spec
	}

	*t = result
	return nil
}
