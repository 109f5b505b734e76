package slotengine

import (
	"time"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	"github.com/m04kA/SMC-TireSlotService/pkg/types"
)

// DayAvailability рабочее окно одного дня
type DayAvailability struct {
	IsAvailable bool
	Open        types.Minute
	Close       types.Minute
	TimeGap     int
}

// Window возвращает рабочее окно как интервал
func (a DayAvailability) Window() domain.Interval {
	return domain.Interval{Start: a.Open, End: a.Close}
}

// ResolveDay возвращает рабочее окно для даты (день недели считается по Europe/Warsaw)
func ResolveDay(tmpl domain.WeeklyTemplate, date time.Time, defaultGap int) DayAvailability {
	return ResolveWeekday(tmpl, domain.WeekdayOf(date), defaultGap)
}

// ResolveWeekday возвращает рабочее окно для дня недели.
// Некорректное время, выходной или open >= close дают IsAvailable=false.
func ResolveWeekday(tmpl domain.WeeklyTemplate, weekday domain.Weekday, defaultGap int) DayAvailability {
	gap := tmpl.TimeGap
	if gap <= 0 {
		gap = defaultGap
	}

	result := DayAvailability{TimeGap: gap}

	if !weekday.Valid() {
		return result
	}

	spec := tmpl.Day(weekday)
	if !spec.IsAvailable {
		return result
	}

	open, err := types.ParseMinute(spec.StartTime)
	if err != nil {
		return result
	}
	closeMin, err := types.ParseMinute(spec.EndTime)
	if err != nil {
		return result
	}
	if open >= closeMin {
		return result
	}

	result.IsAvailable = true
	result.Open = open
	result.Close = closeMin
	return result
}
