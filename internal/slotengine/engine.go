package slotengine

import (
	"time"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	"github.com/m04kA/SMC-TireSlotService/pkg/types"
)

// Policy параметры генерации слотов для клиентской записи
type Policy struct {
	DefaultTimeGap int // используется, если в шаблоне timeGap не задан
	CloseGuard     int
}

// DefaultPolicy шаг 30 минут, защитный интервал перед закрытием 1 минута
func DefaultPolicy() Policy {
	return Policy{
		DefaultTimeGap: domain.DefaultTimeGapMinutes,
		CloseGuard:     domain.DefaultCloseGuardMinutes,
	}
}

// DayRequest запрос слотов на один день
type DayRequest struct {
	Date     time.Time
	Now      time.Time
	Duration int
	Booked   []domain.BookedSlot
}

// DaySlots результат для одного дня
type DaySlots struct {
	Availability DayAvailability
	Slots        []Slot
}

// ComputeDaySlots связывает все этапы: рабочее окно -> занятые интервалы -> слоты
func (p Policy) ComputeDaySlots(tmpl domain.WeeklyTemplate, req DayRequest) DaySlots {
	availability := ResolveDay(tmpl, req.Date, p.DefaultTimeGap)
	if !availability.IsAvailable {
		return DaySlots{Availability: availability, Slots: []Slot{}}
	}

	busy := BuildBusyIntervals(BusyFromBookedSlots(req.Booked), availability.Open, availability.Close)

	now := req.Now.In(domain.Location())
	slots := GenerateSlots(SlotParams{
		Open:       availability.Open,
		Close:      availability.Close,
		TimeGap:    availability.TimeGap,
		Duration:   req.Duration,
		Busy:       busy,
		IsToday:    domain.IsSameDay(req.Date, now),
		Now:        types.MinuteOf(now),
		CloseGuard: p.CloseGuard,
	})

	return DaySlots{Availability: availability, Slots: slots}
}

// ContainsStart ищет слот, начинающийся в start
func ContainsStart(slots []Slot, start types.Minute) (Slot, bool) {
	for _, s := range slots {
		if s.Start == start {
			return s, true
		}
	}
	return Slot{}, false
}
