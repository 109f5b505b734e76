package slotengine

import (
	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	"github.com/m04kA/SMC-TireSlotService/pkg/types"
)

// FieldPolicy параметры расписания выездного сервиса
type FieldPolicy struct {
	WorkdayStart    types.Minute
	WorkdayEnd      types.Minute
	TravelBuffer    int // срезается с обоих концов свободного интервала
	MinFreeMinutes  int // минимальная длина интервала после буфера
	SlotStep        int
	DefaultDuration int // длительность визита, если услуга не найдена в справочнике
}

// DefaultFieldPolicy 12:00-20:00, буфер 30 минут, шаг 15 минут
func DefaultFieldPolicy() FieldPolicy {
	return FieldPolicy{
		WorkdayStart:    types.MustParseMinute(domain.DefaultFieldWorkdayStart),
		WorkdayEnd:      types.MustParseMinute(domain.DefaultFieldWorkdayEnd),
		TravelBuffer:    domain.DefaultTravelBufferMinutes,
		MinFreeMinutes:  domain.DefaultMinFreeIntervalMinutes,
		SlotStep:        domain.DefaultSlotStepMinutes,
		DefaultDuration: domain.DefaultServiceDurationMinutes,
	}
}

// FieldDay входные данные одного дня выездного расписания
type FieldDay struct {
	IsToday bool
	Now     types.Minute
	Orders  []domain.WorkOrder // заказы этого дня
}

// Window возвращает рабочее окно дня; сегодня оно начинается не раньше текущего времени
func (p FieldPolicy) Window(day FieldDay) domain.Interval {
	open := p.WorkdayStart
	if day.IsToday {
		open = max(open, day.Now)
	}
	return domain.Interval{Start: open, End: p.WorkdayEnd}
}

// ComputeFieldRanges возвращает свободные интервалы дня с учетом буфера на дорогу
func (p FieldPolicy) ComputeFieldRanges(day FieldDay, durations map[string]int) []domain.Interval {
	window := p.Window(day)
	if window.IsEmpty() {
		return []domain.Interval{}
	}

	raw := BusyFromWorkOrders(day.Orders, durations, p.DefaultDuration)
	busy := BuildBusyIntervals(raw, window.Start, window.End)
	free := FreeIntervals(window.Start, window.End, busy)

	return ApplyTravelBuffer(free, p.TravelBuffer, p.MinFreeMinutes)
}
