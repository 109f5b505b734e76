package slotengine

import (
	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	"github.com/m04kA/SMC-TireSlotService/pkg/types"
)

// Slot кандидат на запись [Start, End)
type Slot struct {
	Start types.Minute `json:"start"`
	End   types.Minute `json:"end"`
}

// Interval возвращает слот как интервал
func (s Slot) Interval() domain.Interval {
	return domain.Interval{Start: s.Start, End: s.End}
}

// SlotParams входные данные генератора слотов
type SlotParams struct {
	Open       types.Minute
	Close      types.Minute
	TimeGap    int               // шаг между началами слотов
	Duration   int               // длительность услуги
	Busy       []domain.Interval // склеенные занятые интервалы (BuildBusyIntervals)
	IsToday    bool
	Now        types.Minute // текущее время, учитывается только для сегодняшней даты
	CloseGuard int          // ни один слот не заканчивается позже Close - CloseGuard
}

// RoundUpToGap округляет минуту вверх до ближайшего кратного gap
func RoundUpToGap(m types.Minute, gap int) types.Minute {
	if gap <= 0 {
		return m
	}
	rem := int(m) % gap
	if rem == 0 {
		return m
	}
	return m.Add(gap - rem)
}

// EffectiveOpen возвращает время, с которого можно предлагать слоты.
// Сегодня нельзя записаться раньше now + gap (с округлением вверх до кратного gap).
func EffectiveOpen(open, now types.Minute, gap int, isToday bool) types.Minute {
	if !isToday {
		return open
	}
	cutoff := now.Add(gap)
	if cutoff <= open {
		return open
	}
	return RoundUpToGap(cutoff, gap)
}

// GenerateSlots возвращает упорядоченный список слотов длительностью Duration с шагом TimeGap
func GenerateSlots(p SlotParams) []Slot {
	slots := make([]Slot, 0)

	if p.TimeGap <= 0 || p.Duration <= 0 || p.Open >= p.Close {
		return slots
	}

	effectiveClose := p.Close.Add(-max(p.CloseGuard, 0))
	effectiveOpen := EffectiveOpen(p.Open, p.Now, p.TimeGap, p.IsToday)

	// Частичные слоты не предлагаем
	if effectiveOpen.Add(p.Duration) > effectiveClose {
		return slots
	}

	for start := effectiveOpen; start.Add(p.Duration) <= effectiveClose; start = start.Add(p.TimeGap) {
		slot := Slot{Start: start, End: start.Add(p.Duration)}
		if isSlotFree(slot, p.Busy, p.TimeGap) {
			slots = append(slots, slot)
		}
	}

	return slots
}

// isSlotFree проверяет слот на пересечение с занятыми интервалами.
// Минуты слота с шагом gap также не должны совпадать с концом какой-либо записи:
// слот не может начинаться ровно в момент окончания другой записи.
func isSlotFree(slot Slot, busy []domain.Interval, gap int) bool {
	window := slot.Interval()
	for _, b := range busy {
		if window.Overlaps(b) {
			return false
		}
	}

	for t := slot.Start; t < slot.End; t = t.Add(gap) {
		for _, b := range busy {
			if t == b.End {
				return false
			}
		}
	}

	return true
}
