package slotengine

import (
	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	"github.com/m04kA/SMC-TireSlotService/pkg/types"
)

// RangeSeparator разделитель в подписи диапазона "12:30–13:30"
const RangeSeparator = "–"

// DayRanges свободные диапазоны одного дня с подписью дня ("Dziś", "Jutro", ...)
type DayRanges struct {
	Label     string
	Intervals []domain.Interval
}

// FreeIntervals возвращает дополнение занятых интервалов в окне [open, closeMin).
// busy должен быть отсортирован (BuildBusyIntervals).
func FreeIntervals(open, closeMin types.Minute, busy []domain.Interval) []domain.Interval {
	free := make([]domain.Interval, 0)
	if open >= closeMin {
		return free
	}

	cursor := open
	for _, b := range busy {
		// Интервал не пересекает окно
		if b.End <= open || b.Start >= closeMin {
			continue
		}
		if b.Start > cursor {
			free = append(free, domain.Interval{Start: cursor, End: b.Start})
		}
		cursor = max(cursor, b.End)
	}

	if cursor < closeMin {
		free = append(free, domain.Interval{Start: cursor, End: closeMin})
	}

	return free
}

// ApplyTravelBuffer срезает buffer минут с обоих концов каждого свободного интервала.
// Интервалы короче minLen (или пустые) отбрасываются.
func ApplyTravelBuffer(free []domain.Interval, buffer, minLen int) []domain.Interval {
	result := make([]domain.Interval, 0, len(free))
	for _, iv := range free {
		shrunk := domain.Interval{
			Start: iv.Start.Add(buffer),
			End:   iv.End.Add(-buffer),
		}
		if shrunk.IsEmpty() || shrunk.Len() < minLen {
			continue
		}
		result = append(result, shrunk)
	}
	return result
}

// FormatRange форматирует интервал как "HH:mm–HH:mm"
func FormatRange(iv domain.Interval) string {
	return iv.Start.String() + RangeSeparator + iv.End.String()
}

// FormatRanges форматирует список интервалов
func FormatRanges(intervals []domain.Interval) []string {
	result := make([]string, 0, len(intervals))
	for _, iv := range intervals {
		result = append(result, FormatRange(iv))
	}
	return result
}

// MaterializeSubSlots нарезает диапазоны на слоты по step минут вида "<Label> HH:mm".
// Дни заполняются по порядку, пока не набрано limit слотов.
func MaterializeSubSlots(days []DayRanges, step, limit int) []string {
	result := make([]string, 0)
	if step <= 0 || limit <= 0 {
		return result
	}

	for _, day := range days {
		for _, iv := range day.Intervals {
			for t := iv.Start; t.Add(step) <= iv.End; t = t.Add(step) {
				result = append(result, day.Label+" "+t.String())
				if len(result) >= limit {
					return result
				}
			}
		}
	}

	return result
}
