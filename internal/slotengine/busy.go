package slotengine

import (
	"cmp"
	"slices"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	"github.com/m04kA/SMC-TireSlotService/pkg/types"
)

// BuildBusyIntervals обрезает занятые интервалы по рабочему окну [open, closeMin),
// сортирует и склеивает пересекающиеся и соприкасающиеся.
// Результат не зависит от порядка входных интервалов.
func BuildBusyIntervals(raw []domain.Interval, open, closeMin types.Minute) []domain.Interval {
	clipped := make([]domain.Interval, 0, len(raw))
	for _, iv := range raw {
		if iv.IsEmpty() {
			continue
		}
		// Целиком вне окна
		if iv.End <= open || iv.Start >= closeMin {
			continue
		}
		clipped = append(clipped, domain.Interval{
			Start: max(iv.Start, open),
			End:   min(iv.End, closeMin),
		})
	}

	if len(clipped) == 0 {
		return []domain.Interval{}
	}

	slices.SortFunc(clipped, func(a, b domain.Interval) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})

	merged := make([]domain.Interval, 0, len(clipped))
	current := clipped[0]
	for _, next := range clipped[1:] {
		if next.Start <= current.End {
			current.End = max(current.End, next.End)
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)

	return merged
}

// BusyFromBookedSlots переводит забронированные окна "HH:mm" в интервалы.
// Записи с некорректным временем пропускаются.
func BusyFromBookedSlots(slots []domain.BookedSlot) []domain.Interval {
	result := make([]domain.Interval, 0, len(slots))
	for _, s := range slots {
		start, err := types.ParseMinute(s.Start)
		if err != nil {
			continue
		}
		end, err := types.ParseMinute(s.End)
		if err != nil {
			continue
		}
		result = append(result, domain.Interval{Start: start, End: end})
	}
	return result
}

// BusyFromWorkOrders переводит выездные заказы одного дня в интервалы [visitTime, visitTime+duration).
// Заказы без времени или с некорректным временем пропускаются, конец ограничен полуночью.
func BusyFromWorkOrders(orders []domain.WorkOrder, durations map[string]int, defaultDuration int) []domain.Interval {
	result := make([]domain.Interval, 0, len(orders))
	for _, o := range orders {
		if o.VisitTime == nil {
			continue
		}
		start, err := types.ParseMinute(*o.VisitTime)
		if err != nil {
			continue
		}
		duration := ResolveServiceDuration(o.Service, durations, defaultDuration)
		result = append(result, domain.Interval{
			Start: start,
			End:   min(start.Add(duration), types.MinutesPerDay),
		})
	}
	return result
}
