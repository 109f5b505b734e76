package slotengine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	"github.com/m04kA/SMC-TireSlotService/pkg/ptr"
	"github.com/m04kA/SMC-TireSlotService/pkg/types"
)

func iv(start, end string) domain.Interval {
	return domain.Interval{Start: types.MustParseMinute(start), End: types.MustParseMinute(end)}
}

func TestBuildBusyIntervals(t *testing.T) {
	open, closeMin := types.MustParseMinute("09:00"), types.MustParseMinute("17:00")

	tests := []struct {
		name string
		raw  []domain.Interval
		want []domain.Interval
	}{
		{
			name: "no bookings",
			raw:  nil,
			want: []domain.Interval{},
		},
		{
			name: "unsorted overlapping",
			raw:  []domain.Interval{iv("11:00", "12:00"), iv("09:30", "10:30"), iv("10:00", "10:45")},
			want: []domain.Interval{iv("09:30", "10:45"), iv("11:00", "12:00")},
		},
		{
			name: "touching intervals merge",
			raw:  []domain.Interval{iv("10:00", "11:00"), iv("11:00", "12:00")},
			want: []domain.Interval{iv("10:00", "12:00")},
		},
		{
			name: "contained interval",
			raw:  []domain.Interval{iv("10:00", "14:00"), iv("11:00", "12:00")},
			want: []domain.Interval{iv("10:00", "14:00")},
		},
		{
			name: "clipped to window",
			raw:  []domain.Interval{iv("08:00", "09:30"), iv("16:30", "18:00")},
			want: []domain.Interval{iv("09:00", "09:30"), iv("16:30", "17:00")},
		},
		{
			name: "outside window and empty are dropped",
			raw:  []domain.Interval{iv("07:00", "09:00"), iv("17:00", "18:00"), iv("12:00", "12:00"), iv("13:00", "12:00")},
			want: []domain.Interval{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildBusyIntervals(tt.raw, open, closeMin))
		})
	}
}

func TestBuildBusyIntervals_MergeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	open, closeMin := types.NewMinute(8, 0), types.NewMinute(18, 0)

	for round := 0; round < 200; round++ {
		raw := make([]domain.Interval, rng.Intn(12))
		for i := range raw {
			start := types.Minute(rng.Intn(int(types.MinutesPerDay)))
			raw[i] = domain.Interval{Start: start, End: start.Add(rng.Intn(180) - 10)}
		}

		got := BuildBusyIntervals(raw, open, closeMin)

		// Отсортировано и без пересечений (соприкасающиеся тоже склеены)
		for i := 1; i < len(got); i++ {
			require.Less(t, got[i-1].End, got[i].Start)
		}

		// Покрытые минуты совпадают с объединением обрезанных входов
		var want, covered [types.MinutesPerDay]bool
		for _, r := range raw {
			for m := max(r.Start, open); m < min(r.End, closeMin); m++ {
				want[m] = true
			}
		}
		for _, g := range got {
			require.False(t, g.IsEmpty())
			for m := g.Start; m < g.End; m++ {
				covered[m] = true
			}
		}
		require.Equal(t, want, covered)

		// Результат не зависит от порядка входа
		shuffled := append([]domain.Interval(nil), raw...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		require.Equal(t, got, BuildBusyIntervals(shuffled, open, closeMin))
	}
}

func TestBusyFromBookedSlots_SkipsMalformed(t *testing.T) {
	got := BusyFromBookedSlots([]domain.BookedSlot{
		{Start: "10:00", End: "11:00"},
		{Start: "1000", End: "11:00"},
		{Start: "12:00", End: "25:00"},
	})
	assert.Equal(t, []domain.Interval{iv("10:00", "11:00")}, got)
}

func TestBusyFromWorkOrders(t *testing.T) {
	durations := map[string]int{"wymiana opon": 45, "wyważanie": 30}

	got := BusyFromWorkOrders([]domain.WorkOrder{
		{ID: 1, VisitTime: ptr.Ptr("12:00"), Service: "Wymiana opon + Wyważanie"},
		{ID: 2, VisitTime: nil, Service: "Wymiana opon"},
		{ID: 3, VisitTime: ptr.Ptr("bad"), Service: "Wymiana opon"},
		{ID: 4, VisitTime: ptr.Ptr("15:00"), Service: "Mycie"},
		{ID: 5, VisitTime: ptr.Ptr("23:30"), Service: "Mycie"},
	}, durations, 60)

	assert.Equal(t, []domain.Interval{
		iv("12:00", "12:45"),
		iv("15:00", "16:00"),
		{Start: types.NewMinute(23, 30), End: types.MinutesPerDay},
	}, got)
}
