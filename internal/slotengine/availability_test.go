package slotengine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	"github.com/m04kA/SMC-TireSlotService/pkg/types"
)

func TestResolveWeekday(t *testing.T) {
	tmpl := domain.DefaultWeeklyTemplate()
	tmpl.TimeGap = 0
	tmpl.SetDay(domain.Saturday, domain.DaySpec{IsAvailable: true, StartTime: "10:00", EndTime: "14:00"})
	tmpl.SetDay(domain.Tuesday, domain.DaySpec{IsAvailable: true, StartTime: "9:00", EndTime: "17:00"})
	tmpl.SetDay(domain.Wednesday, domain.DaySpec{IsAvailable: true, StartTime: "17:00", EndTime: "09:00"})

	tests := []struct {
		name string
		day  domain.Weekday
		want DayAvailability
	}{
		{
			name: "regular day",
			day:  domain.Monday,
			want: DayAvailability{IsAvailable: true, Open: types.NewMinute(9, 0), Close: types.NewMinute(17, 0), TimeGap: 30},
		},
		{
			name: "saturday override",
			day:  domain.Saturday,
			want: DayAvailability{IsAvailable: true, Open: types.NewMinute(10, 0), Close: types.NewMinute(14, 0), TimeGap: 30},
		},
		{
			name: "day off",
			day:  domain.Sunday,
			want: DayAvailability{TimeGap: 30},
		},
		{
			name: "malformed time is treated as unavailable",
			day:  domain.Tuesday,
			want: DayAvailability{TimeGap: 30},
		},
		{
			name: "inverted window is unavailable",
			day:  domain.Wednesday,
			want: DayAvailability{TimeGap: 30},
		},
		{
			name: "invalid weekday",
			day:  domain.Weekday(9),
			want: DayAvailability{TimeGap: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveWeekday(tmpl, tt.day, 30))
		})
	}
}

func TestResolveDay_UsesTemplateGap(t *testing.T) {
	tmpl := domain.DefaultWeeklyTemplate()
	tmpl.TimeGap = 20

	// 2024-06-03 is a Monday
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, domain.Location())
	got := ResolveDay(tmpl, date, 30)

	assert.True(t, got.IsAvailable)
	assert.Equal(t, 20, got.TimeGap)
	assert.Equal(t, domain.Interval{Start: types.NewMinute(9, 0), End: types.NewMinute(17, 0)}, got.Window())
}
