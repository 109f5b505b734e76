package slotengine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	"github.com/m04kA/SMC-TireSlotService/pkg/ptr"
	"github.com/m04kA/SMC-TireSlotService/pkg/types"
)

func TestFieldPolicy_ComputeFieldRanges(t *testing.T) {
	policy := DefaultFieldPolicy()
	durations := map[string]int{"wymiana opon": 60, "wyważanie": 30}

	tests := []struct {
		name string
		day  FieldDay
		want []string
	}{
		{
			name: "empty future day",
			day:  FieldDay{},
			want: []string{"12:30–19:30"},
		},
		{
			name: "one visit splits the day",
			day: FieldDay{Orders: []domain.WorkOrder{
				{VisitTime: ptr.Ptr("14:00"), Service: "Wymiana opon + Wyważanie"},
			}},
			want: []string{"12:30–13:30", "15:30–19:30"},
		},
		{
			name: "visit without time is ignored",
			day: FieldDay{Orders: []domain.WorkOrder{
				{VisitTime: nil, Service: "Wymiana opon"},
			}},
			want: []string{"12:30–19:30"},
		},
		{
			name: "today starts at now",
			day:  FieldDay{IsToday: true, Now: types.MustParseMinute("15:10")},
			want: []string{"15:40–19:30"},
		},
		{
			name: "today before workday uses workday start",
			day:  FieldDay{IsToday: true, Now: types.MustParseMinute("08:00")},
			want: []string{"12:30–19:30"},
		},
		{
			name: "today after closing",
			day:  FieldDay{IsToday: true, Now: types.MustParseMinute("20:05")},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.ComputeFieldRanges(tt.day, durations)
			assert.Equal(t, tt.want, FormatRanges(got))
		})
	}
}
