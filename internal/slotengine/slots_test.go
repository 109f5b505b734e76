package slotengine

import (
	"math/rand"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	"github.com/m04kA/SMC-TireSlotService/pkg/types"
)

func slot(start, end string) Slot {
	return Slot{Start: types.MustParseMinute(start), End: types.MustParseMinute(end)}
}

func TestGenerateSlots_FullyBookedDay(t *testing.T) {
	got := GenerateSlots(SlotParams{
		Open:       types.MustParseMinute("09:00"),
		Close:      types.MustParseMinute("17:00"),
		TimeGap:    30,
		Duration:   30,
		Busy:       []domain.Interval{iv("09:00", "17:00")},
		CloseGuard: 1,
	})
	assert.Empty(t, got)
}

func TestGenerateSlots_FreeDay(t *testing.T) {
	got := GenerateSlots(SlotParams{
		Open:       types.MustParseMinute("09:00"),
		Close:      types.MustParseMinute("17:00"),
		TimeGap:    30,
		Duration:   60,
		Now:        types.MustParseMinute("23:00"),
		CloseGuard: 1,
	})

	require.Len(t, got, 14)
	assert.Equal(t, slot("09:00", "10:00"), got[0])
	// 16:00-17:00 заканчивается позже 16:59
	assert.Equal(t, slot("15:30", "16:30"), got[len(got)-1])
}

func TestGenerateSlots_WithoutGuardReachesClose(t *testing.T) {
	got := GenerateSlots(SlotParams{
		Open:     types.MustParseMinute("09:00"),
		Close:    types.MustParseMinute("17:00"),
		TimeGap:  30,
		Duration: 60,
	})
	require.NotEmpty(t, got)
	assert.Equal(t, slot("16:00", "17:00"), got[len(got)-1])
}

func TestGenerateSlots_AdjacencyRule(t *testing.T) {
	got := GenerateSlots(SlotParams{
		Open:       types.MustParseMinute("09:00"),
		Close:      types.MustParseMinute("13:00"),
		TimeGap:    30,
		Duration:   30,
		Busy:       []domain.Interval{iv("10:00", "11:00")},
		CloseGuard: 1,
	})

	assert.Equal(t, []Slot{
		slot("09:00", "09:30"),
		slot("09:30", "10:00"), // заканчивается ровно в начале записи
		// 11:00 совпадает с окончанием записи
		slot("11:30", "12:00"),
		slot("12:00", "12:30"),
	}, got)
}

func TestGenerateSlots_UnalignedBusy(t *testing.T) {
	got := GenerateSlots(SlotParams{
		Open:     types.MustParseMinute("09:00"),
		Close:    types.MustParseMinute("11:00"),
		TimeGap:  30,
		Duration: 30,
		Busy:     []domain.Interval{iv("09:40", "09:50")},
	})

	assert.Equal(t, []Slot{
		slot("09:00", "09:30"),
		slot("10:00", "10:30"),
		slot("10:30", "11:00"),
	}, got)
}

func TestGenerateSlots_SameDayCutoff(t *testing.T) {
	base := SlotParams{
		Open:       types.MustParseMinute("09:00"),
		Close:      types.MustParseMinute("17:00"),
		TimeGap:    30,
		Duration:   60,
		IsToday:    true,
		CloseGuard: 1,
	}

	tests := []struct {
		name      string
		now       string
		wantFirst *Slot
	}{
		{name: "before opening", now: "07:00", wantFirst: &Slot{Start: 540, End: 600}},
		{name: "cutoff equals open", now: "08:30", wantFirst: &Slot{Start: 540, End: 600}},
		{name: "rounded up to gap", now: "10:07", wantFirst: &Slot{Start: 660, End: 720}},
		{name: "already aligned", now: "10:00", wantFirst: &Slot{Start: 630, End: 690}},
		{name: "too late for a full slot", now: "15:10", wantFirst: nil},
		{name: "after closing", now: "18:00", wantFirst: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			p.Now = types.MustParseMinute(tt.now)
			got := GenerateSlots(p)

			if tt.wantFirst == nil {
				assert.Empty(t, got)
				return
			}
			require.NotEmpty(t, got)
			assert.Equal(t, *tt.wantFirst, got[0])
		})
	}
}

func TestGenerateSlots_DegenerateInput(t *testing.T) {
	base := SlotParams{Open: 540, Close: 1020, TimeGap: 30, Duration: 60}

	noGap := base
	noGap.TimeGap = 0
	assert.Empty(t, GenerateSlots(noGap))

	noDuration := base
	noDuration.Duration = 0
	assert.Empty(t, GenerateSlots(noDuration))

	inverted := base
	inverted.Open, inverted.Close = 1020, 540
	assert.Empty(t, GenerateSlots(inverted))

	tooLong := base
	tooLong.Duration = 500
	assert.Empty(t, GenerateSlots(tooLong))
}

func TestGenerateSlots_ContainmentAndIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	open, closeMin := types.NewMinute(8, 0), types.NewMinute(18, 0)

	for round := 0; round < 200; round++ {
		raw := make([]domain.Interval, rng.Intn(6))
		for i := range raw {
			start := open.Add(rng.Intn(600))
			raw[i] = domain.Interval{Start: start, End: start.Add(5 + rng.Intn(90))}
		}

		p := SlotParams{
			Open:       open,
			Close:      closeMin,
			TimeGap:    []int{10, 15, 20, 30, 45, 60}[rng.Intn(6)],
			Duration:   15 + rng.Intn(120),
			Busy:       BuildBusyIntervals(raw, open, closeMin),
			IsToday:    rng.Intn(2) == 0,
			Now:        types.Minute(rng.Intn(int(types.MinutesPerDay))),
			CloseGuard: 1,
		}

		got := GenerateSlots(p)
		effectiveOpen := EffectiveOpen(p.Open, p.Now, p.TimeGap, p.IsToday)
		effectiveClose := p.Close.Add(-p.CloseGuard)

		for i, s := range got {
			require.GreaterOrEqual(t, s.Start, effectiveOpen)
			require.LessOrEqual(t, s.End, effectiveClose)
			require.Equal(t, p.Duration, int(s.End-s.Start))
			for _, b := range p.Busy {
				require.False(t, s.Interval().Overlaps(b), "slot %v overlaps busy %v", s, b)
			}
			if i > 0 {
				require.Less(t, got[i-1].Start, s.Start)
			}
		}

		require.Equal(t, got, GenerateSlots(p))
	}
}

func TestRoundUpToGap(t *testing.T) {
	for gap := 1; gap <= 90; gap++ {
		for m := types.Minute(0); m < types.MinutesPerDay; m++ {
			got := RoundUpToGap(m, gap)
			require.Zero(t, int(got)%gap)
			require.GreaterOrEqual(t, got, m)
			require.Less(t, got, m.Add(gap))
		}
	}

	assert.Equal(t, types.Minute(660), RoundUpToGap(637, 30))
	assert.Equal(t, types.Minute(630), RoundUpToGap(630, 30))
	assert.Equal(t, types.Minute(637), RoundUpToGap(637, 0))
}

func TestEffectiveOpen_MonotonicInGap(t *testing.T) {
	// Каждый шаг делит следующий
	chains := [][]int{{15, 30, 60}, {10, 20, 60}, {5, 15, 45}}

	for _, open := range []types.Minute{types.NewMinute(9, 0), types.NewMinute(9, 5)} {
		for _, chain := range chains {
			for now := types.Minute(0); now < types.MinutesPerDay; now++ {
				prev := EffectiveOpen(open, now, chain[0], true)
				for _, gap := range chain[1:] {
					cur := EffectiveOpen(open, now, gap, true)
					require.GreaterOrEqual(t, cur, prev, "open=%v now=%v gap=%d", open, now, gap)
					prev = cur
				}
			}
		}
	}
}

func TestEffectiveOpen_NotToday(t *testing.T) {
	assert.Equal(t, types.Minute(540), EffectiveOpen(540, 900, 30, false))
}

func TestSlot_JSON(t *testing.T) {
	data, err := json.Marshal([]Slot{slot("09:00", "10:00")})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"start":"09:00","end":"10:00"}]`, string(data))
}
