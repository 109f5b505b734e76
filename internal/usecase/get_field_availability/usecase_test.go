package get_field_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	"github.com/m04kA/SMC-TireSlotService/internal/slotengine"
	"github.com/m04kA/SMC-TireSlotService/pkg/logger"
	"github.com/m04kA/SMC-TireSlotService/pkg/ptr"
)

type fakeWorkOrders struct {
	orders []domain.WorkOrder
	err    error
	dates  []time.Time
}

func (f *fakeWorkOrders) GetByDates(_ context.Context, dates []time.Time) ([]domain.WorkOrder, error) {
	f.dates = dates
	return f.orders, f.err
}

type fakeCatalog struct {
	services []domain.Service
	err      error
	calls    int
}

func (f *fakeCatalog) GetServicesWithGracefulDegradation(context.Context) ([]domain.Service, error) {
	f.calls++
	return f.services, f.err
}

type recordingObserver struct {
	kind  string
	count int
}

func (r *recordingObserver) ObserveSlots(kind string, count int) {
	r.kind = kind
	r.count = count
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var now = time.Date(2024, 6, 3, 15, 10, 0, 0, domain.Location())

func newUseCase(repo *fakeWorkOrders, catalog *fakeCatalog, observer *recordingObserver) *UseCase {
	return NewUseCase(
		repo,
		catalog,
		observer,
		slotengine.DefaultFieldPolicy(),
		DefaultLabels(),
		domain.DefaultSlotsLimit,
		logger.NewNop(),
	).WithTimeProvider(fixedTime{now: now})
}

func ordersForTomorrow() []domain.WorkOrder {
	// DATE из БД приходит как полночь UTC
	return []domain.WorkOrder{
		{ID: 1, VisitDate: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), VisitTime: ptr.Ptr("14:00"), Service: "Wymiana opon"},
	}
}

func TestUseCase_Execute_Ranges(t *testing.T) {
	repo := &fakeWorkOrders{orders: ordersForTomorrow()}
	catalog := &fakeCatalog{services: []domain.Service{{Name: "Wymiana opon", Duration: 60}}}
	observer := &recordingObserver{}

	resp, err := newUseCase(repo, catalog, observer).Execute(context.Background(), &Request{Limit: 22})
	require.NoError(t, err)

	require.Len(t, resp.Days, 3)
	assert.Equal(t, DayToday, resp.Days[0].Key)
	assert.Equal(t, "Dziś", resp.Days[0].Label)
	assert.Equal(t, []string{"15:40–19:30"}, resp.Days[0].Ranges)
	assert.Equal(t, []string{"12:30–13:30", "15:30–19:30"}, resp.Days[1].Ranges)
	assert.Equal(t, []string{"12:30–19:30"}, resp.Days[2].Ranges)
	assert.Equal(t, "2024-06-05", resp.Days[2].Date.Format(domain.DateFormat))

	require.Len(t, resp.Slots, 22)
	assert.Equal(t, "Dziś 15:40", resp.Slots[0])
	assert.Equal(t, "Dziś 19:10", resp.Slots[14])
	assert.Equal(t, "Jutro 12:30", resp.Slots[15])
	assert.Equal(t, "Jutro 13:15", resp.Slots[18])
	assert.Equal(t, "Jutro 15:30", resp.Slots[19])

	assert.Equal(t, metricKind, observer.kind)
	assert.Equal(t, 22, observer.count)
	assert.Equal(t, 1, catalog.calls)

	require.Len(t, repo.dates, 3)
	assert.Equal(t, "2024-06-03", repo.dates[0].Format(domain.DateFormat))
}

func TestUseCase_Execute_DefaultLimit(t *testing.T) {
	catalog := &fakeCatalog{}
	resp, err := newUseCase(&fakeWorkOrders{}, catalog, &recordingObserver{}).
		Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, domain.DefaultSlotsLimit)

	// без заказов каталог не запрашивается
	assert.Zero(t, catalog.calls)
}

func TestUseCase_Execute_CatalogDegraded(t *testing.T) {
	repo := &fakeWorkOrders{orders: ordersForTomorrow()}
	catalog := &fakeCatalog{err: errors.New("crm down")}

	resp, err := newUseCase(repo, catalog, &recordingObserver{}).Execute(context.Background(), &Request{})
	require.NoError(t, err)

	// длительность по умолчанию 60 минут
	assert.Equal(t, []string{"12:30–13:30", "15:30–19:30"}, resp.Days[1].Ranges)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		repoErr error
		wantErr error
	}{
		{name: "negative limit", req: &Request{Limit: -1}, wantErr: ErrInvalidInput},
		{name: "limit too large", req: &Request{Limit: domain.MaxSlotsLimit + 1}, wantErr: ErrInvalidInput},
		{name: "repository failure", req: &Request{}, repoErr: errors.New("boom"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(&fakeWorkOrders{err: tt.repoErr}, &fakeCatalog{}, &recordingObserver{})
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
