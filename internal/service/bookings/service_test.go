package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TireSlotService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TireSlotService/internal/service/bookings/models"
	"github.com/m04kA/SMC-TireSlotService/pkg/ptr"
	"github.com/m04kA/SMC-TireSlotService/pkg/types"
)

type fakeRepo struct {
	bookings   map[int64]*domain.Booking
	lastFilter domain.BookingsFilter
	listErr    error
	cancelled  []int64
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.IncludeInactive || b.IsActive() {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, reason *string) error {
	f.cancelled = append(f.cancelled, id)
	f.bookings[id].Status = domain.StatusCancelled
	f.bookings[id].CancellationReason = reason
	return nil
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRepo() *fakeRepo {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	return &fakeRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, BookingDate: date, StartTime: types.NewMinute(9, 0), EndTime: types.NewMinute(10, 0), Status: domain.StatusConfirmed},
		2: {ID: 2, BookingDate: date, StartTime: types.NewMinute(11, 0), EndTime: types.NewMinute(12, 0), Status: domain.StatusCompleted},
		3: {ID: 3, BookingDate: date, StartTime: types.NewMinute(13, 0), EndTime: types.NewMinute(14, 0), Status: domain.StatusCancelled},
	}}
}

func TestService_ListByDate(t *testing.T) {
	repo := newRepo()
	svc := NewService(repo, passthroughTx{}, nopLogger{})

	date := time.Date(2024, 6, 3, 15, 30, 0, 0, domain.Location())
	resp, err := svc.ListByDate(context.Background(), &models.ListByDateRequest{Date: date})
	require.NoError(t, err)

	assert.Equal(t, "2024-06-03", resp.Date)
	assert.Len(t, resp.Bookings, 2)
	require.NotNil(t, repo.lastFilter.StartDate)
	assert.True(t, repo.lastFilter.StartDate.Equal(*repo.lastFilter.EndDate))
	assert.Equal(t, 0, repo.lastFilter.StartDate.Hour())
}

func TestService_ListByDate_Errors(t *testing.T) {
	svc := NewService(newRepo(), passthroughTx{}, nopLogger{})
	_, err := svc.ListByDate(context.Background(), &models.ListByDateRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo := newRepo()
	repo.listErr = errors.New("db down")
	_, err = NewService(repo, passthroughTx{}, nopLogger{}).
		ListByDate(context.Background(), &models.ListByDateRequest{Date: time.Now()})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Cancel(t *testing.T) {
	repo := newRepo()
	svc := NewService(repo, passthroughTx{}, nopLogger{})
	ctx := context.Background()

	require.NoError(t, svc.Cancel(ctx, 1, &models.CancelBookingRequest{CancellationReason: ptr.Ptr("klient zadzwonił")}))
	assert.Equal(t, []int64{1}, repo.cancelled)
	assert.False(t, repo.bookings[1].IsActive())

	assert.ErrorIs(t, svc.Cancel(ctx, 2, &models.CancelBookingRequest{}), ErrCannotCancel)
	assert.ErrorIs(t, svc.Cancel(ctx, 3, &models.CancelBookingRequest{}), ErrCannotCancel)
	assert.ErrorIs(t, svc.Cancel(ctx, 42, &models.CancelBookingRequest{}), ErrBookingNotFound)
	assert.ErrorIs(t, svc.Cancel(ctx, 0, &models.CancelBookingRequest{}), ErrInvalidInput)
	assert.Equal(t, []int64{1}, repo.cancelled)
}
