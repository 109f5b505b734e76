package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TireSlotService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TireSlotService/internal/service/bookings/models"
	"github.com/m04kA/SMC-TireSlotService/pkg/validation"
)

// Service сервис для работы с бронированиями (админ-панель)
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// ListByDate получает бронирования на дату, отсортированные по времени начала
func (s *Service) ListByDate(ctx context.Context, req *models.ListByDateRequest) (*models.BookingListResponse, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := domain.DateOf(req.Date)
	s.logger.Info("ListByDate: fetching bookings for date=%s, includeInactive=%t",
		date.Format(domain.DateFormat), req.IncludeInactive)

	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		StartDate:       &date,
		EndDate:         &date,
		IncludeInactive: req.IncludeInactive,
	})
	if err != nil {
		s.logger.Error("ListByDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(date, bookings), nil
}

// Cancel отменяет бронирование, после этого его время снова свободно
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	if bookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if err := validation.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			return err
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrCannotCancel
		}

		return s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason)
	})

	switch {
	case err == nil:
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		s.logger.Warn("Cancel: booking id=%d not found", bookingID)
		return ErrBookingNotFound
	case errors.Is(err, ErrCannotCancel):
		return ErrCannotCancel
	default:
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}
