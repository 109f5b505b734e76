package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	"github.com/m04kA/SMC-TireSlotService/internal/slotengine"
)

const metricKind = "customer"

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	bookingRepo     BookingRepository
	templates       TemplateProvider
	catalog         ServiceCatalog
	metrics         SlotsObserver
	policy          slotengine.Policy
	defaultDuration int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	templates TemplateProvider,
	catalog ServiceCatalog,
	metrics SlotsObserver,
	policy slotengine.Policy,
	defaultDuration int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		templates:       templates,
		catalog:         catalog,
		metrics:         metrics,
		policy:          policy,
		defaultDuration: defaultDuration,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, duration=%d, service=%q",
		req.Date.Format(domain.DateFormat), req.Duration, req.Service)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата в прошлом
	now := uc.timeProvider.Now()
	date := domain.DateOf(req.Date)
	if domain.IsDateInPast(date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Длительность услуги
	duration := req.Duration
	if duration == 0 {
		duration = uc.resolveDuration(ctx, req.Service)
	}

	// 4. Шаблон расписания (один снимок на весь расчет)
	tmpl, err := uc.templates.GetTemplate(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get template: %v", err)
		return nil, fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
	}

	availability := slotengine.ResolveDay(tmpl, date, uc.policy.DefaultTimeGap)
	response := &Response{
		Date:        date,
		IsAvailable: availability.IsAvailable,
		TimeGap:     availability.TimeGap,
		Duration:    duration,
		Slots:       []slotengine.Slot{},
	}

	if !availability.IsAvailable {
		uc.logger.Info("GetAvailableSlots: %s is a day off", date.Format(domain.DateFormat))
		return response, nil
	}

	// 5. Активные бронирования на дату
	booked, err := uc.bookedSlots(ctx, date)
	if err != nil {
		return nil, err
	}

	// 6. Генерация слотов
	daySlots := uc.policy.ComputeDaySlots(tmpl, slotengine.DayRequest{
		Date:     date,
		Now:      now,
		Duration: duration,
		Booked:   booked,
	})
	response.Slots = daySlots.Slots

	uc.metrics.ObserveSlots(metricKind, len(response.Slots))
	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s, duration=%d",
		len(response.Slots), date.Format(domain.DateFormat), duration)

	return response, nil
}

// resolveDuration определяет длительность по названию услуги; при недоступности каталога - по умолчанию
func (uc *UseCase) resolveDuration(ctx context.Context, service string) int {
	services, err := uc.catalog.GetServicesWithGracefulDegradation(ctx)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: catalog unavailable, using default duration %d", uc.defaultDuration)
		return uc.defaultDuration
	}

	return slotengine.ResolveServiceDuration(service, slotengine.ServiceDurations(services), uc.defaultDuration)
}

func (uc *UseCase) bookedSlots(ctx context.Context, date time.Time) ([]domain.BookedSlot, error) {
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		StartDate:       &date,
		EndDate:         &date,
		IncludeInactive: false,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	booked := make([]domain.BookedSlot, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			booked = append(booked, b.Slot())
		}
	}
	return booked, nil
}
