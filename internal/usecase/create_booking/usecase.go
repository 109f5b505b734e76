package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	"github.com/m04kA/SMC-TireSlotService/internal/slotengine"
	"github.com/m04kA/SMC-TireSlotService/pkg/txmanager"
)

// maxSerializationAttempts сколько раз пробуем сериализуемую транзакцию
const maxSerializationAttempts = 2

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo     BookingRepository
	templates       TemplateProvider
	catalog         ServiceCatalog
	txManager       TransactionManager
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
	txManager TransactionManager,
	policy slotengine.Policy,
	defaultDuration int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		templates:       templates,
		catalog:         catalog,
		txManager:       txManager,
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

// Execute выполняет use case создания бронирования
// Слот перепроверяется тем же генератором, что отдает список свободных слотов,
// внутри сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, duration=%d, service=%q",
		req.Date.Format(domain.DateFormat), req.StartTime, req.Duration, req.Service)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	date := domain.DateOf(req.Date)
	if domain.IsDateInPast(date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Длительность услуги
	duration := req.Duration
	if duration == 0 {
		duration = uc.resolveDuration(ctx, req.Service)
	}

	// 4. Выполняем операции с БД в сериализуемой транзакции.
	// Конфликт с параллельной записью на тот же день повторяем один раз
	var (
		result *domain.Booking
		err    error
	)
	for attempt := 1; attempt <= maxSerializationAttempts; attempt++ {
		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			var txErr error
			result, txErr = uc.bookInTx(txCtx, req, date, now, duration)
			return txErr
		})
		if !errors.Is(err, txmanager.ErrSerialization) {
			break
		}
		uc.logger.Warn("CreateBooking: serialization conflict on %s, attempt %d: %v",
			date.Format(domain.DateFormat), attempt, err)
	}

	if errors.Is(err, txmanager.ErrSerialization) {
		return nil, fmt.Errorf("%w: concurrent booking on %s", ErrSlotNotAvailable, date.Format(domain.DateFormat))
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:            result.ID,
		BookingDate:   result.BookingDate,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		Status:        string(result.Status),
		CustomerName:  result.CustomerName,
		CustomerPhone: result.CustomerPhone,
		ServiceName:   result.ServiceName,
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// bookInTx перепроверяет слот и сохраняет бронирование внутри открытой транзакции
func (uc *UseCase) bookInTx(txCtx context.Context, req *Request, date, now time.Time, duration int) (*domain.Booking, error) {
	// 4.1. Шаблон расписания
	tmpl, err := uc.templates.GetTemplate(txCtx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get template: %v", err)
		return nil, fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
	}

	// 4.2. Проверяем, что день рабочий
	availability := slotengine.ResolveDay(tmpl, date, uc.policy.DefaultTimeGap)
	if !availability.IsAvailable {
		uc.logger.Warn("CreateBooking: %s is a day off", date.Format(domain.DateFormat))
		return nil, ErrDayUnavailable
	}

	// 4.3. Активные бронирования на дату с блокировкой (FOR UPDATE)
	bookings, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{
		StartDate:       &date,
		EndDate:         &date,
		IncludeInactive: false,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
	}

	booked := make([]domain.BookedSlot, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			booked = append(booked, b.Slot())
		}
	}

	// 4.4. Проверяем, что выбранное время есть среди свободных слотов
	daySlots := uc.policy.ComputeDaySlots(tmpl, slotengine.DayRequest{
		Date:     date,
		Now:      now,
		Duration: duration,
		Booked:   booked,
	})

	slot, ok := slotengine.ContainsStart(daySlots.Slots, req.StartTime)
	if !ok {
		uc.logger.Warn("CreateBooking: slot %s (%d min) not available on %s",
			req.StartTime, duration, date.Format(domain.DateFormat))
		return nil, ErrSlotNotAvailable
	}

	// 4.5. Сохраняем бронирование
	created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
		BookingDate:   date,
		StartTime:     slot.Start,
		EndTime:       slot.End,
		Status:        domain.StatusConfirmed,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		ServiceName:   req.Service,
		Notes:         req.Notes,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
	}

	return created, nil
}

// resolveDuration определяет длительность по названию услуги; при недоступности каталога - по умолчанию
func (uc *UseCase) resolveDuration(ctx context.Context, service string) int {
	services, err := uc.catalog.GetServicesWithGracefulDegradation(ctx)
	if err != nil {
		uc.logger.Warn("CreateBooking: catalog unavailable, using default duration %d", uc.defaultDuration)
		return uc.defaultDuration
	}

	return slotengine.ResolveServiceDuration(service, slotengine.ServiceDurations(services), uc.defaultDuration)
}
