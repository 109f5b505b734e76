package get_field_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	"github.com/m04kA/SMC-TireSlotService/internal/slotengine"
	"github.com/m04kA/SMC-TireSlotService/pkg/types"
)

const (
	metricKind  = "field"
	horizonDays = 3
)

// UseCase use case для получения свободного времени выездного сервиса на три дня
type UseCase struct {
	workOrderRepo WorkOrderRepository
	catalog       ServiceCatalog
	metrics       SlotsObserver
	policy        slotengine.FieldPolicy
	labels        Labels
	defaultLimit  int
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	workOrderRepo WorkOrderRepository,
	catalog ServiceCatalog,
	metrics SlotsObserver,
	policy slotengine.FieldPolicy,
	labels Labels,
	defaultLimit int,
	logger Logger,
) *UseCase {
	return &UseCase{
		workOrderRepo: workOrderRepo,
		catalog:       catalog,
		metrics:       metrics,
		policy:        policy,
		labels:        labels,
		defaultLimit:  defaultLimit,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFieldAvailability: limit=%d", req.Limit)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetFieldAvailability: validation failed: %v", err)
		return nil, err
	}

	limit := req.Limit
	if limit == 0 {
		limit = uc.defaultLimit
	}

	// 2. Даты горизонта: сегодня, завтра, послезавтра
	now := uc.timeProvider.Now().In(domain.Location())
	today := domain.DateOf(now)
	keys := [horizonDays]string{DayToday, DayTomorrow, DayNext}
	labels := [horizonDays]string{uc.labels.Today, uc.labels.Tomorrow, uc.labels.Next}

	dates := make([]time.Time, horizonDays)
	for i := range dates {
		dates[i] = today.AddDate(0, 0, i)
	}

	// 3. Заказы на эти даты
	orders, err := uc.workOrderRepo.GetByDates(ctx, dates)
	if err != nil {
		uc.logger.Error("GetFieldAvailability: failed to get work orders: %v", err)
		return nil, fmt.Errorf("%w: failed to get work orders: %v", ErrInternal, err)
	}

	byDate := make(map[string][]domain.WorkOrder, horizonDays)
	for _, o := range orders {
		key := o.VisitDate.Format(domain.DateFormat)
		byDate[key] = append(byDate[key], o)
	}

	// 4. Справочник длительностей нужен только при наличии заказов
	var durations map[string]int
	if len(orders) > 0 {
		services, err := uc.catalog.GetServicesWithGracefulDegradation(ctx)
		if err != nil {
			uc.logger.Warn("GetFieldAvailability: catalog unavailable, using default duration %d", uc.policy.DefaultDuration)
		}
		durations = slotengine.ServiceDurations(services)
	}

	// 5. Свободные интервалы по дням
	response := &Response{Days: make([]DayResult, 0, horizonDays)}
	dayRanges := make([]slotengine.DayRanges, 0, horizonDays)

	for i, date := range dates {
		intervals := uc.policy.ComputeFieldRanges(slotengine.FieldDay{
			IsToday: i == 0,
			Now:     types.MinuteOf(now),
			Orders:  byDate[date.Format(domain.DateFormat)],
		}, durations)

		response.Days = append(response.Days, DayResult{
			Key:    keys[i],
			Label:  labels[i],
			Date:   date,
			Ranges: slotengine.FormatRanges(intervals),
		})
		dayRanges = append(dayRanges, slotengine.DayRanges{Label: labels[i], Intervals: intervals})
	}

	// 6. Нарезка на слоты
	response.Slots = slotengine.MaterializeSubSlots(dayRanges, uc.policy.SlotStep, limit)

	uc.metrics.ObserveSlots(metricKind, len(response.Slots))
	uc.logger.Info("GetFieldAvailability: %d work orders, %d slots", len(orders), len(response.Slots))

	return response, nil
}
