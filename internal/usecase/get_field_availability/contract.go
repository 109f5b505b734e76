package get_field_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
)

// WorkOrderRepository интерфейс репозитория выездных заказов
type WorkOrderRepository interface {
	GetByDates(ctx context.Context, dates []time.Time) ([]domain.WorkOrder, error)
}

// ServiceCatalog каталог услуг CRM
type ServiceCatalog interface {
	GetServicesWithGracefulDegradation(ctx context.Context) ([]domain.Service, error)
}

// SlotsObserver метрика количества сгенерированных слотов
type SlotsObserver interface {
	ObserveSlots(kind string, count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
