package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// TemplateProvider источник недельного шаблона
type TemplateProvider interface {
	GetTemplate(ctx context.Context) (domain.WeeklyTemplate, error)
}

// ServiceCatalog каталог услуг для определения длительности по названию
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
