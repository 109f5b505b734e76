package template

import (
	"context"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
)

// TemplateReader источник шаблона для чтения (кеш или БД)
type TemplateReader interface {
	Get(ctx context.Context) (*domain.WeeklyTemplate, error)
}

// TemplateWriter репозиторий для сохранения шаблона
type TemplateWriter interface {
	Save(ctx context.Context, tmpl domain.WeeklyTemplate) error
}

// CacheInvalidator сбрасывает кеш шаблона после обновления
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
