package template

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
)

// Source источник шаблона (репозиторий БД)
type Source interface {
	Get(ctx context.Context) (*domain.WeeklyTemplate, error)
}

// Store key-value хранилище кеша
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
