package template

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
)

const (
	// Key префикс ключа шаблона в Redis, полный ключ содержит поколение
	Key = "tireslot:weekly_template:v1"

	// GenerationKey счетчик поколений шаблона, растет при каждом обновлении
	GenerationKey = "tireslot:weekly_template:gen"
)

// valueKey ключ шаблона для поколения gen
func valueKey(gen int64) string {
	return fmt.Sprintf("%s:%d", Key, gen)
}

// CachedRepository read-through кеш недельного шаблона.
// Ошибки Redis не ломают чтение: шаблон берется из источника.
// Читатель пишет в ключ поколения, которое видел до чтения БД,
// поэтому устаревший шаблон не попадает в ключ после Invalidate.
type CachedRepository struct {
	source Source
	store  Store
	ttl    time.Duration
	logger Logger
}

// NewCachedRepository создает кеширующий репозиторий
func NewCachedRepository(source Source, store Store, ttl time.Duration, logger Logger) *CachedRepository {
	return &CachedRepository{
		source: source,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// Get возвращает шаблон из кеша, при промахе читает источник и кладет результат в кеш
func (r *CachedRepository) Get(ctx context.Context) (*domain.WeeklyTemplate, error) {
	gen, err := r.generation(ctx)
	if err != nil {
		r.logger.Warn("TemplateCache: get generation failed: %v", err)
		return r.source.Get(ctx)
	}
	key := valueKey(gen)

	data, err := r.store.Get(ctx, key)
	if err == nil {
		var tmpl domain.WeeklyTemplate
		decodeErr := json.Unmarshal(data, &tmpl)
		if decodeErr == nil {
			return &tmpl, nil
		}
		r.logger.Warn("TemplateCache: corrupted entry, reloading: %v", decodeErr)
	} else if !errors.Is(err, ErrCacheMiss) {
		r.logger.Warn("TemplateCache: get failed: %v", err)
	}

	tmpl, err := r.source.Get(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(tmpl)
	if err != nil {
		r.logger.Warn("TemplateCache: marshal failed: %v", err)
		return tmpl, nil
	}
	if err := r.store.Set(ctx, key, encoded, r.ttl); err != nil {
		r.logger.Warn("TemplateCache: set failed: %v", err)
	}

	return tmpl, nil
}

// Invalidate переводит кеш на новое поколение после коммита обновления
func (r *CachedRepository) Invalidate(ctx context.Context) error {
	_, err := r.store.Incr(ctx, GenerationKey)
	return err
}

// generation текущее поколение шаблона, отсутствие ключа - нулевое поколение
func (r *CachedRepository) generation(ctx context.Context) (int64, error) {
	data, err := r.store.Get(ctx, GenerationKey)
	if errors.Is(err, ErrCacheMiss) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	gen, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad generation %q", ErrStore, data)
	}
	return gen, nil
}
