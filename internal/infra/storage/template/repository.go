package template

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	"github.com/m04kA/SMC-TireSlotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TireSlotService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-TireSlotService/pkg/types"
)

const (
	tableDays     = "weekly_template_days"
	tableSettings = "weekly_template_settings"

	// В таблице настроек всегда одна строка
	settingsRowID = 1
)

// Repository репозиторий недельного шаблона расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория шаблона
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает недельный шаблон целиком.
// Дни, которых нет в таблице, заполняются значениями по умолчанию.
// Если не сохранено ни одного дня и нет настроек, возвращает ErrTemplateNotFound.
func (r *Repository) Get(ctx context.Context) (*domain.WeeklyTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"is_available",
		"start_time",
		"end_time",
	).
		From(tableDays).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build days query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - execute days query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tmpl := domain.DefaultWeeklyTemplate()
	found := false

	for rows.Next() {
		var (
			weekday     int
			isAvailable bool
			start, end  types.Minute
		)
		if err := rows.Scan(&weekday, &isAvailable, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: Get - scan day: %v", ErrScanRow, err)
		}

		tmpl.SetDay(domain.Weekday(weekday), domain.DaySpec{
			IsAvailable: isAvailable,
			StartTime:   start.String(),
			EndTime:     end.String(),
		})
		found = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Get - rows error: %v", ErrScanRow, err)
	}

	timeGap, err := r.getTimeGap(ctx, executor)
	switch {
	case errors.Is(err, ErrTemplateNotFound):
		if !found {
			return nil, ErrTemplateNotFound
		}
		// Шаг не сохранен, генератор возьмет значение по умолчанию
		tmpl.TimeGap = 0
	case err != nil:
		return nil, err
	default:
		tmpl.TimeGap = timeGap
	}

	return &tmpl, nil
}

func (r *Repository) getTimeGap(ctx context.Context, executor DBExecutor) (int, error) {
	query, args, err := psqlbuilder.Select("time_gap").
		From(tableSettings).
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: getTimeGap - build query: %v", ErrBuildQuery, err)
	}

	var timeGap int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&timeGap)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrTemplateNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: getTimeGap - scan: %v", ErrScanRow, err)
	}

	return timeGap, nil
}

// Save сохраняет шаблон целиком (upsert всех семи дней и шага).
// Вызывать внутри транзакции, чтобы шаблон не читался наполовину обновленным.
func (r *Repository) Save(ctx context.Context, tmpl domain.WeeklyTemplate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert(tableDays).
		Columns("weekday", "is_available", "start_time", "end_time", "updated_at")

	for _, day := range domain.AllWeekdays {
		spec := tmpl.Day(day)

		start, err := types.ParseMinute(spec.StartTime)
		if err != nil {
			return fmt.Errorf("%w: Save - %s start: %v", ErrInvalidTime, day, err)
		}
		end, err := types.ParseMinute(spec.EndTime)
		if err != nil {
			return fmt.Errorf("%w: Save - %s end: %v", ErrInvalidTime, day, err)
		}

		insert = insert.Values(int(day), spec.IsAvailable, start, end, squirrel.Expr("NOW()"))
	}

	query, args, err := insert.
		Suffix("ON CONFLICT (weekday) DO UPDATE SET " +
			"is_available = EXCLUDED.is_available, " +
			"start_time = EXCLUDED.start_time, " +
			"end_time = EXCLUDED.end_time, " +
			"updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build days upsert: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute days upsert: %v", ErrExecQuery, err)
	}

	query, args, err = psqlbuilder.Insert(tableSettings).
		Columns("id", "time_gap", "updated_at").
		Values(settingsRowID, tmpl.TimeGap, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (id) DO UPDATE SET time_gap = EXCLUDED.time_gap, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build settings upsert: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute settings upsert: %v", ErrExecQuery, err)
	}

	return nil
}
