package workorder

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	"github.com/m04kA/SMC-TireSlotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TireSlotService/pkg/psqlbuilder"
)

// Repository репозиторий выездных заказов (заказы приходят из CRM)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория выездных заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDates получает выездные заказы на указанные даты, отсортированные по дате и времени
func (r *Repository) GetByDates(ctx context.Context, dates []time.Time) ([]domain.WorkOrder, error) {
	orders := make([]domain.WorkOrder, 0)
	if len(dates) == 0 {
		return orders, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	dateStrings := make([]string, len(dates))
	for i, d := range dates {
		dateStrings[i] = domain.DateOf(d).Format(domain.DateFormat)
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"visit_date",
		"to_char(visit_time, 'HH24:MI')",
		"service",
	).
		From("work_orders").
		Where(squirrel.Eq{"visit_date": dateStrings}).
		OrderBy("visit_date ASC", "visit_time ASC NULLS LAST").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			order     domain.WorkOrder
			visitTime sql.NullString
		)
		if err := rows.Scan(&order.ID, &order.VisitDate, &visitTime, &order.Service); err != nil {
			return nil, fmt.Errorf("%w: GetByDates - scan row: %v", ErrScanRow, err)
		}
		if visitTime.Valid {
			order.VisitTime = &visitTime.String
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDates - rows error: %v", ErrScanRow, err)
	}

	return orders, nil
}
