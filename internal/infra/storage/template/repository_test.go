package template

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
)

type execCall struct {
	query string
	args  []interface{}
}

type recordingExecutor struct {
	calls []execCall
}

func (e *recordingExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	e.calls = append(e.calls, execCall{query: query, args: args})
	return driverResult(1), nil
}

func (e *recordingExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, sql.ErrConnDone
}

func (e *recordingExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

type driverResult int64

func (r driverResult) LastInsertId() (int64, error) { return 0, nil }
func (r driverResult) RowsAffected() (int64, error) { return int64(r), nil }

func TestRepository_Save(t *testing.T) {
	exec := &recordingExecutor{}
	repo := NewRepository(exec)

	tmpl := domain.DefaultWeeklyTemplate()
	tmpl.TimeGap = 20

	require.NoError(t, repo.Save(context.Background(), tmpl))
	require.Len(t, exec.calls, 2)

	days := exec.calls[0]
	assert.Contains(t, days.query, "INSERT INTO weekly_template_days")
	assert.Contains(t, days.query, "ON CONFLICT (weekday) DO UPDATE")
	assert.Len(t, days.args, domain.DaysInWeek*4)
	assert.Equal(t, 0, days.args[0])
	assert.Equal(t, true, days.args[1])

	settings := exec.calls[1]
	assert.Contains(t, settings.query, "INSERT INTO weekly_template_settings")
	assert.Equal(t, []interface{}{settingsRowID, 20}, settings.args)
}

func TestRepository_Save_InvalidTime(t *testing.T) {
	exec := &recordingExecutor{}
	repo := NewRepository(exec)

	tmpl := domain.DefaultWeeklyTemplate()
	tmpl.SetDay(domain.Friday, domain.DaySpec{IsAvailable: true, StartTime: "9:00", EndTime: "17:00"})

	err := repo.Save(context.Background(), tmpl)
	assert.ErrorIs(t, err, ErrInvalidTime)
	assert.Empty(t, exec.calls)
}
