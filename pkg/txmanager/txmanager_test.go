package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TireSlotService/pkg/dbmetrics"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (f *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (f *fakeTx) Commit() error {
	f.committed = true
	return f.commitErr
}

func (f *fakeTx) Rollback() error {
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx       *fakeTx
	opts     *sql.TxOptions
	calls    int
	beginErr error
}

func (f *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	f.calls++
	f.opts = opts
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return f.tx, nil
}

func TestDoSerializable_Commits(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	mgr := NewTransactionManager(beginner)

	var sawTx bool
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		sawTx = dbmetrics.IsInTransaction(ctx)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, sawTx)
	assert.True(t, beginner.tx.committed)
	assert.False(t, beginner.tx.rolledBack)
	assert.Equal(t, sql.LevelSerializable, beginner.opts.Isolation)
}

func TestDo_RollsBackOnError(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	mgr := NewTransactionManager(beginner)
	boom := errors.New("boom")

	err := mgr.Do(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.True(t, beginner.tx.rolledBack)
	assert.False(t, beginner.tx.committed)
}

func TestDo_NestedReusesTransaction(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	mgr := NewTransactionManager(beginner)

	err := mgr.Do(context.Background(), func(ctx context.Context) error {
		return mgr.DoSerializable(ctx, func(context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Equal(t, 1, beginner.calls)
}

func TestDo_BeginAndCommitErrors(t *testing.T) {
	mgr := NewTransactionManager(&fakeBeginner{beginErr: errors.New("no conn")})
	err := mgr.Do(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrBeginTx)

	mgr = NewTransactionManager(&fakeBeginner{tx: &fakeTx{commitErr: errors.New("connection reset")}})
	err = mgr.Do(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrCommitTx)
}

func TestDoSerializable_SerializationFailure(t *testing.T) {
	conflict := &pq.Error{Code: "40001", Message: "could not serialize access due to read/write dependencies"}

	tests := []struct {
		name      string
		fnErr     error
		commitErr error
	}{
		{
			name:  "query inside transaction",
			fnErr: fmt.Errorf("repo: execute query: %w", conflict),
		},
		{
			name:      "commit",
			commitErr: conflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			beginner := &fakeBeginner{tx: &fakeTx{commitErr: tt.commitErr}}
			mgr := NewTransactionManager(beginner)

			err := mgr.DoSerializable(context.Background(), func(context.Context) error {
				return tt.fnErr
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSerialization)
			assert.NotErrorIs(t, err, ErrCommitTx)
		})
	}
}

func TestDo_OtherPostgresErrorsAreNotSerialization(t *testing.T) {
	mgr := NewTransactionManager(&fakeBeginner{tx: &fakeTx{}})

	uniqueViolation := &pq.Error{Code: "23505"}
	err := mgr.Do(context.Background(), func(context.Context) error {
		return fmt.Errorf("repo: insert: %w", uniqueViolation)
	})

	assert.ErrorIs(t, err, uniqueViolation)
	assert.NotErrorIs(t, err, ErrSerialization)
}
