package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type execCall struct {
	sql  string
	args []any
}

type fakeDB struct {
	calls []execCall
	err   error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, execCall{sql: sql, args: args})
	if f.err != nil {
		return pgconn.CommandTag{}, f.err
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestEnsureSchema(t *testing.T) {
	db := &fakeDB{}
	repo := NewRegistrationRepository(db)

	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.Len(t, db.calls, 1)
	assert.True(t, strings.Contains(db.calls[0].sql, "CREATE TABLE IF NOT EXISTS registration_events"))
}

func TestRecord(t *testing.T) {
	db := &fakeDB{}
	repo := NewRegistrationRepository(db)
	at := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	err := repo.Record(context.Background(), model.RegistrationEvent{
		ID:        "0b8a4a6e-8d40-4c1e-9d0f-1d2b4a7c9e11",
		Activity:  "Chess Club",
		Email:     "a@b.edu",
		Action:    model.ActionSignup,
		CreatedAt: at,
	})
	require.NoError(t, err)
	require.Len(t, db.calls, 1)
	assert.Equal(t, []any{"0b8a4a6e-8d40-4c1e-9d0f-1d2b4a7c9e11", "Chess Club", "a@b.edu", "signup", at}, db.calls[0].args)
}

func TestRecord_Invalid(t *testing.T) {
	db := &fakeDB{}
	repo := NewRegistrationRepository(db)

	err := repo.Record(context.Background(), model.RegistrationEvent{Activity: "Chess Club"})
	assert.ErrorIs(t, err, ErrInvalidEvent)
	assert.Empty(t, db.calls)
}

func TestRecord_DBError(t *testing.T) {
	boom := errors.New("connection reset")
	repo := NewRegistrationRepository(&fakeDB{err: boom})

	err := repo.Record(context.Background(), model.RegistrationEvent{
		ID: "id", Activity: "Chess Club", Email: "a@b.edu", Action: model.ActionUnregister,
	})
	assert.ErrorIs(t, err, boom)
}
