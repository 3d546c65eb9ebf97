// Package repository stores registration events in PostgreSQL.
// It uses pgx directly (no ORM). The table is an append-only audit trail;
// the in-memory registry never reads from it.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrInvalidEvent is returned for events missing an id, activity or email.
var ErrInvalidEvent = errors.New("invalid registration event")

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const schemaSQL = `CREATE TABLE IF NOT EXISTS registration_events (
	id         UUID PRIMARY KEY,
	activity   TEXT        NOT NULL,
	email      TEXT        NOT NULL,
	action     TEXT        NOT NULL CHECK (action IN ('signup', 'unregister')),
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS registration_events_activity_idx
	ON registration_events (activity, created_at)`

const insertSQL = `INSERT INTO registration_events (id, activity, email, action, created_at)
	VALUES ($1, $2, $3, $4, $5)`

// RegistrationRepository writes registration events.
type RegistrationRepository struct {
	db DB
}

// NewRegistrationRepository constructs a RegistrationRepository.
func NewRegistrationRepository(db DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// EnsureSchema creates the events table and index if they do not exist.
func (r *RegistrationRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create registration_events: %w", err)
	}
	return nil
}

// Record inserts one event.
func (r *RegistrationRepository) Record(ctx context.Context, ev model.RegistrationEvent) error {
	if ev.ID == "" || ev.Activity == "" || ev.Email == "" {
		return ErrInvalidEvent
	}
	_, err := r.db.Exec(ctx, insertSQL, ev.ID, ev.Activity, ev.Email, string(ev.Action), ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert registration event: %w", err)
	}
	return nil
}

// Close is a no-op; the pool is owned by the caller.
func (r *RegistrationRepository) Close() error {
	return nil
}
