// Package journal records accepted registration changes to an external sink.
package journal

import (
	"context"
	"fmt"

	"github.com/Shivanand-hulikatti/activity-signup/internal/config"
	"github.com/Shivanand-hulikatti/activity-signup/internal/database"
	"github.com/Shivanand-hulikatti/activity-signup/internal/logger"
	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
	"github.com/Shivanand-hulikatti/activity-signup/internal/repository"
)

// Journal is an append-only sink for registration events.
type Journal interface {
	Record(ctx context.Context, ev model.RegistrationEvent) error
	Close() error
}

// Nop drops every event.
type Nop struct{}

// Record discards ev.
func (Nop) Record(context.Context, model.RegistrationEvent) error { return nil }

// Close does nothing.
func (Nop) Close() error { return nil }

type closerFunc func() error

// pooled attaches a connection teardown to a journal built on it.
type pooled struct {
	Journal
	close closerFunc
}

func (p pooled) Close() error {
	if err := p.Journal.Close(); err != nil {
		return err
	}
	return p.close()
}

// Open builds the journal selected by cfg.Journal.Driver and the connection
// it needs. The returned journal owns that connection.
func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (Journal, error) {
	switch cfg.Journal.Driver {
	case config.JournalNone, "":
		return Nop{}, nil

	case config.JournalPostgres:
		pool, err := database.NewPool(ctx, cfg.Database.Postgres, log)
		if err != nil {
			return nil, err
		}
		repo := repository.NewRegistrationRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return pooled{Journal: repo, close: func() error { pool.Close(); return nil }}, nil

	case config.JournalRedis:
		rdb, err := database.NewRedis(ctx, cfg.Database.Redis)
		if err != nil {
			return nil, err
		}
		return pooled{Journal: NewStream(rdb, cfg.Journal.Stream, cfg.Journal.MaxLen), close: rdb.Close}, nil
	}
	return nil, fmt.Errorf("unknown journal driver %q", cfg.Journal.Driver)
}
