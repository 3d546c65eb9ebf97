package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
	"github.com/redis/go-redis/v9"
)

// Stream appends events to a Redis stream with XADD. When maxLen is positive
// the stream is trimmed approximately to that length.
type Stream struct {
	rdb    redis.Cmdable
	key    string
	maxLen int64
}

// NewStream returns a Stream writing to key.
func NewStream(rdb redis.Cmdable, key string, maxLen int64) *Stream {
	return &Stream{rdb: rdb, key: key, maxLen: maxLen}
}

// Record appends ev to the stream as one entry with string fields.
func (s *Stream) Record(ctx context.Context, ev model.RegistrationEvent) error {
	args := &redis.XAddArgs{
		Stream: s.key,
		Values: map[string]interface{}{
			"id":         ev.ID,
			"activity":   ev.Activity,
			"email":      ev.Email,
			"action":     string(ev.Action),
			"created_at": ev.CreatedAt.UTC().Format(time.RFC3339Nano),
		},
	}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}
	if err := s.rdb.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("xadd %s: %w", s.key, err)
	}
	return nil
}

// Close is a no-op; the client is closed by whoever opened it.
func (s *Stream) Close() error {
	return nil
}
