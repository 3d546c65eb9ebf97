// Package service implements the signup business operations on top of the
// activity registry and records every accepted change.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Shivanand-hulikatti/activity-signup/internal/journal"
	"github.com/Shivanand-hulikatti/activity-signup/internal/logger"
	"github.com/Shivanand-hulikatti/activity-signup/internal/metrics"
	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
	"github.com/Shivanand-hulikatti/activity-signup/internal/registry"
	"github.com/google/uuid"
)

// ActivityService orchestrates signup and unregister operations.
// Emails are opaque: any string, including an empty one, is accepted as-is.
type ActivityService struct {
	activities *registry.ActivityRegistry
	journal    journal.Journal
	log        logger.Logger
	now        func() time.Time
	newID      func() string
}

// NewActivityService constructs an ActivityService with its dependencies.
// A nil journal disables event recording.
func NewActivityService(activities *registry.ActivityRegistry, j journal.Journal, log logger.Logger) *ActivityService {
	if j == nil {
		j = journal.Nop{}
	}
	return &ActivityService{
		activities: activities,
		journal:    j,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      func() string { return uuid.New().String() },
	}
}

// ListActivities returns every activity keyed by name.
func (s *ActivityService) ListActivities(_ context.Context) map[string]model.Activity {
	return s.activities.List()
}

// Signup registers email for the named activity and returns a confirmation message.
func (s *ActivityService) Signup(ctx context.Context, activity, email string) (string, error) {
	if err := s.activities.Signup(activity, email); err != nil {
		s.reject(model.ActionSignup, activity, err)
		return "", fmt.Errorf("signup %q: %w", activity, err)
	}

	metrics.Signups.WithLabelValues(activity).Inc()
	s.record(ctx, model.ActionSignup, activity, email)
	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

// Unregister removes email from the named activity and returns a confirmation message.
func (s *ActivityService) Unregister(ctx context.Context, activity, email string) (string, error) {
	if err := s.activities.Unregister(activity, email); err != nil {
		s.reject(model.ActionUnregister, activity, err)
		return "", fmt.Errorf("unregister %q: %w", activity, err)
	}

	metrics.Unregistrations.WithLabelValues(activity).Inc()
	s.record(ctx, model.ActionUnregister, activity, email)
	return fmt.Sprintf("Unregistered %s from %s", email, activity), nil
}

func (s *ActivityService) reject(action model.Action, activity string, err error) {
	metrics.RequestErrors.WithLabelValues(string(action), reason(err)).Inc()
	s.log.Debug("registration rejected", map[string]interface{}{
		"action":   string(action),
		"activity": activity,
		"reason":   reason(err),
	})
}

// record journals an accepted change. A journal failure does not undo the
// registry change; it is logged and counted. Emails go to the journal only,
// never to the log.
func (s *ActivityService) record(ctx context.Context, action model.Action, activity, email string) {
	ev := model.RegistrationEvent{
		ID:        s.newID(),
		Activity:  activity,
		Email:     email,
		Action:    action,
		CreatedAt: s.now(),
	}
	fields := map[string]interface{}{
		"event_id": ev.ID,
		"action":   string(action),
		"activity": activity,
	}
	if a, err := s.activities.Get(activity); err == nil {
		fields["seats_remaining"] = a.Remaining()
	}

	if err := s.journal.Record(ctx, ev); err != nil {
		metrics.JournalFailures.Inc()
		s.log.WithError(err).Warn("journal write failed", fields)
		return
	}
	s.log.Info("registration updated", fields)
}

func reason(err error) string {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return "not_found"
	case errors.Is(err, registry.ErrAlreadySignedUp):
		return "already_signed_up"
	case errors.Is(err, registry.ErrNotSignedUp):
		return "not_signed_up"
	case errors.Is(err, registry.ErrActivityFull):
		return "full"
	default:
		return "other"
	}
}
