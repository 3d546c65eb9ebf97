// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/Shivanand-hulikatti/activity-signup/internal/logger"
	"github.com/Shivanand-hulikatti/activity-signup/internal/metrics"
	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
	"github.com/Shivanand-hulikatti/activity-signup/internal/registry"
	"github.com/Shivanand-hulikatti/activity-signup/internal/service"
	"github.com/go-chi/chi/v5"
)

// ActivityHandler holds the HTTP handlers for the activity API.
type ActivityHandler struct {
	svc *service.ActivityService
	log logger.Logger
}

// NewActivityHandler constructs an ActivityHandler.
func NewActivityHandler(svc *service.ActivityService, log logger.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: log}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Detail: msg})
}

// activityName returns the decoded {activity_name} path segment.
func activityName(r *http.Request) string {
	name := chi.URLParam(r, "activity_name")
	if r.URL.RawPath != "" {
		if decoded, err := url.PathUnescape(name); err == nil {
			return decoded
		}
	}
	return name
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// ListActivities handles GET /activities
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListActivities(r.Context()))
}

// Signup handles POST /activities/{activity_name}/signup?email=
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	email, ok := emailParam(r)
	if !ok {
		h.writeMissingEmail(w, model.ActionSignup)
		return
	}
	msg, err := h.svc.Signup(r.Context(), activityName(r), email)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: msg})
}

// Unregister handles DELETE /activities/{activity_name}/unregister?email=
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	email, ok := emailParam(r)
	if !ok {
		h.writeMissingEmail(w, model.ActionUnregister)
		return
	}
	msg, err := h.svc.Unregister(r.Context(), activityName(r), email)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: msg})
}

// emailParam returns the email query value exactly as sent. Only a missing
// parameter is an error; an empty or blank value is a valid email string.
func emailParam(r *http.Request) (string, bool) {
	q := r.URL.Query()
	if !q.Has("email") {
		return "", false
	}
	return q.Get("email"), true
}

func (h *ActivityHandler) writeMissingEmail(w http.ResponseWriter, action model.Action) {
	metrics.RequestErrors.WithLabelValues(string(action), "email_missing").Inc()
	writeError(w, http.StatusUnprocessableEntity, "Email query parameter is required")
}

func (h *ActivityHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		writeError(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, registry.ErrAlreadySignedUp):
		writeError(w, http.StatusBadRequest, "Student is already signed up for this activity")
	case errors.Is(err, registry.ErrNotSignedUp):
		writeError(w, http.StatusBadRequest, "Student is not signed up for this activity")
	case errors.Is(err, registry.ErrActivityFull):
		writeError(w, http.StatusBadRequest, "Activity is full")
	default:
		h.log.WithError(err).Error("unexpected service error", nil)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
