// Package model defines the core domain types for the activity signup service.
package model

import "time"

// Activity is an extracurricular offering students can sign up for.
// Participants are kept in signup order.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Remaining returns the number of open spots. It can go negative because
// capacity is informational unless enforcement is switched on.
func (a *Activity) Remaining() int {
	return a.MaxParticipants - len(a.Participants)
}

// IsFull returns true when the participant list has reached capacity.
func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// HasParticipant reports whether email is in the participant list.
func (a *Activity) HasParticipant(email string) bool {
	return a.indexOf(email) >= 0
}

func (a *Activity) indexOf(email string) int {
	for i, p := range a.Participants {
		if p == email {
			return i
		}
	}
	return -1
}

// RemoveParticipant deletes email from the list, keeping the order of the
// remaining participants. It returns false when email was not present.
func (a *Activity) RemoveParticipant(email string) bool {
	i := a.indexOf(email)
	if i < 0 {
		return false
	}
	a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
	return true
}

// Clone returns a deep copy safe to hand out to callers.
func (a *Activity) Clone() Activity {
	out := *a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// Action identifies the kind of registration change.
type Action string

const (
	ActionSignup     Action = "signup"
	ActionUnregister Action = "unregister"
)

// RegistrationEvent records one accepted signup or unregister.
type RegistrationEvent struct {
	ID        string    `json:"id"`
	Activity  string    `json:"activity"`
	Email     string    `json:"email"`
	Action    Action    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageResponse is the confirmation envelope for successful mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON error envelope. The field is named detail so
// existing front-end clients keep working.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
