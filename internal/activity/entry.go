// Package activity holds the pure parts of the activity pipeline: the wire
// shape of a log entry, the list filter, and summary prompt formatting.
package activity

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/google/uuid"
)

// Actor is the user summary attached to each entry.
type Actor struct {
	ID        uuid.UUID `json:"id"`
	FullName  *string   `json:"full_name"`
	AvatarURL *string   `json:"avatar_url"`
	Email     string    `json:"email"`
}

// Entry is an activity log row joined with its actor, as the listing
// returns it and as the summary prompt reads it.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Action    string    `json:"action"`
	Details   *string   `json:"details"`
	CreatedAt time.Time `json:"created_at"`
	User      *Actor    `json:"user"`
}

// DisplayName falls back from full name to email to "Unknown".
func (e Entry) DisplayName() string {
	if e.User == nil {
		return "Unknown"
	}
	if e.User.FullName != nil && *e.User.FullName != "" {
		return *e.User.FullName
	}
	if e.User.Email != "" {
		return e.User.Email
	}
	return "Unknown"
}

func FromModel(log models.ActivityLog) Entry {
	e := Entry{
		ID:        log.ID,
		UserID:    log.UserID,
		TenantID:  log.TenantID,
		Action:    log.Action,
		Details:   log.Details,
		CreatedAt: log.CreatedAt,
	}
	if log.User != nil {
		e.User = &Actor{
			ID:        log.User.ID,
			FullName:  log.User.FullName,
			AvatarURL: log.User.AvatarURL,
			Email:     log.User.Email,
		}
	}
	return e
}

func FromModels(logs []models.ActivityLog) []Entry {
	out := make([]Entry, 0, len(logs))
	for _, l := range logs {
		out = append(out, FromModel(l))
	}
	return out
}
