package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/store"
	"github.com/google/uuid"
)

// Action labels written by the service's own mutations.
const (
	ActionCreatedProject = "created project"
	ActionEditedProject  = "edited project"
	ActionDeletedProject = "deleted project"
	ActionLoggedIn       = "user logged in"
	ActionUpdatedProfile = "updated profile"
)

// ActivityLogger appends audit entries. A failed write is logged and
// swallowed so the calling mutation still succeeds.
type ActivityLogger struct {
	store store.Activity
	now   func() time.Time
}

func NewActivityLogger(activity store.Activity) *ActivityLogger {
	return &ActivityLogger{store: activity, now: time.Now}
}

func (l *ActivityLogger) Record(ctx context.Context, userID, tenantID uuid.UUID, action string, details *string) {
	entry := &models.ActivityLog{
		UserID:    userID,
		TenantID:  tenantID,
		Action:    action,
		Details:   details,
		CreatedAt: l.now().UTC(),
	}

	if err := l.store.Insert(ctx, entry); err != nil {
		metrics.RecordActivityWrite(false)
		slog.ErrorContext(ctx, "failed to log activity",
			"error", err,
			"user_id", userID.String(),
			"tenant_id", tenantID.String(),
			"action", action,
		)
		return
	}
	metrics.RecordActivityWrite(true)
}

func projectDetails(name string) *string {
	d := "Project: " + name
	return &d
}
