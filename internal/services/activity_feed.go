package services

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/activity"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/store"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/tenant"
)

// RecentActivityLimit caps one activity listing.
const RecentActivityLimit = 100

type ActivityFeed struct {
	activity store.Activity
	users    store.Users
}

func NewActivityFeed(activity store.Activity, users store.Users) *ActivityFeed {
	return &ActivityFeed{activity: activity, users: users}
}

// FetchRecent returns the caller's newest entries with their actors attached.
func (f *ActivityFeed) FetchRecent(ctx context.Context, caller tenant.Caller) ([]activity.Entry, error) {
	logs, err := f.activity.ListRecent(ctx, caller, RecentActivityLimit)
	if err != nil {
		return nil, err
	}
	return activity.FromModels(logs), nil
}

// ListActors returns the users that may appear in the caller's activity.
func (f *ActivityFeed) ListActors(ctx context.Context, caller tenant.Caller) ([]models.User, error) {
	return f.users.ListScoped(ctx, caller)
}
