package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/activity"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/store"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/tenant"
)

const chartWindowDays = 30

type DashboardService struct {
	store *store.Store
	loc   *time.Location
	now   func() time.Time
}

func NewDashboardService(s *store.Store, loc *time.Location) *DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardService{store: s, loc: loc, now: time.Now}
}

// Stats returns scoped counts and the per-day activity of the last 30 days.
func (s *DashboardService) Stats(ctx context.Context, caller tenant.Caller) (*dto.DashboardResponse, error) {
	users, err := s.store.Users.CountScoped(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	projects, err := s.store.Projects.CountScoped(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}
	entries, err := s.store.Activity.CountScoped(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("failed to count activity: %w", err)
	}

	since := s.now().AddDate(0, 0, -chartWindowDays)
	times, err := s.store.Activity.TimestampsSince(ctx, caller, since)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		UserCount:     users,
		ProjectCount:  projects,
		ActivityCount: entries,
		Activity:      activity.DailyCounts(times, s.loc),
	}, nil
}
