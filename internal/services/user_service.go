package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/store"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/tenant"
)

type UserService struct {
	users    store.Users
	activity *ActivityLogger
}

func NewUserService(users store.Users, activity *ActivityLogger) *UserService {
	return &UserService{users: users, activity: activity}
}

func (s *UserService) List(ctx context.Context, caller tenant.Caller) ([]models.User, error) {
	return s.users.ListScoped(ctx, caller)
}

func (s *UserService) UpdateProfile(ctx context.Context, caller tenant.Caller, fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return invalid("Full name is required")
	}

	if err := s.users.UpdateFullName(ctx, caller.UserID, fullName); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	s.activity.Record(ctx, caller.UserID, caller.TenantID, ActionUpdatedProfile, nil)
	return nil
}

// Settings returns the caller's own row with its tenant.
func (s *UserService) Settings(ctx context.Context, caller tenant.Caller) (*models.User, *models.Tenant, error) {
	u, err := s.users.GetWithTenant(ctx, caller.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil, ErrCallerProfileMissing
	}
	if err != nil {
		return nil, nil, err
	}
	t := u.Tenant
	u.Tenant = nil
	return u, t, nil
}
