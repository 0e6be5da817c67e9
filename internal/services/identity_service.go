package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/store"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/tenant"
	"github.com/google/uuid"
)

// IdentityService turns a token subject into an authorization context.
type IdentityService struct {
	users store.Users
}

func NewIdentityService(users store.Users) *IdentityService {
	return &IdentityService{users: users}
}

// ResolveCaller re-reads role and tenant from the users table. Token claims
// other than the subject are never trusted for authorization.
func (s *IdentityService) ResolveCaller(ctx context.Context, userID uuid.UUID) (tenant.Caller, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return tenant.Caller{}, ErrCallerProfileMissing
	}
	if err != nil {
		return tenant.Caller{}, fmt.Errorf("failed to resolve caller: %w", err)
	}
	return tenant.CallerFromUser(user), nil
}
