package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/store"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/store/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityService_ResolveCaller(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	tenantID := uuid.New()

	users := &mocks.UserStore{}
	users.On("GetByID", ctx, id).Return(&models.User{ID: id, Role: models.RoleManager, TenantID: tenantID}, nil)

	caller, err := NewIdentityService(users).ResolveCaller(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, caller.UserID)
	assert.Equal(t, tenantID, caller.TenantID)
	assert.Equal(t, models.RoleManager, caller.Role)
}

func TestIdentityService_MissingRow(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	users := &mocks.UserStore{}
	users.On("GetByID", ctx, id).Return((*models.User)(nil), store.ErrNotFound)

	_, err := NewIdentityService(users).ResolveCaller(ctx, id)
	require.ErrorIs(t, err, ErrCallerProfileMissing)
}

func TestIdentityService_StoreFailure(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	users := &mocks.UserStore{}
	users.On("GetByID", ctx, id).Return((*models.User)(nil), errors.New("timeout"))

	_, err := NewIdentityService(users).ResolveCaller(ctx, id)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCallerProfileMissing)
}
