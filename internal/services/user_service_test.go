package services

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/database/databasetest"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/tenant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_UpdateProfileAndSettings(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	acme := databasetest.Tenant(t, env.db, "Acme")
	alice := databasetest.User(t, env.db, acme.ID, models.RoleUser, "alice@acme.com", "Alice")
	caller := tenant.CallerFromUser(alice)
	svc := NewUserService(env.store.Users, env.logger)

	var verr *ValidationError
	require.ErrorAs(t, svc.UpdateProfile(ctx, caller, " "), &verr)

	require.NoError(t, svc.UpdateProfile(ctx, caller, "Alice Smith"))

	user, tn, err := svc.Settings(ctx, caller)
	require.NoError(t, err)
	require.NotNil(t, user.FullName)
	assert.Equal(t, "Alice Smith", *user.FullName)
	assert.Equal(t, "Acme", tn.Name)
	assert.Nil(t, user.Tenant)

	logs, err := env.store.Activity.ListRecent(ctx, caller, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, ActionUpdatedProfile, logs[0].Action)
}
