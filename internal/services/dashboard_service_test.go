package services

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/database/databasetest"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/tenant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	acme := databasetest.Tenant(t, env.db, "Acme")
	other := databasetest.Tenant(t, env.db, "Other")
	alice := databasetest.User(t, env.db, acme.ID, models.RoleUser, "alice@acme.com", "Alice")
	bob := databasetest.User(t, env.db, other.ID, models.RoleUser, "bob@other.com", "Bob")
	databasetest.Project(t, env.db, acme.ID, "Apollo")
	databasetest.Project(t, env.db, other.ID, "Gemini")

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	databasetest.Activity(t, env.db, alice, "user logged in", now.AddDate(0, 0, -45))
	databasetest.Activity(t, env.db, alice, "user logged in", now.AddDate(0, 0, -2))
	databasetest.Activity(t, env.db, alice, "created project", now.AddDate(0, 0, -2).Add(time.Hour))
	databasetest.Activity(t, env.db, alice, "edited project", now.Add(-time.Hour))
	databasetest.Activity(t, env.db, bob, "user logged in", now.Add(-time.Hour))

	svc := NewDashboardService(env.store, time.UTC)
	svc.now = func() time.Time { return now }

	stats, err := svc.Stats(ctx, tenant.CallerFromUser(alice))
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.UserCount)
	assert.Equal(t, int64(1), stats.ProjectCount)
	assert.Equal(t, int64(4), stats.ActivityCount)
	require.Len(t, stats.Activity, 2)
	assert.Equal(t, "Mar 08", stats.Activity[0].Date)
	assert.Equal(t, 2, stats.Activity[0].Count)
	assert.Equal(t, "Mar 10", stats.Activity[1].Date)
}
