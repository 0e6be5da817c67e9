package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/tenant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
tenants:
  - id: 00000000-0000-0000-0000-000000000001
    name: Acme Corporation
  - name: TechFlow Solutions
users:
  - { email: admin@acme.com, password: secret1, full_name: Sarah Johnson, role: admin, tenant: Acme Corporation }
  - { email: user1@acme.com, password: secret1, full_name: Emily Rodriguez, role: user, tenant: Acme Corporation }
  - { email: dev@techflow.io, password: secret1, full_name: Tom Ng, role: user, tenant: TechFlow Solutions }
projects:
  - { name: Website Redesign, status: in_progress, tenant: Acme Corporation, assignee: user1@acme.com }
  - { name: API Integration, status: completed, tenant: Acme Corporation }
activity:
  - { user: user1@acme.com, action: created project, details: "Project: Website Redesign", hours_ago: 3 }
  - { user: admin@acme.com, action: user logged in, hours_ago: 1 }
`

func TestSeedService_ApplyFileIsIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := NewSeedService(env.store)

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	require.NoError(t, svc.ApplyFile(ctx, path))
	require.NoError(t, svc.ApplyFile(ctx, path))

	admin := tenant.Caller{Role: models.RoleAdmin}
	users, err := env.store.Users.CountScoped(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(3), users)

	projects, err := env.store.Projects.ListScoped(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, projects, 2)

	logs, err := env.store.Activity.ListRecent(ctx, admin, 100)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "user logged in", logs[0].Action)

	acme, err := env.store.Tenants.GetByID(ctx, projects[0].TenantID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corporation", acme.Name)
}

func TestSeedService_UnknownTenant(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSeedService(env.store)

	err := svc.Apply(context.Background(), &SeedData{
		Users: []SeedUser{{Email: "x@y.com", Password: "secret1", Role: models.RoleUser, Tenant: "Nowhere"}},
	})
	require.Error(t, err)
}

func TestSeedService_EmptyPathIsNoop(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, NewSeedService(env.store).ApplyFile(context.Background(), ""))
}
