package services

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/database/databasetest"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/tenant"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type projectFixture struct {
	env   *testEnv
	svc   *ProjectService
	acme  *models.Tenant
	other *models.Tenant
	alice *models.User
	bob   *models.User
	root  *models.User
}

func newProjectFixture(t *testing.T) *projectFixture {
	env := newTestEnv(t)
	f := &projectFixture{env: env, svc: NewProjectService(env.store.Projects, env.store.Users, env.logger)}
	f.acme = databasetest.Tenant(t, env.db, "Acme")
	f.other = databasetest.Tenant(t, env.db, "Other")
	f.alice = databasetest.User(t, env.db, f.acme.ID, models.RoleManager, "alice@acme.com", "Alice")
	f.bob = databasetest.User(t, env.db, f.other.ID, models.RoleUser, "bob@other.com", "Bob")
	f.root = databasetest.User(t, env.db, f.acme.ID, models.RoleAdmin, "root@acme.com", "Root")
	return f
}

func (f *projectFixture) lastAction(t *testing.T) (string, string) {
	t.Helper()
	logs, err := f.env.store.Activity.ListRecent(context.Background(), tenant.CallerFromUser(f.root), 1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	details := ""
	if logs[0].Details != nil {
		details = *logs[0].Details
	}
	return logs[0].Action, details
}

func TestProjectService_CreateUsesCallerTenant(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture(t)

	p, err := f.svc.Create(ctx, tenant.CallerFromUser(f.alice), &dto.ProjectRequest{Name: "Apollo", AssignedUserID: &f.alice.ID})
	require.NoError(t, err)
	assert.Equal(t, f.acme.ID, p.TenantID)
	assert.Equal(t, models.ProjectPlanning, p.Status)

	action, details := f.lastAction(t)
	assert.Equal(t, ActionCreatedProject, action)
	assert.Equal(t, "Project: Apollo", details)
}

func TestProjectService_Validation(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture(t)
	caller := tenant.CallerFromUser(f.alice)

	var verr *ValidationError
	_, err := f.svc.Create(ctx, caller, &dto.ProjectRequest{Name: "  "})
	require.ErrorAs(t, err, &verr)

	_, err = f.svc.Create(ctx, caller, &dto.ProjectRequest{Name: "X", Status: "archived"})
	require.ErrorAs(t, err, &verr)

	_, err = f.svc.Create(ctx, caller, &dto.ProjectRequest{Name: "X", AssignedUserID: &f.bob.ID})
	require.ErrorAs(t, err, &verr)

	missing := uuid.New()
	_, err = f.svc.Create(ctx, caller, &dto.ProjectRequest{Name: "X", AssignedUserID: &missing})
	require.ErrorAs(t, err, &verr)
}

func TestProjectService_UpdateAcrossTenantsForbidden(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture(t)
	p := databasetest.Project(t, f.env.db, f.acme.ID, "Apollo")

	_, err := f.svc.Update(ctx, tenant.CallerFromUser(f.bob), p.ID, &dto.ProjectRequest{Name: "Hijack", Status: models.ProjectCompleted})
	require.ErrorIs(t, err, ErrForbidden)

	err = f.svc.Delete(ctx, tenant.CallerFromUser(f.bob), p.ID)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.Update(ctx, tenant.CallerFromUser(f.alice), uuid.New(), &dto.ProjectRequest{Name: "Nope"})
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectService_UpdateKeepsTenant(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture(t)
	p := databasetest.Project(t, f.env.db, f.other.ID, "Gemini")

	updated, err := f.svc.Update(ctx, tenant.CallerFromUser(f.root), p.ID, &dto.ProjectRequest{
		Name:           "Gemini II",
		Status:         models.ProjectOnHold,
		AssignedUserID: &f.bob.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, f.other.ID, updated.TenantID)
	assert.Equal(t, "Gemini II", updated.Name)
	assert.Equal(t, models.ProjectOnHold, updated.Status)
	require.NotNil(t, updated.AssignedUserID)
	assert.Equal(t, f.bob.ID, *updated.AssignedUserID)

	action, details := f.lastAction(t)
	assert.Equal(t, ActionEditedProject, action)
	assert.Equal(t, "Project: Gemini II", details)
}

func TestProjectService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture(t)
	p := databasetest.Project(t, f.env.db, f.acme.ID, "Apollo")

	require.NoError(t, f.svc.Delete(ctx, tenant.CallerFromUser(f.alice), p.ID))
	require.ErrorIs(t, f.svc.Delete(ctx, tenant.CallerFromUser(f.alice), p.ID), ErrProjectNotFound)

	action, details := f.lastAction(t)
	assert.Equal(t, ActionDeletedProject, action)
	assert.Equal(t, "Project: Apollo", details)

	list, err := f.svc.List(ctx, tenant.CallerFromUser(f.alice))
	require.NoError(t, err)
	assert.Empty(t, list)
}
