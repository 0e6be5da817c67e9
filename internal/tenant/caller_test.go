package tenant

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCallerCanAccess(t *testing.T) {
	own := uuid.New()
	other := uuid.New()

	member := Caller{UserID: uuid.New(), Role: models.RoleManager, TenantID: own}
	assert.True(t, member.CanAccess(own))
	assert.False(t, member.CanAccess(other))
	assert.False(t, member.IsAdmin())

	admin := Caller{UserID: uuid.New(), Role: models.RoleAdmin, TenantID: own}
	assert.True(t, admin.CanAccess(other))
	assert.True(t, admin.IsAdmin())
}

func TestCallerFromUser(t *testing.T) {
	u := &models.User{ID: uuid.New(), Role: models.RoleUser, TenantID: uuid.New()}
	c := CallerFromUser(u)

	assert.Equal(t, u.ID, c.UserID)
	assert.Equal(t, u.TenantID, c.TenantID)
	assert.Equal(t, models.RoleUser, c.Role)
}
