package tenant

import (
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/google/uuid"
)

// Caller is the authorization context of a request. It is rebuilt from the
// users table on every request; the token only supplies UserID.
type Caller struct {
	UserID   uuid.UUID
	Role     string
	TenantID uuid.UUID
}

func (c Caller) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

// CanAccess reports whether the caller may touch a row owned by tenantID.
func (c Caller) CanAccess(tenantID uuid.UUID) bool {
	return c.IsAdmin() || c.TenantID == tenantID
}

func CallerFromUser(u *models.User) Caller {
	return Caller{UserID: u.ID, Role: u.Role, TenantID: u.TenantID}
}
