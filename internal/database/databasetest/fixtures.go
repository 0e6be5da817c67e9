package databasetest

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Tenant(t *testing.T, db *gorm.DB, name string) *models.Tenant {
	t.Helper()
	tn := &models.Tenant{Name: name}
	if err := db.Create(tn).Error; err != nil {
		t.Fatalf("create tenant: %v", err)
	}
	return tn
}

func User(t *testing.T, db *gorm.DB, tenantID uuid.UUID, role, email, fullName string) *models.User {
	t.Helper()
	u := &models.User{Email: email, Role: role, TenantID: tenantID}
	if fullName != "" {
		u.FullName = &fullName
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func Project(t *testing.T, db *gorm.DB, tenantID uuid.UUID, name string) *models.Project {
	t.Helper()
	p := &models.Project{Name: name, Status: models.ProjectPlanning, TenantID: tenantID}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}
	return p
}

func Activity(t *testing.T, db *gorm.DB, user *models.User, action string, at time.Time) *models.ActivityLog {
	t.Helper()
	a := &models.ActivityLog{UserID: user.ID, TenantID: user.TenantID, Action: action, CreatedAt: at.UTC()}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("create activity: %v", err)
	}
	return a
}
