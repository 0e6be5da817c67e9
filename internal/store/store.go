// Package store is the single storage abstraction of the dashboard. Every
// listing goes through tenant.ForCaller so non-admin callers only ever see
// rows of their own tenant.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type Users interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetWithTenant(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	Upsert(ctx context.Context, u *models.User) error
	UpdateFullName(ctx context.Context, id uuid.UUID, fullName string) error
	ListScoped(ctx context.Context, caller tenant.Caller) ([]models.User, error)
	CountScoped(ctx context.Context, caller tenant.Caller) (int64, error)
}

type Tenants interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	First(ctx context.Context) (*models.Tenant, error)
	FirstOrCreate(ctx context.Context, t *models.Tenant) error
}

type Projects interface {
	ListScoped(ctx context.Context, caller tenant.Caller) ([]models.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) error
	Update(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountScoped(ctx context.Context, caller tenant.Caller) (int64, error)
}

type Activity interface {
	Insert(ctx context.Context, entry *models.ActivityLog) error
	ListRecent(ctx context.Context, caller tenant.Caller, limit int) ([]models.ActivityLog, error)
	CountScoped(ctx context.Context, caller tenant.Caller) (int64, error)
	TimestampsSince(ctx context.Context, caller tenant.Caller, since time.Time) ([]time.Time, error)
}

type RefreshTokens interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	FindActive(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	RevokeByHash(ctx context.Context, tokenHash string) error
}

// Store bundles the GORM-backed repositories over one connection.
type Store struct {
	Users         Users
	Tenants       Tenants
	Projects      Projects
	Activity      Activity
	RefreshTokens RefreshTokens
}

func New(db *gorm.DB) *Store {
	return &Store{
		Users:         &UserRepository{db: db},
		Tenants:       &TenantRepository{db: db},
		Projects:      &ProjectRepository{db: db},
		Activity:      &ActivityRepository{db: db},
		RefreshTokens: &RefreshTokenRepository{db: db},
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
