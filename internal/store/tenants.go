package store

import (
	"context"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TenantRepository struct {
	db *gorm.DB
}

func (r *TenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	var t models.Tenant
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

// First returns the oldest tenant.
func (r *TenantRepository) First(ctx context.Context) (*models.Tenant, error) {
	var t models.Tenant
	if err := r.db.WithContext(ctx).Order("created_at").First(&t).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

// FirstOrCreate matches on ID when set, otherwise on Name, and fills t with
// the stored row.
func (r *TenantRepository) FirstOrCreate(ctx context.Context, t *models.Tenant) error {
	q := r.db.WithContext(ctx)
	if t.ID != uuid.Nil {
		q = q.Where("id = ?", t.ID)
	} else {
		q = q.Where("name = ?", t.Name)
	}
	if err := q.FirstOrCreate(t).Error; err != nil {
		return fmt.Errorf("failed to get or create tenant: %w", err)
	}
	return nil
}
