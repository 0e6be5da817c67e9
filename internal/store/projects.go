package store

import (
	"context"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepository struct {
	db *gorm.DB
}

// ListScoped returns projects newest first with the assigned user attached.
func (r *ProjectRepository) ListScoped(ctx context.Context, caller tenant.Caller) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Scopes(tenant.ForCaller(caller)).
		Preload("AssignedUser").
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var p models.Project
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Update writes name, status and assignee. TenantID is never written.
func (r *ProjectRepository) Update(ctx context.Context, p *models.Project) error {
	result := r.db.WithContext(ctx).Model(&models.Project{}).
		Where("id = ?", p.ID).
		Select("name", "status", "assigned_user_id", "updated_at").
		Updates(map[string]interface{}{
			"name":             p.Name,
			"status":           p.Status,
			"assigned_user_id": p.AssignedUserID,
			"updated_at":       r.db.NowFunc(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Project{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) CountScoped(ctx context.Context, caller tenant.Caller) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Scopes(tenant.ForCaller(caller)).Count(&n).Error
	return n, err
}
