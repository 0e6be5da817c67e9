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

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *UserRepository) GetWithTenant(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Preload("Tenant").First(&user, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(u).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Upsert inserts u or, when the email exists, overwrites its credentials,
// name, role and tenant. u.ID is not reliable afterwards; read the row back.
func (r *UserRepository) Upsert(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "full_name", "role", "tenant_id"}),
	}).Create(u).Error
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdateFullName(ctx context.Context, id uuid.UUID, fullName string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("full_name", fullName)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListScoped returns the users visible to caller, ordered by name.
func (r *UserRepository) ListScoped(ctx context.Context, caller tenant.Caller) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Scopes(tenant.ForCaller(caller)).
		Order("full_name").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) CountScoped(ctx context.Context, caller tenant.Caller) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Scopes(tenant.ForCaller(caller)).Count(&n).Error
	return n, err
}
