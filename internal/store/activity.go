package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/tenant"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityRepository struct {
	db *gorm.DB
}

func (r *ActivityRepository) Insert(ctx context.Context, entry *models.ActivityLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to insert activity log: %w", err)
	}
	return nil
}

// ListRecent returns at most limit entries newest first, each with its actor.
func (r *ActivityRepository) ListRecent(ctx context.Context, caller tenant.Caller, limit int) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	err := r.db.WithContext(ctx).
		Scopes(tenant.ForCaller(caller)).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	return entries, nil
}

func (r *ActivityRepository) CountScoped(ctx context.Context, caller tenant.Caller) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.ActivityLog{}).Scopes(tenant.ForCaller(caller)).Count(&n).Error
	return n, err
}

// TimestampsSince returns creation times at or after since, oldest first.
func (r *ActivityRepository) TimestampsSince(ctx context.Context, caller tenant.Caller, since time.Time) ([]time.Time, error) {
	var times []time.Time
	err := r.db.WithContext(ctx).Model(&models.ActivityLog{}).
		Scopes(tenant.ForCaller(caller)).
		Where("created_at >= ?", since.UTC()).
		Order("created_at ASC").
		Pluck("created_at", &times).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load activity timestamps: %w", err)
	}
	return times, nil
}
