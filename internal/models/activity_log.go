package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLog is an append-only audit row. TenantID is copied from the acting
// user at write time, not derived by join.
type ActivityLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index:idx_activity_tenant_created,priority:1" json:"tenant_id"`
	Action    string    `gorm:"size:255;not null" json:"action"`
	Details   *string   `gorm:"type:text" json:"details"`
	CreatedAt time.Time `gorm:"not null;index:idx_activity_tenant_created,priority:2" json:"created_at"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (a *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
