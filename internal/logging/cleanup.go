package logging

import (
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"gorm.io/gorm"
)

// Retention is how long system_logs rows are kept.
const Retention = 30 * 24 * time.Hour

// PurgeSystemLogs deletes rows older than now minus retention.
func PurgeSystemLogs(db *gorm.DB, now time.Time, retention time.Duration) (int64, error) {
	result := db.Where("timestamp < ?", now.Add(-retention).UTC()).Delete(&models.SystemLog{})
	return result.RowsAffected, result.Error
}

// StartCleanup runs a daily goroutine that purges expired system_logs.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deleted, err := PurgeSystemLogs(db, time.Now(), Retention)
				if err != nil {
					slog.Error("log cleanup failed", "error", err)
				} else if deleted > 0 {
					slog.Info("log cleanup completed", "deleted", deleted)
				}
			case <-done:
				return
			}
		}
	}()
}
