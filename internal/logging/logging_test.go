package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/database"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/database/databasetest"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLogDB(t *testing.T) *gorm.DB {
	db := databasetest.New(t)
	require.NoError(t, database.MigrateSystemLogs(db))
	return db
}

func TestPGHandler_PersistsErrorsOnly(t *testing.T) {
	db := newLogDB(t)
	h := NewPGHandler(db, time.Hour)
	logger := slog.New(h).With("tenant_id", "t-1")

	logger.Info("ignored")
	logger.Error("summary failed",
		"request_id", "req-9",
		"user_id", "u-1",
		"error", "upstream 502",
		"entries", 3,
	)
	h.Stop()

	var rows []models.SystemLog
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "ERROR", row.Level)
	assert.Equal(t, "summary failed", row.Message)
	assert.Equal(t, "t-1", row.TenantID)
	assert.Equal(t, "req-9", row.RequestID)
	require.NotNil(t, row.UserID)
	assert.Equal(t, "u-1", *row.UserID)
	assert.Equal(t, "upstream 502", row.Error)

	var extra map[string]interface{}
	require.NoError(t, json.Unmarshal(row.Extra, &extra))
	assert.EqualValues(t, 3, extra["entries"])
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestMultiHandler_FansOut(t *testing.T) {
	var buf bytes.Buffer
	stdout := NewStdoutHandler(&buf, slog.LevelInfo)
	m := NewMultiHandler(failingHandler{stdout}, stdout)

	assert.False(t, m.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, m.Enabled(context.Background(), slog.LevelInfo))

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)
	record.AddAttrs(slog.String("user_id", "u-2"))
	err := m.Handle(context.Background(), record)
	assert.EqualError(t, err, "sink down")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"user_id":"u-2"`)
}

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Level(true))
	assert.Equal(t, slog.LevelInfo, Level(false))
}

func TestPurgeSystemLogs(t *testing.T) {
	db := newLogDB(t)
	now := time.Now().UTC()
	old := models.SystemLog{ID: uuid.New(), Timestamp: now.Add(-31 * 24 * time.Hour), Level: "ERROR", Message: "old"}
	recent := models.SystemLog{ID: uuid.New(), Timestamp: now.Add(-time.Hour), Level: "ERROR", Message: "recent"}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&recent).Error)

	deleted, err := PurgeSystemLogs(db, now, Retention)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var left []models.SystemLog
	require.NoError(t, db.Find(&left).Error)
	require.Len(t, left, 1)
	assert.Equal(t, "recent", left[0].Message)
}

func TestPGHandler_FullBufferFlushesBeforeTicker(t *testing.T) {
	db := newLogDB(t)
	h := NewPGHandler(db, time.Hour)
	logger := slog.New(h)

	for i := 0; i < batchSize; i++ {
		logger.Error("activity write failed", "i", i)
	}

	require.Eventually(t, func() bool {
		var n int64
		return db.Model(&models.SystemLog{}).Count(&n).Error == nil && n == batchSize
	}, 5*time.Second, 20*time.Millisecond)

	logger.Error("after batch")
	h.Stop()

	var n int64
	require.NoError(t, db.Model(&models.SystemLog{}).Count(&n).Error)
	assert.Equal(t, int64(batchSize+1), n)
}
