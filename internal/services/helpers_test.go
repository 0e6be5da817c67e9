package services

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/config"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/database/databasetest"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/store"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	store  *store.Store
	cfg    *config.Config
	logger *ActivityLogger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := databasetest.New(t)
	s := store.New(db)
	return &testEnv{
		db:     db,
		store:  s,
		cfg:    testConfig(),
		logger: NewActivityLogger(s.Activity),
	}
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  time.Minute,
		JWTRefreshExpiry: time.Hour,
		SummaryMaxTokens: 1000,
		DemoEmail:        "demo@acme.com",
		DemoPassword:     "demo123456",
		DemoTenantName:   "Acme Corporation",
	}
}

// stubGenerator records prompts and replies with fixed blocks or an error.
type stubGenerator struct {
	blocks  []ContentBlock
	err     error
	calls   int
	prompt  string
	maxToks int
}

func (g *stubGenerator) Generate(_ context.Context, prompt string, maxTokens int) ([]ContentBlock, error) {
	g.calls++
	g.prompt = prompt
	g.maxToks = maxTokens
	return g.blocks, g.err
}
