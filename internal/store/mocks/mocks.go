package mocks

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/models"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/tenant"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ActivityStore is a mock for store.Activity.
type ActivityStore struct {
	mock.Mock
}

func (m *ActivityStore) Insert(ctx context.Context, entry *models.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityStore) ListRecent(ctx context.Context, caller tenant.Caller, limit int) ([]models.ActivityLog, error) {
	args := m.Called(ctx, caller, limit)
	if list, ok := args.Get(0).([]models.ActivityLog); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActivityStore) CountScoped(ctx context.Context, caller tenant.Caller) (int64, error) {
	args := m.Called(ctx, caller)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ActivityStore) TimestampsSince(ctx context.Context, caller tenant.Caller, since time.Time) ([]time.Time, error) {
	args := m.Called(ctx, caller, since)
	if list, ok := args.Get(0).([]time.Time); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// UserStore is a mock for store.Users.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserStore) GetWithTenant(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserStore) Upsert(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserStore) UpdateFullName(ctx context.Context, id uuid.UUID, fullName string) error {
	args := m.Called(ctx, id, fullName)
	return args.Error(0)
}

func (m *UserStore) ListScoped(ctx context.Context, caller tenant.Caller) ([]models.User, error) {
	args := m.Called(ctx, caller)
	if list, ok := args.Get(0).([]models.User); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserStore) CountScoped(ctx context.Context, caller tenant.Caller) (int64, error) {
	args := m.Called(ctx, caller)
	return args.Get(0).(int64), args.Error(1)
}
