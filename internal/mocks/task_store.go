package mocks

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/phrazzld/dayplan/internal/domain"
	"github.com/phrazzld/dayplan/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockTaskStore is a mock of store.TaskStore interface for use with testify/mock
type TestifyMockTaskStore struct {
	mock.Mock
}

var _ store.TaskStore = (*TestifyMockTaskStore)(nil)

// Add is a mock implementation of store.TaskStore.Add
func (m *TestifyMockTaskStore) Add(ctx context.Context, task domain.Task) (int, error) {
	args := m.Called(ctx, task)
	return args.Int(0), args.Error(1)
}

// Remove is a mock implementation of store.TaskStore.Remove
func (m *TestifyMockTaskStore) Remove(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// List is a mock implementation of store.TaskStore.List
func (m *TestifyMockTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	if tasks, ok := args.Get(0).([]domain.Task); ok {
		return tasks, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListForDate is a mock implementation of store.TaskStore.ListForDate
func (m *TestifyMockTaskStore) ListForDate(ctx context.Context, date civil.Date) ([]domain.Task, error) {
	args := m.Called(ctx, date)
	if tasks, ok := args.Get(0).([]domain.Task); ok {
		return tasks, args.Error(1)
	}
	return nil, args.Error(1)
}
