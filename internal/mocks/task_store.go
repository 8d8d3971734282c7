package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, task *domain.Task) error
	ListByOwnerFn func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)
	CompleteFn    func(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)

	// Data for default implementation, in insertion order
	Tasks       []*domain.Task
	CreateError error
	ListError   error
}

// Ensure MockTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Tasks = append(m.Tasks, task)
	return nil
}

// ListByOwner implements the TaskStore interface
func (m *MockTaskStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*domain.Task, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	owned := make([]*domain.Task, 0)
	for _, task := range m.Tasks {
		if task.OwnerID == ownerID {
			owned = append(owned, task)
		}
	}
	return owned, nil
}

// Complete implements the TaskStore interface
func (m *MockTaskStore) Complete(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
) (*domain.Task, error) {
	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, ownerID, taskID)
	}

	for _, task := range m.Tasks {
		if task.OwnerID == ownerID && task.ID == taskID {
			task.Completed = true
			return task, nil
		}
	}
	return nil, store.ErrTaskNotFound
}
