package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// TaskStore implements the store.TaskStore interface using an in-memory
// slice, which preserves insertion order for listings.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []*domain.Task
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a new in-memory implementation of the TaskStore
// interface.
func NewTaskStore() *TaskStore {
	return &TaskStore{}
}

// Create implements store.TaskStore.Create.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if task.OwnerID == uuid.Nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrEmptyUserID)
	}

	stored := *task

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, &stored)
	return nil
}

// ListByOwner implements store.TaskStore.ListByOwner.
// Returned tasks are copies; callers can sort or mutate them freely without
// affecting the store.
func (s *TaskStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := make([]*domain.Task, 0)
	for _, task := range s.tasks {
		if task.OwnerID == ownerID {
			found := *task
			owned = append(owned, &found)
		}
	}
	return owned, nil
}

// Complete implements store.TaskStore.Complete.
// The scan and the flag flip happen under a single write lock.
func (s *TaskStore) Complete(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range s.tasks {
		if task.OwnerID == ownerID && task.ID == taskID {
			task.Completed = true
			updated := *task
			return &updated, nil
		}
	}
	return nil, store.ErrTaskNotFound
}
