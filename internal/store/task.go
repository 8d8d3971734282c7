package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
// All read and mutate operations are owner-scoped: a task is only
// reachable through its owner's ID.
type TaskStore interface {
	// Create appends a new task to the store.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// ListByOwner returns all tasks whose owner matches, in insertion order.
	// An owner with no tasks gets an empty slice, not an error.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)

	// Complete marks the task matching both owner and ID as completed and
	// returns the updated task. Completing an already-completed task is a
	// no-op that still succeeds.
	// Returns ErrTaskNotFound if no task matches.
	Complete(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)
}
