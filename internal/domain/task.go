package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Task represents a single task owned by a user.
//
// Priority is stored as raw JSON: clients may send a number, a string, or
// anything else, and it is echoed back untouched. No operation interprets it.
type Task struct {
	ID          uuid.UUID       `json:"id"`
	OwnerID     uuid.UUID       `json:"owner_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	DueDate     time.Time       `json:"due_date"`
	Category    string          `json:"category"`
	Priority    json.RawMessage `json:"priority,omitempty"`
	Completed   bool            `json:"completed"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewTask creates a new Task for the given owner with Completed set to false.
// It generates a new UUID for the task ID so that the task is addressable by
// the completion endpoint. Field content beyond the owner is not validated;
// a task with empty title or zero due date is legal.
func NewTask(
	ownerID uuid.UUID,
	title, description string,
	dueDate time.Time,
	category string,
	priority json.RawMessage,
) (*Task, error) {
	if ownerID == uuid.Nil {
		return nil, ErrEmptyUserID
	}

	return &Task{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Category:    category,
		Priority:    priority,
		Completed:   false,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
