package api

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/taskdeck-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Username is the username the token was issued for
	Username string `json:"username"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresAt is the ISO 8601 timestamp when the access token expires
	ExpiresAt string `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// CreateTaskRequest defines the payload for the task creation endpoint.
// Field names match the public wire format (camelCase). None of the fields
// are required; an empty task is legal.
type CreateTaskRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	DueDate     string          `json:"dueDate"`
	Category    string          `json:"category"`
	Priority    json.RawMessage `json:"priority"`
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	DueDate     time.Time       `json:"dueDate"`
	Category    string          `json:"category"`
	Priority    json.RawMessage `json:"priority,omitempty"`
	Completed   bool            `json:"completed"`
	CreatedAt   time.Time       `json:"created_at"`
}

// taskToResponse converts a domain Task into its API representation.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Category:    task.Category,
		Priority:    task.Priority,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
	}
}

// tasksToResponse converts a slice of domain Tasks into API representations.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
