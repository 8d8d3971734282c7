package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// UserStore implements the store.UserStore interface using in-memory maps.
type UserStore struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]*domain.User
	byUsername map[string]*domain.User
	hashCost   int
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a new in-memory implementation of the UserStore
// interface. Passwords are hashed with bcrypt at the default cost.
func NewUserStore() *UserStore {
	return &UserStore{
		byID:       make(map[uuid.UUID]*domain.User),
		byUsername: make(map[string]*domain.User),
		hashCost:   bcrypt.DefaultCost,
	}
}

// Create implements store.UserStore.Create.
// The uniqueness check and the insert happen under a single write lock so
// two concurrent registrations of the same username cannot both succeed.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUsername[user.Username]; exists {
		return store.ErrUsernameExists
	}

	stored := *user
	stored.Password = ""
	stored.HashedPassword = string(hashed)

	s.byID[stored.ID] = &stored
	s.byUsername[stored.Username] = &stored

	// Reflect the stored state back to the caller.
	user.Password = ""
	user.HashedPassword = stored.HashedPassword
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}

	found := *user
	return &found, nil
}

// GetByUsername implements store.UserStore.GetByUsername.
// The match is case-sensitive and exact.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byUsername[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}

	found := *user
	return &found, nil
}
