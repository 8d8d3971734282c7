package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "valid user",
			username: "alice",
			password: "pw1",
			wantErr:  nil,
		},
		{
			name:     "empty username",
			username: "",
			password: "pw1",
			wantErr:  ErrEmptyUsername,
		},
		{
			name:     "empty password",
			username: "alice",
			password: "",
			wantErr:  ErrEmptyPassword,
		},
		{
			name:     "password over bcrypt limit",
			username: "alice",
			password: strings.Repeat("x", 73),
			wantErr:  ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.Equal(t, tt.username, user.Username)
			assert.Equal(t, tt.password, user.Password)
			assert.Empty(t, user.HashedPassword)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}

func TestUserValidateHashedOnly(t *testing.T) {
	t.Parallel()

	// A user loaded from a store carries only the hash.
	user := &User{
		ID:             uuid.New(),
		Username:       "alice",
		HashedPassword: "$2a$10$something",
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}
