package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskdeck-api/internal/api/shared"
	"github.com/phrazzld/taskdeck-api/internal/mocks"
	"github.com/phrazzld/taskdeck-api/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	validClaims := &auth.Claims{UserID: userID, Username: "alice", TokenType: "access"}

	tests := []struct {
		name        string
		authHeader  string
		validateErr error
		claims      *auth.Claims
		wantStatus  int
		wantNext    bool
	}{
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "raw token accepted",
			authHeader: "some-token",
			claims:     validClaims,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "bearer prefix accepted",
			authHeader: "Bearer some-token",
			claims:     validClaims,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:        "invalid token",
			authHeader:  "garbage",
			validateErr: auth.ErrInvalidToken,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "refresh token where access expected",
			authHeader:  "refresh-token",
			validateErr: auth.ErrWrongTokenType,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "expired token",
			authHeader:  "stale-token",
			validateErr: auth.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:        "unexpected validation failure",
			authHeader:  "some-token",
			validateErr: assert.AnError,
			wantStatus:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := &mocks.MockJWTService{
				Claims:      tt.claims,
				ValidateErr: tt.validateErr,
			}
			m := NewAuthMiddleware(jwtService)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				// Identity must be resolved into the context.
				gotID, ok := GetUserID(r)
				require.True(t, ok)
				assert.Equal(t, userID, gotID)
				assert.Equal(t, "alice", r.Context().Value(shared.UsernameContextKey))

				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/tasks", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			m.Authenticate(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}

func TestAuthenticateStripsBearerPrefix(t *testing.T) {
	t.Parallel()

	var seen string
	jwtService := &mocks.MockJWTService{
		ValidateTokenFn: func(_ context.Context, tokenString string) (*auth.Claims, error) {
			seen = tokenString
			return &auth.Claims{UserID: uuid.New(), Username: "alice", TokenType: "access"}, nil
		},
	}
	m := NewAuthMiddleware(jwtService)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("GET", "/tasks", nil)
	req.Header.Set("Authorization", "Bearer the-token")

	m.Authenticate(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "the-token", seen)
}
