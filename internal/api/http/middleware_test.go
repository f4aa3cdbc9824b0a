package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"closetshare-backend/internal/security"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	tokens := security.NewTokenManager("test-secret-that-is-long-enough-0123", 60)
	mw := NewAuthMiddleware(tokens)

	var seenUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, _ = GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := mw.Handler(next)

	t.Run("ValidToken", func(t *testing.T) {
		token, err := tokens.GenerateAccessToken("user-1", "user@test.com")
		assert.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/rentals/my-rentals", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", seenUserID)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/rentals/my-rentals", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("NotBearer", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/rentals/my-rentals", nil)
		r.Header.Set("Authorization", "Basic abc123")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/rentals/my-rentals", nil)
		r.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
