package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aashray-care/aashray-backend/internal/api/middleware"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protectedEcho(t *testing.T) (http.Handler, *string) {
	var seenUserID string
	handler := middleware.AuthMiddleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		require.True(t, ok)
		seenUserID = userID
		w.WriteHeader(http.StatusOK)
	}))
	return handler, &seenUserID
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("accepts a valid token and exposes the subject", func(t *testing.T) {
		handler, seenUserID := protectedEcho(t)

		req := httptest.NewRequest("GET", "/api/bookings", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "user-1", time.Now().Add(time.Hour)))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", *seenUserID)
	})

	t.Run("rejects a missing authorization header", func(t *testing.T) {
		handler, _ := protectedEcho(t)

		req := httptest.NewRequest("GET", "/api/bookings", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a token signed with the wrong secret", func(t *testing.T) {
		handler, _ := protectedEcho(t)

		req := httptest.NewRequest("GET", "/api/bookings", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "user-1", time.Now().Add(time.Hour)))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		handler, _ := protectedEcho(t)

		req := httptest.NewRequest("GET", "/api/bookings", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "user-1", time.Now().Add(-time.Hour)))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a token without a subject", func(t *testing.T) {
		handler, _ := protectedEcho(t)

		req := httptest.NewRequest("GET", "/api/bookings", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "", time.Now().Add(time.Hour)))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
