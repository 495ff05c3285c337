package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marrymk/marketplace-service/internal/i18n"
	"github.com/marrymk/marketplace-service/internal/integrations/identity"
)

const testSecret = "test-secret"

type fakeIdentityClient struct {
	info *identity.UserInfo
	err  error
}

func (f *fakeIdentityClient) GetUserInfoWithGracefulDegradation(context.Context, string) (*identity.UserInfo, error) {
	return f.info, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return raw
}

func captureUser(captured *AuthUser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u, ok := UserFromContext(r.Context()); ok {
			*captured = u
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid token with email claim", func(t *testing.T) {
		auth := NewAuth(testSecret, &fakeIdentityClient{
			info: &identity.UserInfo{Email: "user@example.com", Role: identity.RoleUser},
		}, i18n.NewBundle(), noopLogger{})

		var user AuthUser
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"email": "user@example.com"}))

		rec := httptest.NewRecorder()
		auth.Middleware(captureUser(&user)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user@example.com", user.Email)
		assert.False(t, user.IsAdmin)
	})

	t.Run("email taken from sub claim", func(t *testing.T) {
		auth := NewAuth(testSecret, &fakeIdentityClient{
			info: &identity.UserInfo{Email: "sub@example.com", Role: identity.RoleUser},
		}, i18n.NewBundle(), noopLogger{})

		var user AuthUser
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"sub": "sub@example.com"}))

		rec := httptest.NewRecorder()
		auth.Middleware(captureUser(&user)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "sub@example.com", user.Email)
	})

	t.Run("admin role from identity provider", func(t *testing.T) {
		auth := NewAuth(testSecret, &fakeIdentityClient{
			info: &identity.UserInfo{Email: "admin@example.com", Role: identity.RoleAdmin},
		}, i18n.NewBundle(), noopLogger{})

		var user AuthUser
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"email": "admin@example.com"}))

		rec := httptest.NewRecorder()
		auth.Middleware(captureUser(&user)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, user.IsAdmin)
	})

	t.Run("degraded identity provider keeps plain role", func(t *testing.T) {
		auth := NewAuth(testSecret, &fakeIdentityClient{
			err: identity.ErrServiceDegraded,
		}, i18n.NewBundle(), noopLogger{})

		var user AuthUser
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"email": "user@example.com"}))

		rec := httptest.NewRecorder()
		auth.Middleware(captureUser(&user)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user@example.com", user.Email)
		assert.False(t, user.IsAdmin)
	})

	t.Run("unknown user rejected", func(t *testing.T) {
		auth := NewAuth(testSecret, &fakeIdentityClient{
			err: identity.ErrUserNotFound,
		}, i18n.NewBundle(), noopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"email": "ghost@example.com"}))

		rec := httptest.NewRecorder()
		auth.Middleware(captureUser(&AuthUser{})).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejections", func(t *testing.T) {
		wrongSecret, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
			jwt.MapClaims{"email": "user@example.com"}).SignedString([]byte("other-secret"))
		require.NoError(t, err)

		tests := []struct {
			name   string
			header string
		}{
			{"missing header", ""},
			{"malformed header", "Token abc"},
			{"garbage token", "Bearer not-a-jwt"},
			{"wrong signature", "Bearer " + wrongSecret},
			{"no email claim", "Bearer " + signToken(t, jwt.MapClaims{"aud": "marketplace"})},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				auth := NewAuth(testSecret, &fakeIdentityClient{
					info: &identity.UserInfo{Email: "user@example.com", Role: identity.RoleUser},
				}, i18n.NewBundle(), noopLogger{})

				req := httptest.NewRequest(http.MethodGet, "/", nil)
				if tt.header != "" {
					req.Header.Set("Authorization", tt.header)
				}

				rec := httptest.NewRecorder()
				auth.Middleware(captureUser(&AuthUser{})).ServeHTTP(rec, req)

				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			})
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	auth := NewAuth(testSecret, &fakeIdentityClient{}, i18n.NewBundle(), noopLogger{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := context.WithValue(req.Context(), authUserContextKey{}, AuthUser{Email: "admin@example.com", IsAdmin: true})

		rec := httptest.NewRecorder()
		auth.RequireAdmin(next).ServeHTTP(rec, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("plain user forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := context.WithValue(req.Context(), authUserContextKey{}, AuthUser{Email: "user@example.com"})

		rec := httptest.NewRecorder()
		auth.RequireAdmin(next).ServeHTTP(rec, req.WithContext(ctx))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unauthenticated forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		rec := httptest.NewRecorder()
		auth.RequireAdmin(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
