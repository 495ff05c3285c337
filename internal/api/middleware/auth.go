// Package middleware HTTP middleware: аутентификация, язык запроса, метрики.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/marrymk/marketplace-service/internal/api/handlers"
	"github.com/marrymk/marketplace-service/internal/i18n"
	"github.com/marrymk/marketplace-service/internal/integrations/identity"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AuthUser аутентифицированный пользователь запроса
type AuthUser struct {
	Email   string
	Role    string
	IsAdmin bool
}

type authUserContextKey struct{}

// UserFromContext возвращает аутентифицированного пользователя из контекста
func UserFromContext(ctx context.Context) (AuthUser, bool) {
	u, ok := ctx.Value(authUserContextKey{}).(AuthUser)
	return u, ok
}

// IdentityClient интерфейс клиента identity-провайдера
type IdentityClient interface {
	GetUserInfoWithGracefulDegradation(ctx context.Context, email string) (*identity.UserInfo, error)
}

// Auth проверяет Bearer-токен и кладет пользователя в контекст.
// Токен подписан identity-провайдером (HS256, общий секрет) и несет email
// в claims; роль в токен не входит и запрашивается у провайдера.
type Auth struct {
	secret         []byte
	identityClient IdentityClient
	bundle         *i18n.Bundle
	log            Logger
}

// NewAuth создает auth middleware
func NewAuth(secret string, identityClient IdentityClient, bundle *i18n.Bundle, log Logger) *Auth {
	return &Auth{
		secret:         []byte(secret),
		identityClient: identityClient,
		bundle:         bundle,
		log:            log,
	}
}

// Middleware проверяет токен и требует аутентификации
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := a.authenticate(r)
		if err != nil {
			a.log.Warn("Auth: %s %s rejected: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, a.bundle.T(i18n.FromContext(r.Context()), i18n.MsgUnauthorized))
			return
		}

		ctx := context.WithValue(r.Context(), authUserContextKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin пропускает только администраторов.
// Выполняется после Middleware.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok || !user.IsAdmin {
			a.log.Warn("Auth: %s %s requires admin role (user=%s)", r.Method, r.URL.Path, user.Email)
			handlers.RespondForbidden(w, a.bundle.T(i18n.FromContext(r.Context()), i18n.MsgAccessDenied))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *Auth) authenticate(r *http.Request) (AuthUser, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return AuthUser{}, errors.New("missing Authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return AuthUser{}, errors.New("malformed Authorization header")
	}

	email, err := a.parseToken(parts[1])
	if err != nil {
		return AuthUser{}, err
	}

	user := AuthUser{Email: email, Role: identity.RoleUser}

	// Роль запрашиваем у identity-провайдера; при его недоступности запрос
	// продолжается с ролью обычного пользователя
	info, err := a.identityClient.GetUserInfoWithGracefulDegradation(r.Context(), email)
	switch {
	case err == nil:
		user.Role = info.Role
		user.IsAdmin = info.IsAdmin()
	case errors.Is(err, identity.ErrUserNotFound):
		return AuthUser{}, fmt.Errorf("unknown user %s", email)
	case errors.Is(err, identity.ErrServiceDegraded):
		a.log.Warn("Auth: identity degraded, %s continues without elevated role", email)
	default:
		return AuthUser{}, err
	}

	return user, nil
}

func (a *Auth) parseToken(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	email, _ := claims["email"].(string)
	if email == "" {
		// Некоторые провайдеры кладут email в subject
		email, _ = claims["sub"].(string)
	}
	if email == "" {
		return "", errors.New("token carries no email")
	}
	return email, nil
}
