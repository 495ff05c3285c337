package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marrymk/marketplace-service/internal/i18n"
)

type fakePrefs struct {
	locales map[string]i18n.Locale
}

func (f *fakePrefs) Get(_ context.Context, subject string) (i18n.Locale, error) {
	loc, ok := f.locales[subject]
	if !ok {
		return "", i18n.ErrPreferenceNotFound
	}
	return loc, nil
}

func (f *fakePrefs) Set(_ context.Context, subject string, loc i18n.Locale) error {
	f.locales[subject] = loc
	return nil
}

func resolveLocale(t *testing.T, prefs i18n.PreferenceStore, mutate func(*http.Request)) i18n.Locale {
	t.Helper()

	var got i18n.Locale
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.FromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/providers", nil)
	mutate(req)

	NewLocale(prefs, noopLogger{}).Middleware(next).ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func withUser(r *http.Request, email string) *http.Request {
	ctx := context.WithValue(r.Context(), authUserContextKey{}, AuthUser{Email: email})
	return r.WithContext(ctx)
}

func TestLocaleMiddleware(t *testing.T) {
	prefs := &fakePrefs{locales: map[string]i18n.Locale{"user@example.com": i18n.LocaleMK}}

	t.Run("query beats everything", func(t *testing.T) {
		got := resolveLocale(t, prefs, func(r *http.Request) {
			q := r.URL.Query()
			q.Set("lang", "sq")
			r.URL.RawQuery = q.Encode()
			r.Header.Set("X-Language", "mk")
			*r = *withUser(r, "user@example.com")
		})
		assert.Equal(t, i18n.LocaleSQ, got)
	})

	t.Run("header beats stored preference", func(t *testing.T) {
		got := resolveLocale(t, prefs, func(r *http.Request) {
			r.Header.Set("X-Language", "sq")
			*r = *withUser(r, "user@example.com")
		})
		assert.Equal(t, i18n.LocaleSQ, got)
	})

	t.Run("stored preference for authenticated user", func(t *testing.T) {
		got := resolveLocale(t, prefs, func(r *http.Request) {
			*r = *withUser(r, "user@example.com")
		})
		assert.Equal(t, i18n.LocaleMK, got)
	})

	t.Run("default for anonymous request", func(t *testing.T) {
		got := resolveLocale(t, prefs, func(r *http.Request) {})
		assert.Equal(t, i18n.DefaultLocale, got)
	})

	t.Run("unknown lang value ignored", func(t *testing.T) {
		got := resolveLocale(t, prefs, func(r *http.Request) {
			q := r.URL.Query()
			q.Set("lang", "de")
			r.URL.RawQuery = q.Encode()
		})
		assert.Equal(t, i18n.DefaultLocale, got)
	})

	t.Run("no stored preference falls back to default", func(t *testing.T) {
		got := resolveLocale(t, prefs, func(r *http.Request) {
			*r = *withUser(r, "nobody@example.com")
		})
		assert.Equal(t, i18n.DefaultLocale, got)
	})
}
