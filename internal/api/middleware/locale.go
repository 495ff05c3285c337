package middleware

import (
	"errors"
	"net/http"

	"github.com/marrymk/marketplace-service/internal/i18n"
)

// Locale разрешает язык запроса и кладет его в контекст.
// Приоритет: query `lang` > заголовок X-Language > сохранённое предпочтение
// аутентифицированного пользователя > язык по умолчанию.
//
// Язык — свойство запроса, а не процесса: никакого глобального изменяемого
// состояния здесь нет.
type Locale struct {
	prefs i18n.PreferenceStore
	log   Logger
}

// NewLocale создает locale middleware
func NewLocale(prefs i18n.PreferenceStore, log Logger) *Locale {
	return &Locale{prefs: prefs, log: log}
}

// Middleware разрешает язык запроса
func (l *Locale) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc := l.resolve(r)
		ctx := i18n.WithLocale(r.Context(), loc)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (l *Locale) resolve(r *http.Request) i18n.Locale {
	if loc, ok := i18n.ParseLocale(r.URL.Query().Get("lang")); ok {
		return loc
	}

	if loc, ok := i18n.ParseLocale(r.Header.Get("X-Language")); ok {
		return loc
	}

	// Для аутентифицированных запросов учитываем сохранённый выбор.
	// Работает только когда Locale стоит после Auth в цепочке.
	if user, ok := UserFromContext(r.Context()); ok && l.prefs != nil {
		loc, err := l.prefs.Get(r.Context(), user.Email)
		switch {
		case err == nil:
			return loc
		case !errors.Is(err, i18n.ErrPreferenceNotFound):
			l.log.Warn("Locale: preference lookup failed for %s: %v", user.Email, err)
		}
	}

	return i18n.DefaultLocale
}
