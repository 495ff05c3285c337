// Package i18n локализация ответов API (en/sq/mk).
// Язык запроса — явное значение в контексте запроса, без глобального
// изменяемого состояния; сохранение выбора пользователя делегировано
// PreferenceStore.
package i18n

import (
	"context"
	"errors"
)

// Locale код языка
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleSQ Locale = "sq"
	LocaleMK Locale = "mk"

	// DefaultLocale язык по умолчанию и fallback для отсутствующих переводов
	DefaultLocale = LocaleEN
)

// ErrPreferenceNotFound возвращается, когда сохранённый выбор языка отсутствует
var ErrPreferenceNotFound = errors.New("i18n: language preference not found")

// ParseLocale валидирует код языка
func ParseLocale(s string) (Locale, bool) {
	switch Locale(s) {
	case LocaleEN, LocaleSQ, LocaleMK:
		return Locale(s), true
	}
	return "", false
}

type localeContextKey struct{}

// WithLocale кладет язык запроса в контекст
func WithLocale(ctx context.Context, loc Locale) context.Context {
	return context.WithValue(ctx, localeContextKey{}, loc)
}

// FromContext возвращает язык запроса из контекста или DefaultLocale
func FromContext(ctx context.Context) Locale {
	if loc, ok := ctx.Value(localeContextKey{}).(Locale); ok {
		return loc
	}
	return DefaultLocale
}

// PreferenceStore хранилище выбора языка пользователя
type PreferenceStore interface {
	Get(ctx context.Context, subject string) (Locale, error)
	Set(ctx context.Context, subject string, loc Locale) error
}

// Bundle словарь переводов.
// Содержит только сообщения, которые отдаёт API; тексты интерфейса живут
// на клиенте.
type Bundle struct {
	messages map[Locale]map[string]string
}

// NewBundle создает bundle со встроенными словарями
func NewBundle() *Bundle {
	return &Bundle{messages: builtinMessages}
}

// T возвращает перевод по ключу для указанного языка.
// При отсутствии перевода используется английский вариант; при отсутствии
// ключа вообще — сам ключ, чтобы пропуск в словаре был виден, а не молчал.
func (b *Bundle) T(loc Locale, key string) string {
	if msgs, ok := b.messages[loc]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := b.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}
