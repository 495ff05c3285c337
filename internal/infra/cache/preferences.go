package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/marrymk/marketplace-service/internal/i18n"
)

const langPrefKeyPrefix = "lang_pref:"

// LanguagePreferences redis-реализация i18n.PreferenceStore.
// subject — email владельца провайдера из токена.
type LanguagePreferences struct {
	client keyValueStore
	ttl    time.Duration
}

// NewLanguagePreferences создает хранилище языковых предпочтений.
// ttl == 0 означает бессрочное хранение выбора.
func NewLanguagePreferences(client *Client, ttl time.Duration) *LanguagePreferences {
	return &LanguagePreferences{client: client, ttl: ttl}
}

// Get возвращает сохранённый язык пользователя
func (p *LanguagePreferences) Get(ctx context.Context, subject string) (i18n.Locale, error) {
	val, err := p.client.Get(ctx, langPrefKeyPrefix+subject)
	if err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return "", i18n.ErrPreferenceNotFound
		}
		return "", fmt.Errorf("LanguagePreferences.Get: %w", err)
	}

	loc, ok := i18n.ParseLocale(val)
	if !ok {
		// Мусор в хранилище трактуем как отсутствие выбора
		return "", i18n.ErrPreferenceNotFound
	}
	return loc, nil
}

// Set сохраняет язык пользователя
func (p *LanguagePreferences) Set(ctx context.Context, subject string, loc i18n.Locale) error {
	if err := p.client.Set(ctx, langPrefKeyPrefix+subject, string(loc), p.ttl); err != nil {
		return fmt.Errorf("LanguagePreferences.Set: %w", err)
	}
	return nil
}
