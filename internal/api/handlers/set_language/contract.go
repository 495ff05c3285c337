package set_language

import (
	"context"

	"github.com/marrymk/marketplace-service/internal/i18n"
)

type PreferenceStore interface {
	Set(ctx context.Context, subject string, loc i18n.Locale) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
