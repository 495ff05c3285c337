package get_provider

import (
	"context"

	"github.com/marrymk/marketplace-service/internal/service/providers/models"
)

type ProvidersService interface {
	GetBySlug(ctx context.Context, slug, lang string) (*models.ProviderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
