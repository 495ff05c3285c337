package register_provider

import (
	"context"

	"github.com/marrymk/marketplace-service/internal/service/providers/models"
)

type ProvidersService interface {
	Register(ctx context.Context, ownerEmail string, req *models.RegisterProviderRequest) (*models.FullProviderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
