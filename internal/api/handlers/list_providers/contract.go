package list_providers

import (
	"context"

	"github.com/marrymk/marketplace-service/internal/service/providers/models"
)

type ProvidersService interface {
	List(ctx context.Context, req *models.ListProvidersRequest) (*models.ProviderListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
