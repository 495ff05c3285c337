package update_provider

import (
	"context"

	"github.com/google/uuid"

	providersService "github.com/marrymk/marketplace-service/internal/service/providers"
	"github.com/marrymk/marketplace-service/internal/service/providers/models"
)

type ProvidersService interface {
	Update(ctx context.Context, providerID uuid.UUID, actor providersService.Actor, req *models.UpdateProviderRequest) (*models.FullProviderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
