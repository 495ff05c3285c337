package admin_providers

import (
	"context"

	"github.com/google/uuid"

	"github.com/marrymk/marketplace-service/internal/service/providers/models"
)

type ProvidersService interface {
	ListAll(ctx context.Context) (*models.FullProviderListResponse, error)
	SetApproval(ctx context.Context, providerID uuid.UUID, req *models.ModerationRequest) (*models.FullProviderResponse, error)
	SetActive(ctx context.Context, providerID uuid.UUID, active bool) (*models.FullProviderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
