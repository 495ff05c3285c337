package reserved_dates

import (
	"context"

	"github.com/google/uuid"

	"github.com/marrymk/marketplace-service/internal/service/reserveddates/models"
)

type ReservedDatesService interface {
	Create(ctx context.Context, req *models.UpsertReservedDateRequest) (*models.ReservedDateResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ReservedDateResponse, error)
	List(ctx context.Context, providerID *uuid.UUID) (*models.ReservedDateListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *models.UpsertReservedDateRequest) (*models.ReservedDateResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
