package reserveddates

import (
	"context"

	"github.com/google/uuid"

	"github.com/marrymk/marketplace-service/internal/domain"
)

// ReservedDateRepository интерфейс репозитория зарезервированных дат
type ReservedDateRepository interface {
	Create(ctx context.Context, rd *domain.ReservedDate) (*domain.ReservedDate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReservedDate, error)
	ListAll(ctx context.Context) ([]*domain.ReservedDate, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID, from string) ([]*domain.ReservedDate, error)
	Update(ctx context.Context, rd *domain.ReservedDate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProviderRepository интерфейс репозитория провайдеров
type ProviderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
