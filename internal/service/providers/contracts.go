package providers

import (
	"context"

	"github.com/google/uuid"

	"github.com/marrymk/marketplace-service/internal/domain"
)

// ProviderRepository интерфейс репозитория провайдеров
type ProviderRepository interface {
	Create(ctx context.Context, p *domain.Provider) (*domain.Provider, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Provider, error)
	GetByOwnerEmail(ctx context.Context, email string) (*domain.Provider, error)
	List(ctx context.Context, filter domain.ProviderFilter) ([]*domain.Provider, error)
	Update(ctx context.Context, p *domain.Provider) error
	SetApproval(ctx context.Context, id uuid.UUID, status domain.ApprovalStatus, approved, active bool, reason *string) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// BookingRepository интерфейс репозитория бронирований (для статистики дашборда)
type BookingRepository interface {
	GetByProviderWithFilter(ctx context.Context, filter domain.ProviderBookingsFilter) ([]*domain.Booking, error)
}

// ListCache кеш публичного каталога
type ListCache interface {
	Get(ctx context.Context, filterKey string) ([]domain.Provider, error)
	Set(ctx context.Context, filterKey string, providers []domain.Provider) error
	Invalidate(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
