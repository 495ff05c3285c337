package get_unavailable_dates

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/marrymk/marketplace-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	OccupiedDates(ctx context.Context, providerID uuid.UUID, from string) ([]string, error)
}

// ReservedDateRepository интерфейс репозитория зарезервированных дат
type ReservedDateRepository interface {
	ListByProvider(ctx context.Context, providerID uuid.UUID, from string) ([]*domain.ReservedDate, error)
}

// ProviderRepository интерфейс репозитория провайдеров
type ProviderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
