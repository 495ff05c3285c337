package get_provider_bookings

import (
	"context"

	"github.com/google/uuid"

	bookingsService "github.com/marrymk/marketplace-service/internal/service/bookings"
	"github.com/marrymk/marketplace-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetProviderBookings(ctx context.Context, providerID uuid.UUID, actor bookingsService.Actor, req *models.GetProviderBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
