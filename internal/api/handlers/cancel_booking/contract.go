package cancel_booking

import (
	"context"

	"github.com/google/uuid"

	bookingsService "github.com/marrymk/marketplace-service/internal/service/bookings"
	"github.com/marrymk/marketplace-service/internal/service/bookings/models"
)

type BookingsService interface {
	Cancel(ctx context.Context, bookingID uuid.UUID, actor bookingsService.Actor) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
