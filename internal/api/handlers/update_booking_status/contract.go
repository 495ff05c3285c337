package update_booking_status

import (
	"context"

	"github.com/google/uuid"

	bookingsService "github.com/marrymk/marketplace-service/internal/service/bookings"
	"github.com/marrymk/marketplace-service/internal/service/bookings/models"
)

type BookingsService interface {
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, actor bookingsService.Actor, newStatus string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
