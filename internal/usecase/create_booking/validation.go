package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marrymk/marketplace-service/internal/domain"
	"github.com/marrymk/marketplace-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProviderID == uuid.Nil {
		return fmt.Errorf("%w: providerId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName exceeds %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if strings.TrimSpace(req.ClientPhone) == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}
	if len(req.ClientPhone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: clientPhone exceeds %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.EventDate.IsZero() {
		return fmt.Errorf("%w: eventDate is required", ErrInvalidInput)
	}
	if err := req.EventDate.Validate(); err != nil {
		return fmt.Errorf("%w: invalid eventDate format: %v", ErrInvalidInput, err)
	}

	eventType := domain.EventType(req.EventType)
	if !domain.ValidEventType(eventType) {
		return fmt.Errorf("%w: unknown eventType %q", ErrInvalidInput, req.EventType)
	}
	if eventType == domain.EventOther &&
		(req.EventTypeOther == nil || strings.TrimSpace(*req.EventTypeOther) == "") {
		return fmt.Errorf("%w: eventTypeOther is required when eventType is other", ErrInvalidInput)
	}

	if req.Guests != nil && *req.Guests < domain.MinGuests {
		return fmt.Errorf("%w: guests must be at least %d", ErrInvalidInput, domain.MinGuests)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests exceeds %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	return nil
}

// validateDate проверяет, что дата мероприятия не в прошлом.
// Сегодняшний день бронируется.
func validateDate(date types.DateString, now time.Time) error {
	if date.InPast(now) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}
	return nil
}
