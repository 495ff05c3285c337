package create_booking

import (
	"time"

	"github.com/google/uuid"

	createBooking "github.com/marrymk/marketplace-service/internal/usecase/create_booking"
	"github.com/marrymk/marketplace-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ProviderID string `json:"providerId"`

	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail *string `json:"clientEmail,omitempty"`

	EventDate       string  `json:"eventDate"` // "2026-09-15"
	EventType       string  `json:"eventType"`
	EventTypeOther  *string `json:"eventTypeOther,omitempty"`
	Guests          *int    `json:"guests,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           string `json:"id"`
	ProviderID   string `json:"providerId"`
	ProviderSlug string `json:"providerSlug"`

	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail *string `json:"clientEmail,omitempty"`

	EventDate       string  `json:"eventDate"`
	EventType       string  `json:"eventType"`
	EventTypeOther  *string `json:"eventTypeOther,omitempty"`
	Guests          *int    `json:"guests,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`

	Status  string `json:"status"`
	Message string `json:"message"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	providerID, err := uuid.Parse(r.ProviderID)
	if err != nil {
		return nil, err
	}

	eventDate, err := types.NewDateStringFromString(r.EventDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ProviderID:      providerID,
		ClientName:      r.ClientName,
		ClientPhone:     r.ClientPhone,
		ClientEmail:     r.ClientEmail,
		EventDate:       eventDate,
		EventType:       r.EventType,
		EventTypeOther:  r.EventTypeOther,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response, message string) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID.String(),
		ProviderID:      resp.ProviderID.String(),
		ProviderSlug:    resp.ProviderSlug,
		ClientName:      resp.ClientName,
		ClientPhone:     resp.ClientPhone,
		ClientEmail:     resp.ClientEmail,
		EventDate:       resp.EventDate.String(),
		EventType:       resp.EventType,
		EventTypeOther:  resp.EventTypeOther,
		Guests:          resp.Guests,
		SpecialRequests: resp.SpecialRequests,
		Status:          resp.Status,
		Message:         message,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
