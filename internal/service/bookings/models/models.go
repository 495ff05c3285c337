package models

import (
	"errors"
	"time"

	"github.com/marrymk/marketplace-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetProviderBookingsRequest запрос бронирований провайдера
type GetProviderBookingsRequest struct {
	Status     *string `json:"status,omitempty"`
	EventDate  *string `json:"eventDate,omitempty"`
	OnlyActive bool    `json:"onlyActive,omitempty"`
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.ValidBookingStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string `json:"id"`
	ProviderID   string `json:"providerId"`
	ProviderSlug string `json:"providerSlug"`

	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail *string `json:"clientEmail,omitempty"`

	EventDate       string  `json:"eventDate"` // "2026-09-15"
	EventType       string  `json:"eventType"`
	EventTypeOther  *string `json:"eventTypeOther,omitempty"`
	Guests          *int    `json:"guests,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`

	Status string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		ID:              b.ID.String(),
		ProviderID:      b.ProviderID.String(),
		ProviderSlug:    b.ProviderSlug,
		ClientName:      b.ClientName,
		ClientPhone:     b.ClientPhone,
		ClientEmail:     b.ClientEmail,
		EventDate:       b.EventDate.String(),
		EventType:       string(b.EventType),
		EventTypeOther:  b.EventTypeOther,
		Guests:          b.Guests,
		SpecialRequests: b.SpecialRequests,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookings конвертирует срез domain моделей в список DTO
func FromDomainBookings(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}
