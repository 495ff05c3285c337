package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/marrymk/marketplace-service/internal/domain"
	"github.com/marrymk/marketplace-service/pkg/types"
)

var (
	// ErrInvalidReason возвращается при неизвестной причине
	ErrInvalidReason = errors.New("invalid reserved date reason")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrPaymentMissing возвращается, когда платёжная причина не содержит
	// данных об оплате
	ErrPaymentMissing = errors.New("payment details are required for this reason")

	// ErrPaymentNotAllowed возвращается, когда оплата указана для
	// неплатёжной причины
	ErrPaymentNotAllowed = errors.New("payment details are not allowed for this reason")
)

// Request модели

// PaymentPayload детали оффлайн-оплаты
type PaymentPayload struct {
	ClientName string   `json:"clientName"`
	AmountPaid *float64 `json:"amountPaid,omitempty"`
}

// UpsertReservedDateRequest запрос на создание/обновление зарезервированной
// даты. Payment обязателен для причин cash_payment и subscription и запрещён
// для остальных.
type UpsertReservedDateRequest struct {
	ProviderID string          `json:"providerId"`
	Date       string          `json:"date"`
	Reason     string          `json:"reason"`
	Notes      *string         `json:"notes,omitempty"`
	Payment    *PaymentPayload `json:"payment,omitempty"`
}

// ToDomain конвертирует запрос в domain модель с валидацией варианта оплаты
func (r *UpsertReservedDateRequest) ToDomain() (*domain.ReservedDate, error) {
	providerID, err := uuid.Parse(r.ProviderID)
	if err != nil {
		return nil, errors.New("invalid providerId")
	}

	date, err := types.NewDateStringFromString(r.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	reason := domain.ReservedReason(r.Reason)
	if !reason.Valid() {
		return nil, ErrInvalidReason
	}

	var payment *domain.PaymentDetails
	if reason.RequiresPayment() {
		if r.Payment == nil || r.Payment.ClientName == "" {
			return nil, ErrPaymentMissing
		}
		payment = &domain.PaymentDetails{
			ClientName: r.Payment.ClientName,
			AmountPaid: r.Payment.AmountPaid,
		}
	} else if r.Payment != nil {
		return nil, ErrPaymentNotAllowed
	}

	return &domain.ReservedDate{
		ProviderID: providerID,
		Date:       date,
		Reason:     reason,
		Notes:      r.Notes,
		Payment:    payment,
	}, nil
}

// Response модели

// ReservedDateResponse ответ с данными зарезервированной даты
type ReservedDateResponse struct {
	ID           string          `json:"id"`
	ProviderID   string          `json:"providerId"`
	ProviderSlug string          `json:"providerSlug"`
	Date         string          `json:"date"`
	Reason       string          `json:"reason"`
	Notes        *string         `json:"notes,omitempty"`
	Payment      *PaymentPayload `json:"payment,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ReservedDateListResponse ответ со списком зарезервированных дат
type ReservedDateListResponse struct {
	ReservedDates []ReservedDateResponse `json:"reservedDates"`
	Total         int                    `json:"total"`
}

// FromDomainReservedDate конвертирует domain модель в DTO
func FromDomainReservedDate(rd *domain.ReservedDate) *ReservedDateResponse {
	if rd == nil {
		return nil
	}
	resp := &ReservedDateResponse{
		ID:           rd.ID.String(),
		ProviderID:   rd.ProviderID.String(),
		ProviderSlug: rd.ProviderSlug,
		Date:         rd.Date.String(),
		Reason:       string(rd.Reason),
		Notes:        rd.Notes,
		CreatedAt:    rd.CreatedAt,
		UpdatedAt:    rd.UpdatedAt,
	}
	if rd.Payment != nil {
		resp.Payment = &PaymentPayload{
			ClientName: rd.Payment.ClientName,
			AmountPaid: rd.Payment.AmountPaid,
		}
	}
	return resp
}

// FromDomainReservedDates конвертирует срез domain моделей в список DTO
func FromDomainReservedDates(dates []*domain.ReservedDate) *ReservedDateListResponse {
	resp := &ReservedDateListResponse{
		ReservedDates: make([]ReservedDateResponse, 0, len(dates)),
		Total:         len(dates),
	}
	for _, rd := range dates {
		resp.ReservedDates = append(resp.ReservedDates, *FromDomainReservedDate(rd))
	}
	return resp
}
