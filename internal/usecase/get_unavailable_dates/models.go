package get_unavailable_dates

import "github.com/google/uuid"

// Request модель запроса недоступных дат провайдера
type Request struct {
	ProviderID uuid.UUID // ID провайдера
}

// ReservedDateInfo информация о дате, заблокированной оператором
type ReservedDateInfo struct {
	Date   string `json:"date"`   // "2026-09-15"
	Reason string `json:"reason"` // cash_payment, maintenance, ...
}

// Response модель ответа с недоступными датами.
// BookedDates — даты активных бронирований (защищены от двойного
// бронирования); ReservedDates — информационные блокировки оператора.
// Прошедшие даты не возвращаются.
type Response struct {
	ProviderID    uuid.UUID          `json:"providerId"`
	BookedDates   []string           `json:"bookedDates"`
	ReservedDates []ReservedDateInfo `json:"reservedDates"`
}
