package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/marrymk/marketplace-service/pkg/types"
)

// ReservedReason reason kinds for an admin-reserved date
type ReservedReason string

const (
	ReasonCashPayment  ReservedReason = "cash_payment"
	ReasonSubscription ReservedReason = "subscription"
	ReasonMaintenance  ReservedReason = "maintenance"
	ReasonHoliday      ReservedReason = "holiday"
	ReasonPrivateEvent ReservedReason = "private_event"
	ReasonOther        ReservedReason = "other"
)

// PaymentDetails детали оффлайн-оплаты для причин cash_payment и subscription
type PaymentDetails struct {
	ClientName string
	AmountPaid *float64
}

// ReservedDate дата, вручную заблокированная оператором для провайдера.
// Информационная блокировка: защита от двойного бронирования на неё не
// распространяется, календарь клиента лишь показывает дату как занятую.
//
// Payment заполняется только для платёжных причин (cash_payment, subscription) —
// вместо плоской записи с всегда присутствующими, но обычно пустыми полями.
type ReservedDate struct {
	ID           uuid.UUID
	ProviderID   uuid.UUID
	ProviderSlug string

	Date   types.DateString
	Reason ReservedReason
	Notes  *string

	Payment *PaymentDetails

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RequiresPayment returns true if the reason kind carries payment details
func (r ReservedReason) RequiresPayment() bool {
	return r == ReasonCashPayment || r == ReasonSubscription
}

// Valid returns true for a known reason kind
func (r ReservedReason) Valid() bool {
	switch r {
	case ReasonCashPayment, ReasonSubscription, ReasonMaintenance,
		ReasonHoliday, ReasonPrivateEvent, ReasonOther:
		return true
	}
	return false
}
