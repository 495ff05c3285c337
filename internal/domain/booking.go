package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/marrymk/marketplace-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
)

// EventType represents the kind of event a booking is made for
type EventType string

const (
	EventWedding     EventType = "wedding"
	EventBirthday    EventType = "birthday"
	EventCorporate   EventType = "corporate"
	EventAnniversary EventType = "anniversary"
	EventEngagement  EventType = "engagement"
	EventGraduation  EventType = "graduation"
	EventOther       EventType = "other"
)

// Booking represents a client's request to reserve a provider for a calendar date
type Booking struct {
	ID           uuid.UUID
	ProviderID   uuid.UUID
	ProviderSlug string // Denormalized for dashboards

	ClientName  string
	ClientPhone string
	ClientEmail *string

	EventDate      types.DateString
	EventType      EventType
	EventTypeOther *string // Required iff EventType == EventOther
	Guests         *int
	SpecialRequests *string

	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesDate returns true if the booking blocks its event date for new bookings.
// Only pending and accepted bookings occupy a date; rejected and cancelled do not.
func (b *Booking) OccupiesDate() bool {
	return b.Status == StatusPending || b.Status == StatusAccepted
}

// IsTerminal returns true if the booking is in a terminal state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusRejected || b.Status == StatusCancelled
}

// CanTransitionTo reports whether the status transition is allowed.
// pending may become accepted, rejected or cancelled; accepted may still be
// cancelled; rejected and cancelled never change again, and nothing ever
// returns to pending.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if next == b.Status {
		return false
	}
	switch b.Status {
	case StatusPending:
		return next == StatusAccepted || next == StatusRejected || next == StatusCancelled
	case StatusAccepted:
		return next == StatusCancelled
	default:
		return false
	}
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.CanTransitionTo(StatusCancelled)
}

// DateOccupied сканирует срез бронирований и возвращает true, если указанная
// календарная дата занята хотя бы одним pending/accepted бронированием.
// Чистый предикат над снимком данных: при одном и том же снимке результат
// всегда одинаков.
func DateOccupied(date types.DateString, bookings []*Booking) bool {
	for _, b := range bookings {
		if b.OccupiesDate() && b.EventDate.Equal(date) {
			return true
		}
	}
	return false
}

// DateAvailable возвращает true, если дата доступна для бронирования:
// не в прошлом (относительно календарного дня now) и не занята
// pending/accepted бронированием из снимка.
func DateAvailable(date types.DateString, now time.Time, bookings []*Booking) bool {
	if date.InPast(now) {
		return false
	}
	return !DateOccupied(date, bookings)
}

// ProviderBookingsFilter фильтр для получения бронирований провайдера
type ProviderBookingsFilter struct {
	ProviderID uuid.UUID        // Обязательный параметр
	EventDate  *types.DateString // Фильтр по дате (опционально)
	Status     *BookingStatus   // Фильтр по статусу (опционально)
	OnlyActive bool             // Только pending/accepted (занимающие дату)
}
