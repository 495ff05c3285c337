package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/marrymk/marketplace-service/pkg/types"
)

// Request модель публичного запроса на бронирование.
// Аутентификация не требуется: клиент идентифицируется контактными данными.
type Request struct {
	ProviderID uuid.UUID // ID провайдера

	ClientName  string  // Имя клиента
	ClientPhone string  // Телефон клиента
	ClientEmail *string // Email клиента (опционально)

	EventDate       types.DateString // Дата мероприятия ("2026-09-15")
	EventType       string           // Тип мероприятия
	EventTypeOther  *string          // Описание типа, обязателен при EventType == "other"
	Guests          *int             // Число гостей (опционально)
	SpecialRequests *string          // Пожелания (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           uuid.UUID // ID созданного бронирования
	ProviderID   uuid.UUID // ID провайдера
	ProviderSlug string    // Slug провайдера

	ClientName  string
	ClientPhone string
	ClientEmail *string

	EventDate       types.DateString
	EventType       string
	EventTypeOther  *string
	Guests          *int
	SpecialRequests *string

	Status string // Всегда "pending" для нового бронирования

	CreatedAt time.Time
	UpdatedAt time.Time
}
