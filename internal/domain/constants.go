package domain

// Business validation constants
const (
	MaxClientNameLength      = 120
	MaxPhoneLength           = 32
	MaxSpecialRequestsLength = 1000
	MaxNotesLength           = 500
	MaxRejectionReasonLength = 500
	MinGuests                = 1
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses статусы бронирований, занимающих дату.
// Используется при проверке конфликтов и в partial unique index в БД.
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusAccepted,
}

// TerminalStatuses статусы, из которых бронирование больше не меняется
var TerminalStatuses = []BookingStatus{
	StatusRejected,
	StatusCancelled,
}

// ValidBookingStatus возвращает true для известного статуса бронирования
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// ValidEventType возвращает true для известного типа мероприятия
func ValidEventType(t EventType) bool {
	switch t {
	case EventWedding, EventBirthday, EventCorporate, EventAnniversary,
		EventEngagement, EventGraduation, EventOther:
		return true
	}
	return false
}

// ValidCategory возвращает true для известной категории провайдера
func ValidCategory(c ProviderCategory) bool {
	return c == CategoryWeddingHall || c == CategoryService
}

// ValidCurrency возвращает true для поддерживаемой валюты
func ValidCurrency(c Currency) bool {
	return c == CurrencyEUR || c == CurrencyMKD || c == CurrencyALL
}
