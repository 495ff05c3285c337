package create_booking

import "errors"

var (
	// ErrProviderNotFound возвращается, когда провайдер не найден или скрыт
	ErrProviderNotFound = errors.New("create_booking: provider not found")

	// ErrProviderNotBookable возвращается, когда провайдер не принимает
	// бронирования (не одобрен или отключен)
	ErrProviderNotBookable = errors.New("create_booking: provider is not accepting bookings")

	// ErrInvalidDate возвращается при некорректной или прошедшей дате
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateConflict возвращается, когда дата уже занята активным бронированием
	ErrDateConflict = errors.New("create_booking: date is already booked")

	// ErrGuestsOverCapacity возвращается, когда число гостей превышает
	// вместимость провайдера
	ErrGuestsOverCapacity = errors.New("create_booking: guest count exceeds provider capacity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
