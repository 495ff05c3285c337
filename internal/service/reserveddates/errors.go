package reserveddates

import "errors"

var (
	// ErrReservedDateNotFound возвращается, когда запись не найдена
	ErrReservedDateNotFound = errors.New("reserved date not found")

	// ErrProviderNotFound возвращается, когда провайдер не найден
	ErrProviderNotFound = errors.New("provider not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
