package get_unavailable_dates

import "errors"

var (
	// ErrProviderNotFound возвращается, когда провайдер не найден или скрыт
	ErrProviderNotFound = errors.New("get_unavailable_dates: provider not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_unavailable_dates: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_unavailable_dates: internal error")
)
