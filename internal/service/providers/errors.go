package providers

import "errors"

var (
	// ErrProviderNotFound возвращается, когда провайдер не найден
	ErrProviderNotFound = errors.New("provider not found")

	// ErrSlugTaken возвращается, когда slug уже занят другим провайдером
	ErrSlugTaken = errors.New("provider slug already taken")

	// ErrOwnerHasProvider возвращается, когда у владельца уже есть провайдер
	ErrOwnerHasProvider = errors.New("owner already has a registered provider")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
