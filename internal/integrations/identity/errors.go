package identity

import "errors"

var (
	// ErrUserNotFound возвращается, когда identity-провайдер не знает пользователя
	ErrUserNotFound = errors.New("user not found in identity provider")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("identity client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Указывает, что identity-провайдер недоступен: запрос можно обслужить
	// без ролей (как обычного пользователя), но не как администратора.
	ErrServiceDegraded = errors.New("identity provider unavailable: graceful degradation applied")
)
