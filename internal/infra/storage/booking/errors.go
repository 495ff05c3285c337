package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDateConflict возвращается при нарушении partial unique index
	// по (service_provider_id, event_date) для статусов pending/accepted.
	// Страховка на уровне хранилища: срабатывает, только если две
	// конкурирующие записи прошли проверку доступности одновременно.
	ErrDateConflict = errors.New("booking.repository: date already booked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
