package reserveddate

import "errors"

var (
	// ErrReservedDateNotFound возвращается, когда запись не найдена
	ErrReservedDateNotFound = errors.New("reserveddate.repository: reserved date not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reserveddate.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reserveddate.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reserveddate.repository: failed to scan row")
)
