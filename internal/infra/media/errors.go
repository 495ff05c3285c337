package media

import "errors"

var (
	// ErrUnsupportedType возвращается для файлов с неподдерживаемым расширением
	ErrUnsupportedType = errors.New("media.storage: unsupported file type")

	// ErrTooLarge возвращается, когда файл превышает лимит размера
	ErrTooLarge = errors.New("media.storage: file too large")

	// ErrUpload возвращается при ошибке сохранения файла
	ErrUpload = errors.New("media.storage: failed to upload file")
)
