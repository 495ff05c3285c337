package upload_media

import "mime/multipart"

type MediaStorage interface {
	Upload(file *multipart.FileHeader, folder string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
