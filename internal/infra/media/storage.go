// Package media хранилище загружаемых изображений (обложки и галереи провайдеров).
// Основной backend — S3; при отсутствии AWS-креденшелов используется локальная
// директория (вариант для разработки, не для production).
package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config настройки хранилища медиафайлов
type Config struct {
	S3Bucket       string
	S3Region       string
	AWSAccessKeyID string
	AWSSecretKey   string
	LocalDir       string
	BaseURL        string
	MaxUploadBytes int64
}

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// Storage хранилище изображений
type Storage struct {
	cfg      Config
	uploader *s3manager.Uploader
	useS3    bool
	log      Logger
}

// NewStorage создает хранилище. S3 включается только при полном наборе
// AWS-настроек; иначе файлы пишутся в локальную директорию.
func NewStorage(cfg Config, log Logger) (*Storage, error) {
	s := &Storage{cfg: cfg, log: log}

	if cfg.S3Bucket != "" && cfg.S3Region != "" && cfg.AWSAccessKeyID != "" && cfg.AWSSecretKey != "" {
		sess, err := session.NewSession(&aws.Config{
			Region:      aws.String(cfg.S3Region),
			Credentials: credentials.NewStaticCredentials(cfg.AWSAccessKeyID, cfg.AWSSecretKey, ""),
		})
		if err != nil {
			return nil, fmt.Errorf("%w: failed to create AWS session: %v", ErrUpload, err)
		}
		s.uploader = s3manager.NewUploader(sess)
		s.useS3 = true
		log.Info("Media storage: using S3 bucket %s (%s)", cfg.S3Bucket, cfg.S3Region)
		return s, nil
	}

	if err := os.MkdirAll(filepath.Join(cfg.LocalDir, "providers"), 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create upload directory: %v", ErrUpload, err)
	}
	log.Warn("Media storage: S3 not configured, using local directory %s", cfg.LocalDir)
	return s, nil
}

// Upload сохраняет изображение и возвращает его публичный URL.
// Имя файла генерируется заново (uuid), оригинальное имя не используется.
func (s *Storage) Upload(file *multipart.FileHeader, folder string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}

	if s.cfg.MaxUploadBytes > 0 && file.Size > s.cfg.MaxUploadBytes {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, file.Size, s.cfg.MaxUploadBytes)
	}

	name := fmt.Sprintf("%s/%d-%s%s", folder, time.Now().Unix(), uuid.NewString(), ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: failed to open uploaded file: %v", ErrUpload, err)
	}
	defer src.Close()

	if s.useS3 {
		return s.uploadToS3(name, ext, src)
	}
	return s.uploadToLocal(name, src)
}

func (s *Storage) uploadToS3(name, ext string, src io.Reader) (string, error) {
	result, err := s.uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(s.cfg.S3Bucket),
		Key:         aws.String(name),
		Body:        src,
		ContentType: aws.String(contentTypeFor(ext)),
	})
	if err != nil {
		return "", fmt.Errorf("%w: s3 upload: %v", ErrUpload, err)
	}

	s.log.Info("Media storage: uploaded %s to S3", name)
	return result.Location, nil
}

func (s *Storage) uploadToLocal(name string, src io.Reader) (string, error) {
	path := filepath.Join(s.cfg.LocalDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("%w: create directory: %v", ErrUpload, err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: create file: %v", ErrUpload, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("%w: write file: %v", ErrUpload, err)
	}

	s.log.Info("Media storage: saved %s locally", name)
	return fmt.Sprintf("%s/uploads/%s", strings.TrimRight(s.cfg.BaseURL, "/"), name), nil
}

func contentTypeFor(ext string) string {
	switch ext {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
