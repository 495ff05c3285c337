// Package identity клиент hosted identity-провайдера.
// Токены проверяются локально по секрету; роль пользователя в токен не входит
// и запрашивается у провайдера отдельным вызовом.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент identity-провайдера
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetUserInfo получает профиль пользователя по email
func (c *Client) GetUserInfo(ctx context.Context, email string) (*UserInfo, error) {
	reqURL := fmt.Sprintf("%s/internal/users/%s", c.baseURL, url.PathEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrUserNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &info, nil
}

// GetUserInfoWithGracefulDegradation получает профиль с graceful degradation.
// При недоступности провайдера возвращает ErrServiceDegraded: запрос можно
// продолжить с ролью обычного пользователя, но админские операции должны
// быть отклонены.
func (c *Client) GetUserInfoWithGracefulDegradation(ctx context.Context, email string) (*UserInfo, error) {
	info, err := c.GetUserInfo(ctx, email)
	if err != nil {
		// Неизвестный пользователь — бизнес-ошибка, пробрасываем дальше
		if errors.Is(err, ErrUserNotFound) {
			c.log.Info("Identity provider has no record for %s", email)
			return nil, err
		}

		// Недоступность сервиса, timeout, ошибки парсинга — деградируем
		c.log.Error("Identity provider unavailable, applying graceful degradation for %s: %v", email, err)
		return nil, fmt.Errorf("%w: email=%s, error=%v", ErrServiceDegraded, email, err)
	}

	return info, nil
}
