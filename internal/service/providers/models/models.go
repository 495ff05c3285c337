package models

import (
	"errors"
	"time"

	"github.com/marrymk/marketplace-service/internal/domain"
)

var (
	// ErrInvalidCategory возвращается при неизвестной категории
	ErrInvalidCategory = errors.New("invalid provider category")

	// ErrInvalidCurrency возвращается при неизвестной валюте
	ErrInvalidCurrency = errors.New("invalid currency")
)

// Request модели

// LocalizedTextPayload локализованный текст в запросе/ответе.
// Английский вариант обязателен, sq/mk опциональны.
type LocalizedTextPayload struct {
	EN string `json:"en"`
	SQ string `json:"sq,omitempty"`
	MK string `json:"mk,omitempty"`
}

// ToDomain конвертирует payload в domain модель
func (t LocalizedTextPayload) ToDomain() domain.LocalizedText {
	return domain.LocalizedText{EN: t.EN, SQ: t.SQ, MK: t.MK}
}

// FromDomainLocalizedText конвертирует domain модель в payload
func FromDomainLocalizedText(t domain.LocalizedText) LocalizedTextPayload {
	return LocalizedTextPayload{EN: t.EN, SQ: t.SQ, MK: t.MK}
}

// RegisterProviderRequest запрос на регистрацию провайдера
type RegisterProviderRequest struct {
	Slug        string               `json:"slug"`
	Category    string               `json:"category"`
	ServiceType *string              `json:"serviceType,omitempty"`
	Name        LocalizedTextPayload `json:"name"`
	Description LocalizedTextPayload `json:"description"`

	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`

	Capacity      *int     `json:"capacity,omitempty"`
	PricePerEvent *float64 `json:"pricePerEvent,omitempty"`
	Currency      string   `json:"currency"`
	WorkingHours  *string  `json:"workingHours,omitempty"`

	CoverImage *string  `json:"coverImage,omitempty"`
	Images     []string `json:"images,omitempty"`
	Amenities  []string `json:"amenities,omitempty"`
}

// ToDomain конвертирует запрос в domain модель.
// Модерационные флаги здесь не заполняются: новый провайдер всегда создается
// в состоянии pending/inactive, это ответственность сервиса.
func (r *RegisterProviderRequest) ToDomain(ownerEmail string) (*domain.Provider, error) {
	category := domain.ProviderCategory(r.Category)
	if !domain.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	currency := domain.Currency(r.Currency)
	if r.Currency == "" {
		currency = domain.CurrencyEUR
	} else if !domain.ValidCurrency(currency) {
		return nil, ErrInvalidCurrency
	}

	return &domain.Provider{
		Slug:          r.Slug,
		Category:      category,
		ServiceType:   r.ServiceType,
		Name:          r.Name.ToDomain(),
		Description:   r.Description.ToDomain(),
		Phone:         r.Phone,
		Email:         r.Email,
		Address:       r.Address,
		City:          r.City,
		Capacity:      r.Capacity,
		PricePerEvent: r.PricePerEvent,
		Currency:      currency,
		WorkingHours:  r.WorkingHours,
		CoverImage:    r.CoverImage,
		Images:        r.Images,
		Amenities:     r.Amenities,
		OwnerEmail:    ownerEmail,
	}, nil
}

// UpdateProviderRequest запрос на обновление профиля провайдера.
// Slug и модерационные поля не изменяются через этот запрос.
type UpdateProviderRequest struct {
	ServiceType *string              `json:"serviceType,omitempty"`
	Name        LocalizedTextPayload `json:"name"`
	Description LocalizedTextPayload `json:"description"`

	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`

	Capacity      *int     `json:"capacity,omitempty"`
	PricePerEvent *float64 `json:"pricePerEvent,omitempty"`
	Currency      string   `json:"currency"`
	WorkingHours  *string  `json:"workingHours,omitempty"`

	CoverImage *string  `json:"coverImage,omitempty"`
	Images     []string `json:"images,omitempty"`
	Amenities  []string `json:"amenities,omitempty"`
}

// ApplyTo накладывает изменения профиля на существующую domain модель
func (r *UpdateProviderRequest) ApplyTo(p *domain.Provider) error {
	if r.Currency != "" {
		currency := domain.Currency(r.Currency)
		if !domain.ValidCurrency(currency) {
			return ErrInvalidCurrency
		}
		p.Currency = currency
	}

	p.ServiceType = r.ServiceType
	p.Name = r.Name.ToDomain()
	p.Description = r.Description.ToDomain()
	p.Phone = r.Phone
	p.Email = r.Email
	p.Address = r.Address
	p.City = r.City
	p.Capacity = r.Capacity
	p.PricePerEvent = r.PricePerEvent
	p.WorkingHours = r.WorkingHours
	p.CoverImage = r.CoverImage
	p.Images = r.Images
	p.Amenities = r.Amenities
	return nil
}

// ListProvidersRequest параметры публичного каталога
type ListProvidersRequest struct {
	Category *string `json:"category,omitempty"`
	City     *string `json:"city,omitempty"`
	Query    *string `json:"q,omitempty"`
	Lang     string  `json:"lang"`
}

// ModerationRequest запрос на одобрение/отклонение провайдера
type ModerationRequest struct {
	Approve bool    `json:"approve"`
	Reason  *string `json:"reason,omitempty"`
}

// SetActiveRequest запрос на включение/отключение провайдера
type SetActiveRequest struct {
	IsActive bool `json:"isActive"`
}

// Response модели

// ProviderResponse публичный ответ с данными провайдера.
// Локализованные поля уже разрешены в язык запроса.
type ProviderResponse struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Category    string  `json:"category"`
	ServiceType *string `json:"serviceType,omitempty"`

	Name        string `json:"name"`
	Description string `json:"description"`

	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`

	Capacity      *int     `json:"capacity,omitempty"`
	PricePerEvent *float64 `json:"pricePerEvent,omitempty"`
	Currency      string   `json:"currency"`
	WorkingHours  *string  `json:"workingHours,omitempty"`

	CoverImage *string  `json:"coverImage,omitempty"`
	Images     []string `json:"images,omitempty"`
	Amenities  []string `json:"amenities,omitempty"`
}

// FromDomainProvider конвертирует domain модель в публичный DTO,
// разрешая локализованные поля в указанный язык
func FromDomainProvider(p *domain.Provider, lang string) *ProviderResponse {
	if p == nil {
		return nil
	}
	return &ProviderResponse{
		ID:            p.ID.String(),
		Slug:          p.Slug,
		Category:      string(p.Category),
		ServiceType:   p.ServiceType,
		Name:          p.Name.In(lang),
		Description:   p.Description.In(lang),
		Phone:         p.Phone,
		Email:         p.Email,
		Address:       p.Address,
		City:          p.City,
		Capacity:      p.Capacity,
		PricePerEvent: p.PricePerEvent,
		Currency:      string(p.Currency),
		WorkingHours:  p.WorkingHours,
		CoverImage:    p.CoverImage,
		Images:        p.Images,
		Amenities:     p.Amenities,
	}
}

// ProviderListResponse ответ со списком провайдеров
type ProviderListResponse struct {
	Providers []ProviderResponse `json:"providers"`
	Total     int                `json:"total"`
}

// FullProviderResponse полный ответ для владельца и администратора:
// все языковые варианты и модерационные поля
type FullProviderResponse struct {
	ID          string               `json:"id"`
	Slug        string               `json:"slug"`
	Category    string               `json:"category"`
	ServiceType *string              `json:"serviceType,omitempty"`
	Name        LocalizedTextPayload `json:"name"`
	Description LocalizedTextPayload `json:"description"`

	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`

	Capacity      *int     `json:"capacity,omitempty"`
	PricePerEvent *float64 `json:"pricePerEvent,omitempty"`
	Currency      string   `json:"currency"`
	WorkingHours  *string  `json:"workingHours,omitempty"`

	CoverImage *string  `json:"coverImage,omitempty"`
	Images     []string `json:"images,omitempty"`
	Amenities  []string `json:"amenities,omitempty"`

	OwnerEmail      string  `json:"ownerEmail"`
	IsActive        bool    `json:"isActive"`
	IsApproved      bool    `json:"isApproved"`
	ApprovalStatus  string  `json:"approvalStatus"`
	RejectionReason *string `json:"rejectionReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainProviderFull конвертирует domain модель в полный DTO
func FromDomainProviderFull(p *domain.Provider) *FullProviderResponse {
	if p == nil {
		return nil
	}
	return &FullProviderResponse{
		ID:              p.ID.String(),
		Slug:            p.Slug,
		Category:        string(p.Category),
		ServiceType:     p.ServiceType,
		Name:            FromDomainLocalizedText(p.Name),
		Description:     FromDomainLocalizedText(p.Description),
		Phone:           p.Phone,
		Email:           p.Email,
		Address:         p.Address,
		City:            p.City,
		Capacity:        p.Capacity,
		PricePerEvent:   p.PricePerEvent,
		Currency:        string(p.Currency),
		WorkingHours:    p.WorkingHours,
		CoverImage:      p.CoverImage,
		Images:          p.Images,
		Amenities:       p.Amenities,
		OwnerEmail:      p.OwnerEmail,
		IsActive:        p.IsActive,
		IsApproved:      p.IsApproved,
		ApprovalStatus:  string(p.ApprovalStatus),
		RejectionReason: p.RejectionReason,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// FullProviderListResponse ответ со списком провайдеров для администратора
type FullProviderListResponse struct {
	Providers []FullProviderResponse `json:"providers"`
	Total     int                    `json:"total"`
}

// BookingStats статистика бронирований провайдера
type BookingStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Upcoming int `json:"upcoming"`
}

// DashboardResponse ответ кабинета провайдера
type DashboardResponse struct {
	Provider *FullProviderResponse `json:"provider"`
	Stats    BookingStats          `json:"stats"`
}
