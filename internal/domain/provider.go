package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProviderCategory represents the kind of business a provider runs
type ProviderCategory string

const (
	CategoryWeddingHall ProviderCategory = "wedding_hall"
	CategoryService     ProviderCategory = "service"
)

// ApprovalStatus represents the moderation state of a provider
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Currency supported price currencies
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyMKD Currency = "MKD"
	CurrencyALL Currency = "ALL"
)

// LocalizedText текст на поддерживаемых языках.
// Английский вариант обязателен и служит fallback-значением.
type LocalizedText struct {
	EN string
	SQ string
	MK string
}

// In returns the text for the given language code, falling back to English
func (t LocalizedText) In(lang string) string {
	switch lang {
	case "sq":
		if t.SQ != "" {
			return t.SQ
		}
	case "mk":
		if t.MK != "" {
			return t.MK
		}
	}
	return t.EN
}

// Provider represents a venue or service business listed in the marketplace
type Provider struct {
	ID   uuid.UUID
	Slug string

	Category    ProviderCategory
	ServiceType *string // Free text for CategoryService (salon, decorator, ...)

	Name        LocalizedText
	Description LocalizedText

	Phone   string
	Email   string
	Address string
	City    string

	Capacity      *int
	PricePerEvent *float64
	Currency      Currency
	WorkingHours  *string

	CoverImage *string
	Images     []string
	Amenities  []string

	OwnerEmail string

	IsActive        bool
	IsApproved      bool
	ApprovalStatus  ApprovalStatus
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPubliclyVisible returns true if clients may see and book the provider.
// Requires both moderation approval and the active flag.
func (p *Provider) IsPubliclyVisible() bool {
	return p.IsApproved && p.IsActive
}

// FitsGuests returns true if the guest count does not exceed the provider's
// capacity. Providers without a capacity limit fit any guest count.
func (p *Provider) FitsGuests(guests int) bool {
	if p.Capacity == nil {
		return true
	}
	return guests <= *p.Capacity
}

// ProviderFilter фильтр публичного каталога провайдеров
type ProviderFilter struct {
	Category *ProviderCategory // Фильтр по категории (опционально)
	City     *string           // Фильтр по городу (опционально)
	Query    *string           // Поиск по локализованному имени/описанию/городу
	OnlyVisible bool           // Только approved && active
}
