package providers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/marrymk/marketplace-service/internal/domain"
	"github.com/marrymk/marketplace-service/internal/service/providers/models"
)

// slug: латиница/цифры/дефисы, без ведущих и двойных дефисов
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

const (
	maxSlugLength = 80
	maxNameLength = 200
	maxCityLength = 100
)

// validateRegisterRequest проверяет запрос на регистрацию
func validateRegisterRequest(req *models.RegisterProviderRequest) error {
	slug := strings.TrimSpace(req.Slug)
	switch {
	case slug == "":
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	case len(slug) > maxSlugLength:
		return fmt.Errorf("%w: slug exceeds %d characters", ErrInvalidInput, maxSlugLength)
	case !slugPattern.MatchString(slug):
		return fmt.Errorf("%w: slug must contain only lowercase letters, digits and hyphens", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Name.EN) == "" {
		return fmt.Errorf("%w: english name is required", ErrInvalidInput)
	}
	if len(req.Name.EN) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, maxNameLength)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone exceeds %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}
	if strings.TrimSpace(req.City) == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidInput)
	}
	if len(req.City) > maxCityLength {
		return fmt.Errorf("%w: city exceeds %d characters", ErrInvalidInput, maxCityLength)
	}

	if req.Capacity != nil && *req.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if req.PricePerEvent != nil && *req.PricePerEvent < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if domain.ProviderCategory(req.Category) == domain.CategoryService &&
		(req.ServiceType == nil || strings.TrimSpace(*req.ServiceType) == "") {
		return fmt.Errorf("%w: serviceType is required for the service category", ErrInvalidInput)
	}

	return nil
}

// validateProfile проверяет инварианты профиля после применения обновления
func validateProfile(p *domain.Provider) error {
	if strings.TrimSpace(p.Name.EN) == "" {
		return fmt.Errorf("%w: english name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.City) == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidInput)
	}
	if p.Capacity != nil && *p.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if p.PricePerEvent != nil && *p.PricePerEvent < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if p.Category == domain.CategoryService &&
		(p.ServiceType == nil || strings.TrimSpace(*p.ServiceType) == "") {
		return fmt.Errorf("%w: serviceType is required for the service category", ErrInvalidInput)
	}
	return nil
}
