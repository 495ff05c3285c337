// Package reserveddates админские блокировки дат (оффлайн-оплаты, техработы,
// праздники). Блокировка информационная: защита от двойного бронирования
// на эти записи не распространяется.
package reserveddates

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/marrymk/marketplace-service/internal/domain"
	providerRepo "github.com/marrymk/marketplace-service/internal/infra/storage/provider"
	rdRepo "github.com/marrymk/marketplace-service/internal/infra/storage/reserveddate"
	"github.com/marrymk/marketplace-service/internal/service/reserveddates/models"
)

// Service сервис зарезервированных дат
type Service struct {
	reservedRepo ReservedDateRepository
	providerRepo ProviderRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	reservedRepo ReservedDateRepository,
	providerRepo ProviderRepository,
	logger Logger,
) *Service {
	return &Service{
		reservedRepo: reservedRepo,
		providerRepo: providerRepo,
		logger:       logger,
	}
}

// Create создает зарезервированную дату для провайдера
func (s *Service) Create(ctx context.Context, req *models.UpsertReservedDateRequest) (*models.ReservedDateResponse, error) {
	rd, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	p, err := s.providerRepo.GetByID(ctx, rd.ProviderID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return nil, ErrProviderNotFound
		}
		s.logger.Error("Create: provider lookup failed for %s: %v", rd.ProviderID, err)
		return nil, fmt.Errorf("%w: Create - provider lookup: %v", ErrInternal, err)
	}
	rd.ProviderSlug = p.Slug

	created, err := s.reservedRepo.Create(ctx, rd)
	if err != nil {
		s.logger.Error("Create: repository error for provider=%s date=%s: %v", rd.ProviderID, rd.Date, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: reserved date id=%s provider=%s date=%s reason=%s", created.ID, created.ProviderID, created.Date, created.Reason)
	return models.FromDomainReservedDate(created), nil
}

// GetByID возвращает зарезервированную дату
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ReservedDateResponse, error) {
	rd, err := s.reservedRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rdRepo.ErrReservedDateNotFound) {
			return nil, ErrReservedDateNotFound
		}
		s.logger.Error("GetByID: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReservedDate(rd), nil
}

// List возвращает зарезервированные даты: все или по провайдеру
func (s *Service) List(ctx context.Context, providerID *uuid.UUID) (*models.ReservedDateListResponse, error) {
	var (
		dates []*domain.ReservedDate
		err   error
	)
	if providerID != nil {
		dates, err = s.reservedRepo.ListByProvider(ctx, *providerID, "")
	} else {
		dates, err = s.reservedRepo.ListAll(ctx)
	}
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReservedDates(dates), nil
}

// Update обновляет зарезервированную дату
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpsertReservedDateRequest) (*models.ReservedDateResponse, error) {
	existing, err := s.reservedRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rdRepo.ErrReservedDateNotFound) {
			return nil, ErrReservedDateNotFound
		}
		s.logger.Error("Update: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	rd, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Update: validation failed for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Запись не переносится между провайдерами
	if rd.ProviderID != existing.ProviderID {
		return nil, fmt.Errorf("%w: providerId cannot be changed", ErrInvalidInput)
	}

	rd.ID = id
	rd.ProviderSlug = existing.ProviderSlug

	if err := s.reservedRepo.Update(ctx, rd); err != nil {
		if errors.Is(err, rdRepo.ErrReservedDateNotFound) {
			return nil, ErrReservedDateNotFound
		}
		s.logger.Error("Update: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.reservedRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: re-read failed for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - re-read: %v", ErrInternal, err)
	}

	s.logger.Info("Update: reserved date id=%s updated", id)
	return models.FromDomainReservedDate(updated), nil
}

// Delete удаляет зарезервированную дату
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.reservedRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, rdRepo.ErrReservedDateNotFound) {
			return ErrReservedDateNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: reserved date id=%s removed", id)
	return nil
}
