package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/marrymk/marketplace-service/internal/domain"
	bookingRepo "github.com/marrymk/marketplace-service/internal/infra/storage/booking"
	providerRepo "github.com/marrymk/marketplace-service/internal/infra/storage/provider"
	"github.com/marrymk/marketplace-service/internal/service/bookings/models"
	"github.com/marrymk/marketplace-service/pkg/types"
)

// Actor идентификация вызывающего пользователя из auth middleware
type Actor struct {
	Email   string
	IsAdmin bool
}

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	providerRepo ProviderRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	providerRepo ProviderRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		providerRepo: providerRepo,
		logger:       logger,
	}
}

// GetProviderBookings возвращает бронирования провайдера.
// Доступно владельцу провайдера и администратору.
func (s *Service) GetProviderBookings(ctx context.Context, providerID uuid.UUID, actor Actor, req *models.GetProviderBookingsRequest) (*models.BookingListResponse, error) {
	if _, err := s.providerForActor(ctx, providerID, actor); err != nil {
		return nil, err
	}

	filter := domain.ProviderBookingsFilter{
		ProviderID: providerID,
		OnlyActive: req.OnlyActive,
	}
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetProviderBookings: invalid status=%s for provider=%s", *req.Status, providerID)
			return nil, fmt.Errorf("%w: status %q", ErrInvalidStatus, *req.Status)
		}
		filter.Status = &status
	}
	if req.EventDate != nil {
		date, err := types.NewDateStringFromString(*req.EventDate)
		if err != nil {
			return nil, fmt.Errorf("%w: eventDate %q", ErrInvalidInput, *req.EventDate)
		}
		filter.EventDate = &date
	}

	bookings, err := s.bookingRepo.GetByProviderWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProviderBookings: repository error for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: GetProviderBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProviderBookings: %d bookings for provider=%s", len(bookings), providerID)
	return models.FromDomainBookings(bookings), nil
}

// UpdateStatus переводит бронирование в новый статус по правилам жизненного
// цикла. Доступно владельцу провайдера и администратору.
func (s *Service) UpdateStatus(ctx context.Context, bookingID uuid.UUID, actor Actor, newStatus string) (*models.BookingResponse, error) {
	status, err := models.ToDomainBookingStatus(newStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}

	booking, err := s.getForActor(ctx, bookingID, actor)
	if err != nil {
		return nil, err
	}

	if !booking.CanTransitionTo(status) {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for booking=%s", booking.Status, status, bookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = status
	s.logger.Info("UpdateStatus: booking=%s -> %s by %s", bookingID, status, actor.Email)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование (pending или accepted).
// Доступно владельцу провайдера и администратору.
func (s *Service) Cancel(ctx context.Context, bookingID uuid.UUID, actor Actor) (*models.BookingResponse, error) {
	booking, err := s.getForActor(ctx, bookingID, actor)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking=%s in status %s cannot be cancelled", bookingID, booking.Status)
		return nil, fmt.Errorf("%w: status %s", ErrCannotCancel, booking.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled
	s.logger.Info("Cancel: booking=%s cancelled by %s", bookingID, actor.Email)
	return models.FromDomainBooking(booking), nil
}

// ListAll возвращает все бронирования (админ)
func (s *Service) ListAll(ctx context.Context) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBookings(bookings), nil
}

// getForActor загружает бронирование и проверяет права через провайдера
func (s *Service) getForActor(ctx context.Context, bookingID uuid.UUID, actor Actor) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("getForActor: repository error for booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: getForActor - repository error: %v", ErrInternal, err)
	}

	if _, err := s.providerForActor(ctx, booking.ProviderID, actor); err != nil {
		return nil, err
	}
	return booking, nil
}

// providerForActor проверяет, что actor владеет провайдером или является
// администратором
func (s *Service) providerForActor(ctx context.Context, providerID uuid.UUID, actor Actor) (*domain.Provider, error) {
	p, err := s.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return nil, ErrProviderNotFound
		}
		s.logger.Error("providerForActor: repository error for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: providerForActor - repository error: %v", ErrInternal, err)
	}

	if !actor.IsAdmin && !strings.EqualFold(p.OwnerEmail, actor.Email) {
		s.logger.Warn("providerForActor: access denied for %s to provider=%s", actor.Email, providerID)
		return nil, ErrAccessDenied
	}
	return p, nil
}
