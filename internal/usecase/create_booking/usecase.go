// Package create_booking публичное создание бронирования с защитой
// от двойного бронирования даты.
package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/marrymk/marketplace-service/internal/domain"
	bookingRepo "github.com/marrymk/marketplace-service/internal/infra/storage/booking"
	providerRepo "github.com/marrymk/marketplace-service/internal/infra/storage/provider"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	providerRepo ProviderRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	providerRepo ProviderRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		providerRepo: providerRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Инвариант: на пару (провайдер, дата) существует не более одного
// бронирования в статусе pending/accepted. Проверка доступности и вставка
// выполняются в сериализуемой транзакции с блокировкой строк той же даты
// (FOR UPDATE); partial unique index в БД страхует от гонки на случай
// конкурентной вставки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: provider=%s, date=%s, client=%s",
		req.ProviderID, req.EventDate, req.ClientName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата не в прошлом (сегодня — можно)
	if err := validateDate(req.EventDate, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed for %s: %v", req.EventDate, err)
		return nil, err
	}

	// 4. Получаем провайдера и проверяем, что он принимает бронирования
	provider, err := uc.providerRepo.GetByID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			uc.logger.Warn("CreateBooking: provider id=%s not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("CreateBooking: failed to get provider id=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	if !provider.IsPubliclyVisible() {
		uc.logger.Warn("CreateBooking: provider id=%s is not bookable (approved=%t, active=%t)",
			provider.ID, provider.IsApproved, provider.IsActive)
		return nil, ErrProviderNotBookable
	}

	// 5. Число гостей не превышает вместимость
	if req.Guests != nil && !provider.FitsGuests(*req.Guests) {
		uc.logger.Warn("CreateBooking: %d guests exceed capacity of provider id=%s", *req.Guests, provider.ID)
		return nil, fmt.Errorf("%w: %d guests", ErrGuestsOverCapacity, *req.Guests)
	}

	var result *domain.Booking

	// 6. Проверка занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Активные бронирования на эту дату с блокировкой (FOR UPDATE)
		filter := domain.ProviderBookingsFilter{
			ProviderID: req.ProviderID,
			EventDate:  &req.EventDate,
			OnlyActive: true,
		}

		existing, err := uc.bookingRepo.GetByProviderWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Дата занята, если есть хотя бы одно pending/accepted бронирование
		if domain.DateOccupied(req.EventDate, existing) {
			uc.logger.Warn("CreateBooking: date %s is already booked for provider=%s", req.EventDate, req.ProviderID)
			return ErrDateConflict
		}

		// 6.3. Создаем бронирование, всегда в статусе pending
		booking := &domain.Booking{
			ProviderID:   provider.ID,
			ProviderSlug: provider.Slug,

			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ClientEmail: req.ClientEmail,

			EventDate:       req.EventDate,
			EventType:       domain.EventType(req.EventType),
			EventTypeOther:  req.EventTypeOther,
			Guests:          req.Guests,
			SpecialRequests: req.SpecialRequests,

			Status: domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Нарушение partial unique index: конкурент успел занять дату.
			// Это конфликт даты, а не внутренняя ошибка.
			if errors.Is(err, bookingRepo.ErrDateConflict) {
				uc.logger.Warn("CreateBooking: concurrent booking won date %s for provider=%s", req.EventDate, req.ProviderID)
				return ErrDateConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s for provider=%s date=%s",
		result.ID, result.ProviderID, result.EventDate)

	return &Response{
		ID:              result.ID,
		ProviderID:      result.ProviderID,
		ProviderSlug:    result.ProviderSlug,
		ClientName:      result.ClientName,
		ClientPhone:     result.ClientPhone,
		ClientEmail:     result.ClientEmail,
		EventDate:       result.EventDate,
		EventType:       string(result.EventType),
		EventTypeOther:  result.EventTypeOther,
		Guests:          result.Guests,
		SpecialRequests: result.SpecialRequests,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
