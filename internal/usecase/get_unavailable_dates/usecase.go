// Package get_unavailable_dates публичный календарь занятости провайдера:
// даты активных бронирований плюс даты, заблокированные оператором.
package get_unavailable_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	providerRepo "github.com/marrymk/marketplace-service/internal/infra/storage/provider"
	"github.com/marrymk/marketplace-service/pkg/types"
)

// UseCase use case получения недоступных дат
type UseCase struct {
	bookingRepo  BookingRepository
	reservedRepo ReservedDateRepository
	providerRepo ProviderRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	reservedRepo ReservedDateRepository,
	providerRepo ProviderRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		reservedRepo: reservedRepo,
		providerRepo: providerRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает недоступные даты провайдера начиная с сегодняшнего дня.
// Забронированные и зарезервированные даты отдаются отдельными списками:
// первые защищены инвариантом уникальности, вторые — информационные.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetUnavailableDates: provider=%s", req.ProviderID)

	if req.ProviderID == uuid.Nil {
		return nil, fmt.Errorf("%w: providerId is required", ErrInvalidInput)
	}

	provider, err := uc.providerRepo.GetByID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			uc.logger.Warn("GetUnavailableDates: provider id=%s not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("GetUnavailableDates: failed to get provider id=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// Календарь непубличного провайдера не раскрываем
	if !provider.IsPubliclyVisible() {
		uc.logger.Warn("GetUnavailableDates: provider id=%s is not publicly visible", req.ProviderID)
		return nil, ErrProviderNotFound
	}

	// Горизонт — сегодняшний календарный день
	today := types.NewDateString(uc.timeProvider.Now()).String()

	booked, err := uc.bookingRepo.OccupiedDates(ctx, req.ProviderID, today)
	if err != nil {
		uc.logger.Error("GetUnavailableDates: failed to get occupied dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get occupied dates: %v", ErrInternal, err)
	}

	reserved, err := uc.reservedRepo.ListByProvider(ctx, req.ProviderID, today)
	if err != nil {
		uc.logger.Error("GetUnavailableDates: failed to get reserved dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get reserved dates: %v", ErrInternal, err)
	}

	resp := &Response{
		ProviderID:    req.ProviderID,
		BookedDates:   booked,
		ReservedDates: make([]ReservedDateInfo, 0, len(reserved)),
	}
	if resp.BookedDates == nil {
		resp.BookedDates = []string{}
	}
	for _, rd := range reserved {
		resp.ReservedDates = append(resp.ReservedDates, ReservedDateInfo{
			Date:   rd.Date.String(),
			Reason: string(rd.Reason),
		})
	}

	uc.logger.Info("GetUnavailableDates: provider=%s booked=%d reserved=%d",
		req.ProviderID, len(resp.BookedDates), len(resp.ReservedDates))
	return resp, nil
}
