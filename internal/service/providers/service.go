package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marrymk/marketplace-service/internal/domain"
	"github.com/marrymk/marketplace-service/internal/infra/cache"
	providerRepo "github.com/marrymk/marketplace-service/internal/infra/storage/provider"
	"github.com/marrymk/marketplace-service/internal/service/providers/models"
)

// Actor идентификация вызывающего пользователя из auth middleware
type Actor struct {
	Email   string
	IsAdmin bool
}

// Service сервис для работы с провайдерами
type Service struct {
	providerRepo ProviderRepository
	bookingRepo  BookingRepository
	listCache    ListCache
	logger       Logger
}

// NewService создает новый экземпляр сервиса провайдеров
func NewService(
	providerRepo ProviderRepository,
	bookingRepo BookingRepository,
	listCache ListCache,
	logger Logger,
) *Service {
	return &Service{
		providerRepo: providerRepo,
		bookingRepo:  bookingRepo,
		listCache:    listCache,
		logger:       logger,
	}
}

// List возвращает публичный каталог провайдеров (только approved+active).
// Список до локализации кешируется по ключу фильтра; язык применяется
// при сборке ответа.
func (s *Service) List(ctx context.Context, req *models.ListProvidersRequest) (*models.ProviderListResponse, error) {
	filter := domain.ProviderFilter{OnlyVisible: true}
	if req.Category != nil {
		category := domain.ProviderCategory(*req.Category)
		if !domain.ValidCategory(category) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, *req.Category)
		}
		filter.Category = &category
	}
	filter.City = req.City
	filter.Query = req.Query

	cacheKey := listCacheKey(filter)

	if cached, err := s.listCache.Get(ctx, cacheKey); err == nil {
		s.logger.Info("List: cache hit for key=%s (%d providers)", cacheKey, len(cached))
		return buildListResponse(cached, req.Lang), nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		// Проблемы с кешем не должны ронять каталог
		s.logger.Warn("List: cache read failed for key=%s: %v", cacheKey, err)
	}

	found, err := s.providerRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	matched := filterByQuery(found, filter.Query)

	flat := make([]domain.Provider, 0, len(matched))
	for _, p := range matched {
		flat = append(flat, *p)
	}
	if err := s.listCache.Set(ctx, cacheKey, flat); err != nil {
		s.logger.Warn("List: cache write failed for key=%s: %v", cacheKey, err)
	}

	s.logger.Info("List: fetched %d providers from storage", len(flat))
	return buildListResponse(flat, req.Lang), nil
}

// GetBySlug возвращает публичные данные провайдера.
// Непубличные провайдеры (не approved или не active) отдаются как not found,
// чтобы не раскрывать существование записи.
func (s *Service) GetBySlug(ctx context.Context, slug, lang string) (*models.ProviderResponse, error) {
	p, err := s.providerRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return nil, ErrProviderNotFound
		}
		s.logger.Error("GetBySlug: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetBySlug - repository error: %v", ErrInternal, err)
	}

	if !p.IsPubliclyVisible() {
		s.logger.Warn("GetBySlug: provider slug=%s is not publicly visible", slug)
		return nil, ErrProviderNotFound
	}

	return models.FromDomainProvider(p, lang), nil
}

// GetDashboard возвращает кабинет провайдера: профиль владельца и статистику
// бронирований
func (s *Service) GetDashboard(ctx context.Context, ownerEmail string) (*models.DashboardResponse, error) {
	p, err := s.providerRepo.GetByOwnerEmail(ctx, ownerEmail)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return nil, ErrProviderNotFound
		}
		s.logger.Error("GetDashboard: repository error for owner=%s: %v", ownerEmail, err)
		return nil, fmt.Errorf("%w: GetDashboard - repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByProviderWithFilter(ctx, domain.ProviderBookingsFilter{ProviderID: p.ID})
	if err != nil {
		s.logger.Error("GetDashboard: booking repository error for provider=%s: %v", p.ID, err)
		return nil, fmt.Errorf("%w: GetDashboard - booking repository error: %v", ErrInternal, err)
	}

	return &models.DashboardResponse{
		Provider: models.FromDomainProviderFull(p),
		Stats:    buildStats(bookings, time.Now()),
	}, nil
}

// Register регистрирует нового провайдера за владельцем.
// Провайдер всегда создается в состоянии pending/inactive/unapproved,
// независимо от содержимого запроса.
func (s *Service) Register(ctx context.Context, ownerEmail string, req *models.RegisterProviderRequest) (*models.FullProviderResponse, error) {
	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("Register: validation failed for owner=%s: %v", ownerEmail, err)
		return nil, err
	}

	// Один провайдер на владельца
	if _, err := s.providerRepo.GetByOwnerEmail(ctx, ownerEmail); err == nil {
		s.logger.Warn("Register: owner=%s already has a provider", ownerEmail)
		return nil, ErrOwnerHasProvider
	} else if !errors.Is(err, providerRepo.ErrProviderNotFound) {
		s.logger.Error("Register: owner lookup failed for %s: %v", ownerEmail, err)
		return nil, fmt.Errorf("%w: Register - owner lookup: %v", ErrInternal, err)
	}

	p, err := req.ToDomain(ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	p.IsActive = false
	p.IsApproved = false
	p.ApprovalStatus = domain.ApprovalPending

	created, err := s.providerRepo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, providerRepo.ErrSlugTaken) {
			s.logger.Warn("Register: slug=%s already taken", p.Slug)
			return nil, ErrSlugTaken
		}
		s.logger.Error("Register: repository error for owner=%s: %v", ownerEmail, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: created provider id=%s slug=%s for owner=%s", created.ID, created.Slug, ownerEmail)
	return models.FromDomainProviderFull(created), nil
}

// Update обновляет профиль провайдера.
// Разрешено владельцу и администратору; модерационные флаги и slug через
// этот метод не изменяются.
func (s *Service) Update(ctx context.Context, providerID uuid.UUID, actor Actor, req *models.UpdateProviderRequest) (*models.FullProviderResponse, error) {
	p, err := s.getForActor(ctx, providerID, actor)
	if err != nil {
		return nil, err
	}

	if err := req.ApplyTo(p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateProfile(p); err != nil {
		return nil, err
	}

	if err := s.providerRepo.Update(ctx, p); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return nil, ErrProviderNotFound
		}
		s.logger.Error("Update: repository error for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx)

	updated, err := s.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		s.logger.Error("Update: re-read failed for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: Update - re-read: %v", ErrInternal, err)
	}

	s.logger.Info("Update: provider id=%s updated by %s", providerID, actor.Email)
	return models.FromDomainProviderFull(updated), nil
}

// GetForOwner возвращает полные данные провайдера владельцу или администратору
func (s *Service) GetForOwner(ctx context.Context, providerID uuid.UUID, actor Actor) (*models.FullProviderResponse, error) {
	p, err := s.getForActor(ctx, providerID, actor)
	if err != nil {
		return nil, err
	}
	return models.FromDomainProviderFull(p), nil
}

// ListAll возвращает всех провайдеров независимо от статуса (админ)
func (s *Service) ListAll(ctx context.Context) (*models.FullProviderListResponse, error) {
	found, err := s.providerRepo.List(ctx, domain.ProviderFilter{})
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	resp := &models.FullProviderListResponse{
		Providers: make([]models.FullProviderResponse, 0, len(found)),
		Total:     len(found),
	}
	for _, p := range found {
		resp.Providers = append(resp.Providers, *models.FromDomainProviderFull(p))
	}
	return resp, nil
}

// SetApproval проводит модерационное решение (админ).
// Одобрение делает провайдера approved+active; отклонение снимает оба флага
// и сохраняет причину.
func (s *Service) SetApproval(ctx context.Context, providerID uuid.UUID, req *models.ModerationRequest) (*models.FullProviderResponse, error) {
	var (
		status   domain.ApprovalStatus
		approved bool
		active   bool
		reason   *string
	)
	if req.Approve {
		status, approved, active = domain.ApprovalApproved, true, true
	} else {
		status, approved, active = domain.ApprovalRejected, false, false
		reason = req.Reason
	}

	if err := s.providerRepo.SetApproval(ctx, providerID, status, approved, active, reason); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return nil, ErrProviderNotFound
		}
		s.logger.Error("SetApproval: repository error for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: SetApproval - repository error: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx)

	p, err := s.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		s.logger.Error("SetApproval: re-read failed for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: SetApproval - re-read: %v", ErrInternal, err)
	}

	s.logger.Info("SetApproval: provider id=%s -> %s", providerID, status)
	return models.FromDomainProviderFull(p), nil
}

// SetActive включает/отключает провайдера (админ)
func (s *Service) SetActive(ctx context.Context, providerID uuid.UUID, active bool) (*models.FullProviderResponse, error) {
	if err := s.providerRepo.SetActive(ctx, providerID, active); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return nil, ErrProviderNotFound
		}
		s.logger.Error("SetActive: repository error for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx)

	p, err := s.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		s.logger.Error("SetActive: re-read failed for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: SetActive - re-read: %v", ErrInternal, err)
	}

	s.logger.Info("SetActive: provider id=%s active=%t", providerID, active)
	return models.FromDomainProviderFull(p), nil
}

// getForActor загружает провайдера и проверяет права:
// владелец (по email) или администратор
func (s *Service) getForActor(ctx context.Context, providerID uuid.UUID, actor Actor) (*domain.Provider, error) {
	p, err := s.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return nil, ErrProviderNotFound
		}
		s.logger.Error("getForActor: repository error for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: getForActor - repository error: %v", ErrInternal, err)
	}

	if !actor.IsAdmin && !strings.EqualFold(p.OwnerEmail, actor.Email) {
		s.logger.Warn("getForActor: access denied for %s to provider=%s", actor.Email, providerID)
		return nil, ErrAccessDenied
	}
	return p, nil
}

func (s *Service) invalidateCache(ctx context.Context) {
	if err := s.listCache.Invalidate(ctx); err != nil {
		s.logger.Warn("invalidateCache: %v", err)
	}
}

// buildStats агрегирует статистику бронирований для дашборда
func buildStats(bookings []*domain.Booking, now time.Time) models.BookingStats {
	stats := models.BookingStats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusAccepted:
			stats.Accepted++
		case domain.StatusRejected:
			stats.Rejected++
		}
		if b.OccupiesDate() && !b.EventDate.InPast(now) {
			stats.Upcoming++
		}
	}
	return stats
}

// filterByQuery применяет свободный поиск по локализованным полям.
// SQL-слой по свободному тексту не фильтрует: поиск должен находить
// совпадения в любом из языков с учетом fallback на английский.
func filterByQuery(found []*domain.Provider, query *string) []*domain.Provider {
	if query == nil || strings.TrimSpace(*query) == "" {
		return found
	}
	q := strings.ToLower(strings.TrimSpace(*query))

	matched := make([]*domain.Provider, 0, len(found))
	for _, p := range found {
		if providerMatches(p, q) {
			matched = append(matched, p)
		}
	}
	return matched
}

func providerMatches(p *domain.Provider, q string) bool {
	haystacks := []string{
		p.Name.EN, p.Name.SQ, p.Name.MK,
		p.Description.EN, p.Description.SQ, p.Description.MK,
		p.City,
	}
	for _, h := range haystacks {
		if h != "" && strings.Contains(strings.ToLower(h), q) {
			return true
		}
	}
	return false
}

func buildListResponse(providers []domain.Provider, lang string) *models.ProviderListResponse {
	resp := &models.ProviderListResponse{
		Providers: make([]models.ProviderResponse, 0, len(providers)),
		Total:     len(providers),
	}
	for i := range providers {
		resp.Providers = append(resp.Providers, *models.FromDomainProvider(&providers[i], lang))
	}
	return resp
}

// listCacheKey собирает ключ кеша из фильтра (язык в ключ не входит,
// кешируется долокализационный список)
func listCacheKey(filter domain.ProviderFilter) string {
	category, city, query := "", "", ""
	if filter.Category != nil {
		category = string(*filter.Category)
	}
	if filter.City != nil {
		city = strings.ToLower(*filter.City)
	}
	if filter.Query != nil {
		query = strings.ToLower(strings.TrimSpace(*filter.Query))
	}
	return fmt.Sprintf("%s|%s|%s", category, city, query)
}
