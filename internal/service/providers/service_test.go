package providers

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marrymk/marketplace-service/internal/domain"
	"github.com/marrymk/marketplace-service/internal/infra/cache"
	providerRepo "github.com/marrymk/marketplace-service/internal/infra/storage/provider"
	"github.com/marrymk/marketplace-service/internal/service/providers/models"
	"github.com/marrymk/marketplace-service/pkg/ptr"
)

type fakeProviderRepo struct {
	byID map[uuid.UUID]*domain.Provider
}

func newFakeProviderRepo(providers ...*domain.Provider) *fakeProviderRepo {
	f := &fakeProviderRepo{byID: map[uuid.UUID]*domain.Provider{}}
	for _, p := range providers {
		f.byID[p.ID] = p
	}
	return f
}

func (f *fakeProviderRepo) Create(_ context.Context, p *domain.Provider) (*domain.Provider, error) {
	for _, existing := range f.byID {
		if existing.Slug == p.Slug {
			return nil, providerRepo.ErrSlugTaken
		}
	}
	created := *p
	created.ID = uuid.New()
	f.byID[created.ID] = &created
	return &created, nil
}

func (f *fakeProviderRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Provider, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, providerRepo.ErrProviderNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProviderRepo) GetBySlug(_ context.Context, slug string) (*domain.Provider, error) {
	for _, p := range f.byID {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, providerRepo.ErrProviderNotFound
}

func (f *fakeProviderRepo) GetByOwnerEmail(_ context.Context, email string) (*domain.Provider, error) {
	for _, p := range f.byID {
		if strings.EqualFold(p.OwnerEmail, email) {
			copied := *p
			return &copied, nil
		}
	}
	return nil, providerRepo.ErrProviderNotFound
}

func (f *fakeProviderRepo) List(_ context.Context, filter domain.ProviderFilter) ([]*domain.Provider, error) {
	var out []*domain.Provider
	for _, p := range f.byID {
		if filter.OnlyVisible && !p.IsPubliclyVisible() {
			continue
		}
		if filter.Category != nil && p.Category != *filter.Category {
			continue
		}
		if filter.City != nil && !strings.EqualFold(p.City, *filter.City) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProviderRepo) Update(_ context.Context, p *domain.Provider) error {
	if _, ok := f.byID[p.ID]; !ok {
		return providerRepo.ErrProviderNotFound
	}
	copied := *p
	f.byID[p.ID] = &copied
	return nil
}

func (f *fakeProviderRepo) SetApproval(_ context.Context, id uuid.UUID, status domain.ApprovalStatus, approved, active bool, reason *string) error {
	p, ok := f.byID[id]
	if !ok {
		return providerRepo.ErrProviderNotFound
	}
	p.ApprovalStatus = status
	p.IsApproved = approved
	p.IsActive = active
	p.RejectionReason = reason
	return nil
}

func (f *fakeProviderRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	p, ok := f.byID[id]
	if !ok {
		return providerRepo.ErrProviderNotFound
	}
	p.IsActive = active
	return nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByProviderWithFilter(_ context.Context, filter domain.ProviderBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.ProviderID == filter.ProviderID {
			out = append(out, b)
		}
	}
	return out, nil
}

// fakeListCache кеш в памяти с подсчетом обращений
type fakeListCache struct {
	entries     map[string][]domain.Provider
	hits        int
	invalidated int
}

func newFakeListCache() *fakeListCache {
	return &fakeListCache{entries: map[string][]domain.Provider{}}
}

func (f *fakeListCache) Get(_ context.Context, key string) ([]domain.Provider, error) {
	if providers, ok := f.entries[key]; ok {
		f.hits++
		return providers, nil
	}
	return nil, cache.ErrCacheMiss
}

func (f *fakeListCache) Set(_ context.Context, key string, providers []domain.Provider) error {
	f.entries[key] = providers
	return nil
}

func (f *fakeListCache) Invalidate(_ context.Context) error {
	f.entries = map[string][]domain.Provider{}
	f.invalidated++
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(pRepo *fakeProviderRepo) (*Service, *fakeListCache) {
	listCache := newFakeListCache()
	svc := NewService(pRepo, &fakeBookingRepo{}, listCache, noopLogger{})
	return svc, listCache
}

func visibleProvider(slug, owner string) *domain.Provider {
	return &domain.Provider{
		ID:       uuid.New(),
		Slug:     slug,
		Category: domain.CategoryWeddingHall,
		Name: domain.LocalizedText{
			EN: "Villa Rosa",
			SQ: "Vila Roza",
			MK: "Вила Роза",
		},
		Phone:      "+389 70 123 456",
		City:       "Skopje",
		Currency:   domain.CurrencyEUR,
		OwnerEmail: owner,
		IsActive:   true,
		IsApproved: true,
	}
}

func registerRequest(slug string) *models.RegisterProviderRequest {
	return &models.RegisterProviderRequest{
		Slug:     slug,
		Category: string(domain.CategoryWeddingHall),
		Name:     models.LocalizedTextPayload{EN: "Villa Rosa"},
		Phone:    "+389 70 123 456",
		City:     "Skopje",
	}
}

func TestList(t *testing.T) {
	visible := visibleProvider("villa-rosa", "rosa@example.com")
	hidden := visibleProvider("pending-hall", "pending@example.com")
	hidden.IsApproved = false

	t.Run("only visible providers", func(t *testing.T) {
		svc, _ := newTestService(newFakeProviderRepo(visible, hidden))

		resp, err := svc.List(context.Background(), &models.ListProvidersRequest{Lang: "en"})
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "villa-rosa", resp.Providers[0].Slug)
	})

	t.Run("localizes names with english fallback", func(t *testing.T) {
		svc, _ := newTestService(newFakeProviderRepo(visible))

		resp, err := svc.List(context.Background(), &models.ListProvidersRequest{Lang: "mk"})
		require.NoError(t, err)
		assert.Equal(t, "Вила Роза", resp.Providers[0].Name)
		// Описание без mk-варианта откатывается на английский
		assert.Equal(t, visible.Description.EN, resp.Providers[0].Description)
	})

	t.Run("second call served from cache", func(t *testing.T) {
		svc, listCache := newTestService(newFakeProviderRepo(visible))

		_, err := svc.List(context.Background(), &models.ListProvidersRequest{Lang: "en"})
		require.NoError(t, err)
		assert.Equal(t, 0, listCache.hits)

		// Другой язык использует тот же закешированный список
		_, err = svc.List(context.Background(), &models.ListProvidersRequest{Lang: "sq"})
		require.NoError(t, err)
		assert.Equal(t, 1, listCache.hits)
	})

	t.Run("free text search matches any language", func(t *testing.T) {
		svc, _ := newTestService(newFakeProviderRepo(visible))

		for _, q := range []string{"villa", "vila roza", "вила", "skopje"} {
			resp, err := svc.List(context.Background(), &models.ListProvidersRequest{Lang: "en", Query: ptr.Ptr(q)})
			require.NoError(t, err)
			assert.Equal(t, 1, resp.Total, "query %q", q)
		}

		resp, err := svc.List(context.Background(), &models.ListProvidersRequest{Lang: "en", Query: ptr.Ptr("tirana")})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		svc, _ := newTestService(newFakeProviderRepo(visible))

		_, err := svc.List(context.Background(), &models.ListProvidersRequest{Lang: "en", Category: ptr.Ptr("bakery")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetBySlug(t *testing.T) {
	p := visibleProvider("villa-rosa", "rosa@example.com")
	svc, _ := newTestService(newFakeProviderRepo(p))

	t.Run("visible provider", func(t *testing.T) {
		resp, err := svc.GetBySlug(context.Background(), "villa-rosa", "sq")
		require.NoError(t, err)
		assert.Equal(t, "Vila Roza", resp.Name)
	})

	t.Run("hidden provider looks like not found", func(t *testing.T) {
		hidden := visibleProvider("hidden-hall", "hidden@example.com")
		hidden.IsActive = false
		svc, _ := newTestService(newFakeProviderRepo(hidden))

		_, err := svc.GetBySlug(context.Background(), "hidden-hall", "en")
		assert.ErrorIs(t, err, ErrProviderNotFound)
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, err := svc.GetBySlug(context.Background(), "no-such-hall", "en")
		assert.ErrorIs(t, err, ErrProviderNotFound)
	})
}

func TestRegister(t *testing.T) {
	t.Run("new provider starts unapproved and inactive", func(t *testing.T) {
		svc, _ := newTestService(newFakeProviderRepo())

		resp, err := svc.Register(context.Background(), "owner@example.com", registerRequest("villa-rosa"))
		require.NoError(t, err)

		assert.False(t, resp.IsActive)
		assert.False(t, resp.IsApproved)
		assert.Equal(t, string(domain.ApprovalPending), resp.ApprovalStatus)
		assert.Equal(t, "owner@example.com", resp.OwnerEmail)
	})

	t.Run("one provider per owner", func(t *testing.T) {
		existing := visibleProvider("villa-rosa", "owner@example.com")
		svc, _ := newTestService(newFakeProviderRepo(existing))

		_, err := svc.Register(context.Background(), "owner@example.com", registerRequest("second-hall"))
		assert.ErrorIs(t, err, ErrOwnerHasProvider)
	})

	t.Run("owner lookup ignores email case", func(t *testing.T) {
		existing := visibleProvider("villa-rosa", "owner@example.com")
		svc, _ := newTestService(newFakeProviderRepo(existing))

		_, err := svc.Register(context.Background(), "Owner@Example.COM", registerRequest("second-hall"))
		assert.ErrorIs(t, err, ErrOwnerHasProvider)
	})

	t.Run("slug already taken", func(t *testing.T) {
		existing := visibleProvider("villa-rosa", "other@example.com")
		svc, _ := newTestService(newFakeProviderRepo(existing))

		_, err := svc.Register(context.Background(), "owner@example.com", registerRequest("villa-rosa"))
		assert.ErrorIs(t, err, ErrSlugTaken)
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*models.RegisterProviderRequest)
		}{
			{"empty slug", func(r *models.RegisterProviderRequest) { r.Slug = "" }},
			{"uppercase slug", func(r *models.RegisterProviderRequest) { r.Slug = "Villa-Rosa" }},
			{"double hyphen slug", func(r *models.RegisterProviderRequest) { r.Slug = "villa--rosa" }},
			{"missing english name", func(r *models.RegisterProviderRequest) { r.Name = models.LocalizedTextPayload{SQ: "Vila"} }},
			{"missing phone", func(r *models.RegisterProviderRequest) { r.Phone = "" }},
			{"missing city", func(r *models.RegisterProviderRequest) { r.City = "" }},
			{"zero capacity", func(r *models.RegisterProviderRequest) { r.Capacity = ptr.Ptr(0) }},
			{"service without service type", func(r *models.RegisterProviderRequest) {
				r.Category = string(domain.CategoryService)
				r.ServiceType = nil
			}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc, _ := newTestService(newFakeProviderRepo())
				req := registerRequest("villa-rosa")
				tt.mutate(req)

				_, err := svc.Register(context.Background(), "owner@example.com", req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestUpdate(t *testing.T) {
	t.Run("owner updates profile and cache is dropped", func(t *testing.T) {
		p := visibleProvider("villa-rosa", "owner@example.com")
		repo := newFakeProviderRepo(p)
		svc, listCache := newTestService(repo)

		req := &models.UpdateProviderRequest{
			Name:  models.LocalizedTextPayload{EN: "Villa Rosa Deluxe"},
			Phone: p.Phone,
			City:  p.City,
		}

		resp, err := svc.Update(context.Background(), p.ID, Actor{Email: "owner@example.com"}, req)
		require.NoError(t, err)
		assert.Equal(t, "Villa Rosa Deluxe", resp.Name.EN)
		assert.Equal(t, 1, listCache.invalidated)
	})

	t.Run("stranger denied", func(t *testing.T) {
		p := visibleProvider("villa-rosa", "owner@example.com")
		svc, _ := newTestService(newFakeProviderRepo(p))

		_, err := svc.Update(context.Background(), p.ID, Actor{Email: "stranger@example.com"}, &models.UpdateProviderRequest{})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestSetApproval(t *testing.T) {
	t.Run("approve activates provider", func(t *testing.T) {
		p := visibleProvider("villa-rosa", "owner@example.com")
		p.IsActive = false
		p.IsApproved = false
		p.ApprovalStatus = domain.ApprovalPending

		svc, listCache := newTestService(newFakeProviderRepo(p))

		resp, err := svc.SetApproval(context.Background(), p.ID, &models.ModerationRequest{Approve: true})
		require.NoError(t, err)
		assert.True(t, resp.IsApproved)
		assert.True(t, resp.IsActive)
		assert.Equal(t, string(domain.ApprovalApproved), resp.ApprovalStatus)
		assert.Equal(t, 1, listCache.invalidated)
	})

	t.Run("reject stores reason and hides provider", func(t *testing.T) {
		p := visibleProvider("villa-rosa", "owner@example.com")
		svc, _ := newTestService(newFakeProviderRepo(p))

		resp, err := svc.SetApproval(context.Background(), p.ID, &models.ModerationRequest{
			Approve: false,
			Reason:  ptr.Ptr("incomplete profile"),
		})
		require.NoError(t, err)
		assert.False(t, resp.IsApproved)
		assert.False(t, resp.IsActive)
		assert.Equal(t, string(domain.ApprovalRejected), resp.ApprovalStatus)
		require.NotNil(t, resp.RejectionReason)
		assert.Equal(t, "incomplete profile", *resp.RejectionReason)
	})
}

func TestGetDashboard(t *testing.T) {
	p := visibleProvider("villa-rosa", "owner@example.com")

	bookings := []*domain.Booking{
		{ProviderID: p.ID, Status: domain.StatusPending, EventDate: "2099-01-01"},
		{ProviderID: p.ID, Status: domain.StatusAccepted, EventDate: "2099-02-01"},
		{ProviderID: p.ID, Status: domain.StatusRejected, EventDate: "2099-03-01"},
		{ProviderID: p.ID, Status: domain.StatusAccepted, EventDate: "2000-01-01"}, // прошедшее
	}

	listCache := newFakeListCache()
	svc := NewService(newFakeProviderRepo(p), &fakeBookingRepo{bookings: bookings}, listCache, noopLogger{})

	resp, err := svc.GetDashboard(context.Background(), "owner@example.com")
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Stats.Total)
	assert.Equal(t, 1, resp.Stats.Pending)
	assert.Equal(t, 2, resp.Stats.Accepted)
	assert.Equal(t, 1, resp.Stats.Rejected)
	assert.Equal(t, 2, resp.Stats.Upcoming)

	_, err = svc.GetDashboard(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrProviderNotFound)
}
