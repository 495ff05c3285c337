package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marrymk/marketplace-service/internal/domain"
	bookingRepo "github.com/marrymk/marketplace-service/internal/infra/storage/booking"
	providerRepo "github.com/marrymk/marketplace-service/internal/infra/storage/provider"
	"github.com/marrymk/marketplace-service/pkg/ptr"
	"github.com/marrymk/marketplace-service/pkg/types"
)

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *b
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.bookings = append(f.bookings, &created)
	return &created, nil
}

func (f *fakeBookingRepo) GetByProviderWithFilter(_ context.Context, filter domain.ProviderBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.ProviderID != filter.ProviderID {
			continue
		}
		if filter.EventDate != nil && b.EventDate != *filter.EventDate {
			continue
		}
		if filter.OnlyActive && !b.OccupiesDate() {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type fakeProviderRepo struct {
	providers map[uuid.UUID]*domain.Provider
}

func (f *fakeProviderRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Provider, error) {
	p, ok := f.providers[id]
	if !ok {
		return nil, providerRepo.ErrProviderNotFound
	}
	return p, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 6, 10, 14, 0, 0, 0, time.UTC)

func newTestUseCase(providers []*domain.Provider, bookings []*domain.Booking) (*UseCase, *fakeBookingRepo) {
	bRepo := &fakeBookingRepo{bookings: bookings}
	pRepo := &fakeProviderRepo{providers: map[uuid.UUID]*domain.Provider{}}
	for _, p := range providers {
		pRepo.providers[p.ID] = p
	}

	uc := NewUseCase(bRepo, pRepo, fakeTxManager{}, noopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc, bRepo
}

func visibleProvider() *domain.Provider {
	return &domain.Provider{
		ID:         uuid.New(),
		Slug:       "villa-rosa",
		Category:   domain.CategoryWeddingHall,
		Capacity:   ptr.Ptr(250),
		IsActive:   true,
		IsApproved: true,
	}
}

func validRequest(providerID uuid.UUID) *Request {
	return &Request{
		ProviderID:  providerID,
		ClientName:  "Arben Hoxha",
		ClientPhone: "+389 70 123 456",
		EventDate:   types.DateString("2026-09-15"),
		EventType:   string(domain.EventWedding),
		Guests:      ptr.Ptr(180),
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	p := visibleProvider()
	uc, repo := newTestUseCase([]*domain.Provider{p}, nil)

	resp, err := uc.Execute(context.Background(), validRequest(p.ID))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, p.ID, resp.ProviderID)
	assert.Equal(t, "villa-rosa", resp.ProviderSlug)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, types.DateString("2026-09-15"), resp.EventDate)
	assert.Len(t, repo.bookings, 1)
}

func TestExecute_DateAlreadyBooked(t *testing.T) {
	p := visibleProvider()

	existing := &domain.Booking{
		ID:         uuid.New(),
		ProviderID: p.ID,
		EventDate:  types.DateString("2026-09-15"),
		Status:     domain.StatusPending,
	}

	uc, repo := newTestUseCase([]*domain.Provider{p}, []*domain.Booking{existing})

	_, err := uc.Execute(context.Background(), validRequest(p.ID))
	assert.ErrorIs(t, err, ErrDateConflict)
	assert.Len(t, repo.bookings, 1)
}

func TestExecute_TerminalBookingDoesNotBlock(t *testing.T) {
	// Отклоненные и отмененные бронирования освобождают дату
	for _, status := range []domain.BookingStatus{domain.StatusRejected, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			p := visibleProvider()
			existing := &domain.Booking{
				ID:         uuid.New(),
				ProviderID: p.ID,
				EventDate:  types.DateString("2026-09-15"),
				Status:     status,
			}

			uc, _ := newTestUseCase([]*domain.Provider{p}, []*domain.Booking{existing})

			resp, err := uc.Execute(context.Background(), validRequest(p.ID))
			require.NoError(t, err)
			assert.Equal(t, string(domain.StatusPending), resp.Status)
		})
	}
}

func TestExecute_OtherProviderSameDateDoesNotBlock(t *testing.T) {
	p := visibleProvider()
	existing := &domain.Booking{
		ID:         uuid.New(),
		ProviderID: uuid.New(), // другой провайдер
		EventDate:  types.DateString("2026-09-15"),
		Status:     domain.StatusAccepted,
	}

	uc, _ := newTestUseCase([]*domain.Provider{p}, []*domain.Booking{existing})

	_, err := uc.Execute(context.Background(), validRequest(p.ID))
	assert.NoError(t, err)
}

func TestExecute_PastDateRejected(t *testing.T) {
	p := visibleProvider()
	uc, _ := newTestUseCase([]*domain.Provider{p}, nil)

	req := validRequest(p.ID)
	req.EventDate = types.DateString("2026-06-09") // вчера относительно testNow

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TodayIsBookable(t *testing.T) {
	p := visibleProvider()
	uc, _ := newTestUseCase([]*domain.Provider{p}, nil)

	req := validRequest(p.ID)
	req.EventDate = types.DateString("2026-06-10")

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ProviderNotFound(t *testing.T) {
	uc, _ := newTestUseCase(nil, nil)

	_, err := uc.Execute(context.Background(), validRequest(uuid.New()))
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestExecute_ProviderNotBookable(t *testing.T) {
	tests := []struct {
		name     string
		approved bool
		active   bool
	}{
		{"not approved", false, true},
		{"not active", true, false},
		{"neither", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := visibleProvider()
			p.IsApproved = tt.approved
			p.IsActive = tt.active

			uc, _ := newTestUseCase([]*domain.Provider{p}, nil)

			_, err := uc.Execute(context.Background(), validRequest(p.ID))
			assert.ErrorIs(t, err, ErrProviderNotBookable)
		})
	}
}

func TestExecute_GuestsOverCapacity(t *testing.T) {
	p := visibleProvider()
	p.Capacity = ptr.Ptr(100)

	uc, _ := newTestUseCase([]*domain.Provider{p}, nil)

	req := validRequest(p.ID)
	req.Guests = ptr.Ptr(101)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrGuestsOverCapacity)
}

func TestExecute_NoCapacityLimitFitsAnyGuests(t *testing.T) {
	p := visibleProvider()
	p.Capacity = nil

	uc, _ := newTestUseCase([]*domain.Provider{p}, nil)

	req := validRequest(p.ID)
	req.Guests = ptr.Ptr(5000)

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ConcurrentInsertLosesAsConflict(t *testing.T) {
	// Гонка: между проверкой и вставкой конкурент занял дату,
	// unique index вернул нарушение. Это 409, а не 500.
	p := visibleProvider()
	uc, repo := newTestUseCase([]*domain.Provider{p}, nil)
	repo.createErr = bookingRepo.ErrDateConflict

	_, err := uc.Execute(context.Background(), validRequest(p.ID))
	assert.ErrorIs(t, err, ErrDateConflict)
}

func TestExecute_Validation(t *testing.T) {
	p := visibleProvider()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing provider id", func(r *Request) { r.ProviderID = uuid.Nil }},
		{"missing client name", func(r *Request) { r.ClientName = "  " }},
		{"missing client phone", func(r *Request) { r.ClientPhone = "" }},
		{"missing event date", func(r *Request) { r.EventDate = "" }},
		{"malformed event date", func(r *Request) { r.EventDate = "15.09.2026" }},
		{"unknown event type", func(r *Request) { r.EventType = "rave" }},
		{"other without description", func(r *Request) { r.EventType = string(domain.EventOther) }},
		{"zero guests", func(r *Request) { r.Guests = ptr.Ptr(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase([]*domain.Provider{p}, nil)

			req := validRequest(p.ID)
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RejectionFreesDate(t *testing.T) {
	// Вилла на 150 гостей, дата 2026-09-15: бронирование Аны проходит,
	// бронирование Бояна конфликтует; после отклонения первого
	// бронирование Горана снова проходит.
	p := visibleProvider()
	p.Capacity = ptr.Ptr(150)
	uc, repo := newTestUseCase([]*domain.Provider{p}, nil)

	first := validRequest(p.ID)
	first.ClientName = "Ana"
	first.Guests = ptr.Ptr(100)
	created, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), created.Status)

	second := validRequest(p.ID)
	second.ClientName = "Bojan"
	second.Guests = ptr.Ptr(80)
	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrDateConflict)

	// Провайдер отклоняет первое бронирование
	for _, b := range repo.bookings {
		if b.ID == created.ID {
			b.Status = domain.StatusRejected
		}
	}

	third := validRequest(p.ID)
	third.ClientName = "Goran"
	third.Guests = nil
	resp, err := uc.Execute(context.Background(), third)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Len(t, repo.bookings, 2)

	// Прошедшая дата не бронируется даже при свободном календаре
	stale := validRequest(p.ID)
	stale.Guests = nil
	stale.EventDate = "2026-06-09"
	_, err = uc.Execute(context.Background(), stale)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_OtherEventTypeWithDescription(t *testing.T) {
	p := visibleProvider()
	uc, _ := newTestUseCase([]*domain.Provider{p}, nil)

	req := validRequest(p.ID)
	req.EventType = string(domain.EventOther)
	req.EventTypeOther = ptr.Ptr("Family reunion")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.EventOther), resp.EventType)
}
