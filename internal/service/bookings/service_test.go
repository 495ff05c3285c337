package bookings

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marrymk/marketplace-service/internal/domain"
	bookingRepo "github.com/marrymk/marketplace-service/internal/infra/storage/booking"
	providerRepo "github.com/marrymk/marketplace-service/internal/infra/storage/provider"
	"github.com/marrymk/marketplace-service/internal/service/bookings/models"
	"github.com/marrymk/marketplace-service/pkg/ptr"
	"github.com/marrymk/marketplace-service/pkg/types"
)

type fakeBookingRepo struct {
	byID map[uuid.UUID]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByProviderWithFilter(_ context.Context, filter domain.ProviderBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.byID {
		if b.ProviderID != filter.ProviderID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
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

func (f *fakeBookingRepo) ListAll(_ context.Context) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.byID {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.BookingStatus) error {
	b, ok := f.byID[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

type fakeProviderRepo struct {
	byID map[uuid.UUID]*domain.Provider
}

func (f *fakeProviderRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Provider, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, providerRepo.ErrProviderNotFound
	}
	return p, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(providers []*domain.Provider, bookings []*domain.Booking) (*Service, *fakeBookingRepo) {
	bRepo := &fakeBookingRepo{byID: map[uuid.UUID]*domain.Booking{}}
	pRepo := &fakeProviderRepo{byID: map[uuid.UUID]*domain.Provider{}}
	for _, b := range bookings {
		bRepo.byID[b.ID] = b
	}
	for _, p := range providers {
		pRepo.byID[p.ID] = p
	}
	return NewService(bRepo, pRepo, noopLogger{}), bRepo
}

func testProvider(ownerEmail string) *domain.Provider {
	return &domain.Provider{
		ID:         uuid.New(),
		Slug:       "villa-rosa",
		OwnerEmail: ownerEmail,
		IsActive:   true,
		IsApproved: true,
	}
}

func testBooking(providerID uuid.UUID, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          uuid.New(),
		ProviderID:  providerID,
		ClientName:  "Elena Stojanova",
		ClientPhone: "+389 71 555 123",
		EventDate:   types.DateString("2026-09-15"),
		EventType:   domain.EventWedding,
		Status:      status,
	}
}

func owner() Actor { return Actor{Email: "owner@example.com"} }
func admin() Actor { return Actor{Email: "admin@example.com", IsAdmin: true} }

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    domain.BookingStatus
		to      string
		wantErr error
	}{
		{domain.StatusPending, "accepted", nil},
		{domain.StatusPending, "rejected", nil},
		{domain.StatusPending, "cancelled", nil},
		{domain.StatusAccepted, "cancelled", nil},
		{domain.StatusAccepted, "rejected", ErrInvalidTransition},
		{domain.StatusAccepted, "pending", ErrInvalidTransition},
		{domain.StatusRejected, "accepted", ErrInvalidTransition},
		{domain.StatusCancelled, "pending", ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+tt.to, func(t *testing.T) {
			p := testProvider("owner@example.com")
			b := testBooking(p.ID, tt.from)
			svc, _ := newTestService([]*domain.Provider{p}, []*domain.Booking{b})

			resp, err := svc.UpdateStatus(context.Background(), b.ID, owner(), tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)
		})
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	p := testProvider("owner@example.com")
	b := testBooking(p.ID, domain.StatusPending)
	svc, _ := newTestService([]*domain.Provider{p}, []*domain.Booking{b})

	_, err := svc.UpdateStatus(context.Background(), b.ID, owner(), "approved")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_AccessControl(t *testing.T) {
	p := testProvider("owner@example.com")
	b := testBooking(p.ID, domain.StatusPending)
	svc, _ := newTestService([]*domain.Provider{p}, []*domain.Booking{b})

	// Чужой пользователь не видит бронирование
	_, err := svc.UpdateStatus(context.Background(), b.ID, Actor{Email: "stranger@example.com"}, "accepted")
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Администратор имеет доступ
	resp, err := svc.UpdateStatus(context.Background(), b.ID, admin(), "accepted")
	require.NoError(t, err)
	assert.Equal(t, "accepted", resp.Status)
}

func TestUpdateStatus_OwnerEmailCaseInsensitive(t *testing.T) {
	p := testProvider("Owner@Example.COM")
	b := testBooking(p.ID, domain.StatusPending)
	svc, _ := newTestService([]*domain.Provider{p}, []*domain.Booking{b})

	_, err := svc.UpdateStatus(context.Background(), b.ID, owner(), "accepted")
	assert.NoError(t, err)
}

func TestCancel(t *testing.T) {
	t.Run("pending booking", func(t *testing.T) {
		p := testProvider("owner@example.com")
		b := testBooking(p.ID, domain.StatusPending)
		svc, repo := newTestService([]*domain.Provider{p}, []*domain.Booking{b})

		resp, err := svc.Cancel(context.Background(), b.ID, owner())
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
		assert.Equal(t, domain.StatusCancelled, repo.byID[b.ID].Status)
	})

	t.Run("accepted booking", func(t *testing.T) {
		p := testProvider("owner@example.com")
		b := testBooking(p.ID, domain.StatusAccepted)
		svc, _ := newTestService([]*domain.Provider{p}, []*domain.Booking{b})

		_, err := svc.Cancel(context.Background(), b.ID, owner())
		assert.NoError(t, err)
	})

	t.Run("terminal booking", func(t *testing.T) {
		for _, status := range []domain.BookingStatus{domain.StatusRejected, domain.StatusCancelled} {
			p := testProvider("owner@example.com")
			b := testBooking(p.ID, status)
			svc, _ := newTestService([]*domain.Provider{p}, []*domain.Booking{b})

			_, err := svc.Cancel(context.Background(), b.ID, owner())
			assert.ErrorIs(t, err, ErrCannotCancel)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, _ := newTestService(nil, nil)

		_, err := svc.Cancel(context.Background(), uuid.New(), admin())
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestGetProviderBookings(t *testing.T) {
	p := testProvider("owner@example.com")
	pending := testBooking(p.ID, domain.StatusPending)
	rejected := testBooking(p.ID, domain.StatusRejected)
	rejected.EventDate = types.DateString("2026-10-01")

	svc, _ := newTestService([]*domain.Provider{p}, []*domain.Booking{pending, rejected})

	t.Run("all bookings", func(t *testing.T) {
		resp, err := svc.GetProviderBookings(context.Background(), p.ID, owner(), &models.GetProviderBookingsRequest{})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("only active", func(t *testing.T) {
		resp, err := svc.GetProviderBookings(context.Background(), p.ID, owner(), &models.GetProviderBookingsRequest{OnlyActive: true})
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, string(domain.StatusPending), resp.Bookings[0].Status)
	})

	t.Run("filter by status", func(t *testing.T) {
		resp, err := svc.GetProviderBookings(context.Background(), p.ID, owner(), &models.GetProviderBookingsRequest{
			Status: ptr.Ptr("rejected"),
		})
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "2026-10-01", resp.Bookings[0].EventDate)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		_, err := svc.GetProviderBookings(context.Background(), p.ID, owner(), &models.GetProviderBookingsRequest{
			Status: ptr.Ptr("done"),
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("stranger denied", func(t *testing.T) {
		_, err := svc.GetProviderBookings(context.Background(), p.ID, Actor{Email: "stranger@example.com"}, &models.GetProviderBookingsRequest{})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
