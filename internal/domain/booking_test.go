package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/marrymk/marketplace-service/pkg/types"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusPending, false},
		{StatusAccepted, StatusCancelled, true},
		{StatusAccepted, StatusPending, false},
		{StatusAccepted, StatusRejected, false},
		{StatusRejected, StatusPending, false},
		{StatusRejected, StatusAccepted, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusAccepted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.allowed, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_OccupiesDate(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).OccupiesDate())
	assert.True(t, (&Booking{Status: StatusAccepted}).OccupiesDate())
	assert.False(t, (&Booking{Status: StatusRejected}).OccupiesDate())
	assert.False(t, (&Booking{Status: StatusCancelled}).OccupiesDate())
}

func TestDateAvailable(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	date := types.DateString("2025-06-14")

	bookingOn := func(d string, status BookingStatus) *Booking {
		return &Booking{EventDate: types.DateString(d), Status: status}
	}

	t.Run("free date is available", func(t *testing.T) {
		assert.True(t, DateAvailable(date, now, nil))
	})

	t.Run("pending booking occupies the date", func(t *testing.T) {
		bookings := []*Booking{bookingOn("2025-06-14", StatusPending)}
		assert.False(t, DateAvailable(date, now, bookings))
	})

	t.Run("accepted booking occupies the date", func(t *testing.T) {
		bookings := []*Booking{bookingOn("2025-06-14", StatusAccepted)}
		assert.False(t, DateAvailable(date, now, bookings))
	})

	t.Run("rejected and cancelled bookings do not block", func(t *testing.T) {
		bookings := []*Booking{
			bookingOn("2025-06-14", StatusRejected),
			bookingOn("2025-06-14", StatusCancelled),
		}
		assert.True(t, DateAvailable(date, now, bookings))
	})

	t.Run("booking on another date does not block", func(t *testing.T) {
		bookings := []*Booking{bookingOn("2025-06-15", StatusAccepted)}
		assert.True(t, DateAvailable(date, now, bookings))
	})

	t.Run("past dates are never available", func(t *testing.T) {
		assert.False(t, DateAvailable(types.DateString("2025-06-09"), now, nil))
		// Даже при полностью свободном календаре
		assert.False(t, DateAvailable(types.DateString("2024-01-01"), now, nil))
	})

	t.Run("today is available", func(t *testing.T) {
		assert.True(t, DateAvailable(types.DateString("2025-06-10"), now, nil))
	})

	t.Run("pure predicate, same snapshot same answer", func(t *testing.T) {
		bookings := []*Booking{bookingOn("2025-06-14", StatusPending)}
		first := DateAvailable(date, now, bookings)
		second := DateAvailable(date, now, bookings)
		assert.Equal(t, first, second)
	})
}

func TestProvider_FitsGuests(t *testing.T) {
	capacity := 150
	withCap := &Provider{Capacity: &capacity}
	noCap := &Provider{}

	assert.True(t, withCap.FitsGuests(150))
	assert.True(t, withCap.FitsGuests(100))
	assert.False(t, withCap.FitsGuests(151))
	assert.True(t, noCap.FitsGuests(100000))
}

func TestProvider_IsPubliclyVisible(t *testing.T) {
	assert.True(t, (&Provider{IsApproved: true, IsActive: true}).IsPubliclyVisible())
	assert.False(t, (&Provider{IsApproved: true, IsActive: false}).IsPubliclyVisible())
	assert.False(t, (&Provider{IsApproved: false, IsActive: true}).IsPubliclyVisible())
	assert.False(t, (&Provider{}).IsPubliclyVisible())
}

func TestLocalizedText_In(t *testing.T) {
	full := LocalizedText{EN: "Villa Rosa", SQ: "Vila Rosa", MK: "Вила Роза"}
	enOnly := LocalizedText{EN: "Villa Rosa"}

	assert.Equal(t, "Vila Rosa", full.In("sq"))
	assert.Equal(t, "Вила Роза", full.In("mk"))
	assert.Equal(t, "Villa Rosa", full.In("en"))
	// Fallback на английский при отсутствии перевода
	assert.Equal(t, "Villa Rosa", enOnly.In("sq"))
	assert.Equal(t, "Villa Rosa", enOnly.In("mk"))
	assert.Equal(t, "Villa Rosa", enOnly.In("unknown"))
}

func TestReservedReason(t *testing.T) {
	assert.True(t, ReasonCashPayment.RequiresPayment())
	assert.True(t, ReasonSubscription.RequiresPayment())
	assert.False(t, ReasonMaintenance.RequiresPayment())
	assert.False(t, ReasonHoliday.RequiresPayment())

	assert.True(t, ReasonPrivateEvent.Valid())
	assert.False(t, ReservedReason("weekend").Valid())
}
