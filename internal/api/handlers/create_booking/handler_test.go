package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marrymk/marketplace-service/internal/i18n"
	createBooking "github.com/marrymk/marketplace-service/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	resp := *f.resp
	resp.ProviderID = req.ProviderID
	resp.EventDate = req.EventDate
	return &resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc CreateBookingUseCase, body interface{}, loc i18n.Locale) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, i18n.NewBundle(), noopLogger{})

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	req = req.WithContext(i18n.WithLocale(req.Context(), loc))

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func validBody(providerID uuid.UUID) CreateBookingRequest {
	return CreateBookingRequest{
		ProviderID:  providerID.String(),
		ClientName:  "Arben Hoxha",
		ClientPhone: "+389 70 123 456",
		EventDate:   "2026-09-15",
		EventType:   "wedding",
	}
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:           uuid.New(),
		ProviderSlug: "villa-rosa",
		ClientName:   "Arben Hoxha",
		ClientPhone:  "+389 70 123 456",
		EventType:    "wedding",
		Status:       "pending",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}}

	rec := doRequest(t, uc, validBody(uuid.New()), i18n.LocaleEN)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "villa-rosa", resp.ProviderSlug)
	assert.NotEmpty(t, resp.Message)
}

func TestHandle_DateConflictIs409(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrDateConflict}

	rec := doRequest(t, uc, validBody(uuid.New()), i18n.LocaleEN)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_ConflictMessageLocalized(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrDateConflict}
	bundle := i18n.NewBundle()

	for _, loc := range []i18n.Locale{i18n.LocaleEN, i18n.LocaleSQ, i18n.LocaleMK} {
		rec := doRequest(t, uc, validBody(uuid.New()), loc)

		var resp struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, bundle.T(loc, i18n.MsgDateAlreadyBooked), resp.Error)
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"provider not found", createBooking.ErrProviderNotFound, http.StatusNotFound},
		{"provider not bookable", createBooking.ErrProviderNotBookable, http.StatusNotFound},
		{"past date", createBooking.ErrInvalidDate, http.StatusBadRequest},
		{"guests over capacity", createBooking.ErrGuestsOverCapacity, http.StatusBadRequest},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody(uuid.New()), i18n.LocaleEN)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, i18n.NewBundle(), noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedDate(t *testing.T) {
	body := validBody(uuid.New())
	body.EventDate = "15.09.2026"

	rec := doRequest(t, &fakeUseCase{}, body, i18n.LocaleEN)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
