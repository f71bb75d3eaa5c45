package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	createBooking "github.com/m04kA/SMC-VenueCalendar/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *createBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &createBooking.Response{
		ID:          "0192f0c8-0000-7000-8000-000000000001",
		Date:        req.Date,
		Name:        req.Name,
		ReadingMode: req.ReadingMode,
		CreatedAt:   time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC),
		Count:       1,
		Limit:       domain.DefaultDateLimit,
	}, nil
}

func post(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := post(t, h, `{"date":"2024-03-12","name":"علي","readingMode":"group","includedService":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, "2024-03-12", uc.got.Date)
	assert.Equal(t, domain.ReadingGroup, uc.got.ReadingMode)
	require.NotNil(t, uc.got.IncludedService)
	assert.True(t, *uc.got.IncludedService)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "علي", resp.Name)
	assert.Equal(t, "2024-03-10T12:00:00Z", resp.CreatedAt)
	assert.False(t, resp.Confirmed)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "missing date", err: createBooking.ErrMissingDate, wantStatus: http.StatusBadRequest, wantMsg: msgMissingDate},
		{name: "missing name", err: createBooking.ErrMissingName, wantStatus: http.StatusBadRequest, wantMsg: msgMissingName},
		{name: "non-working", err: createBooking.ErrNonWorkingDay, wantStatus: http.StatusConflict, wantMsg: msgNonWorkingDay},
		{name: "full", err: createBooking.ErrDayFull, wantStatus: http.StatusConflict, wantMsg: msgDayFull},
		{name: "past", err: createBooking.ErrDateInPast, wantStatus: http.StatusConflict, wantMsg: msgDateInPast},
		{name: "internal", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := post(t, h, `{"date":"2024-03-12","name":"x"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body.Message)
			}
		})
	}
}

func TestHandler_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := post(t, h, `{"date":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
