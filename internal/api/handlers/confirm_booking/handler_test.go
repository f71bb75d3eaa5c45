package confirm_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueCalendar/internal/service/bookings"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err error
}

func (f *fakeService) Confirm(_ context.Context, id string) (*models.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: id, Date: "2024-03-05", Name: "Ali", Confirmed: true}, nil
}

func serve(svc BookingService, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/bookings/{bookingId}/confirm", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings/"+id+"/confirm", nil))
	return rec
}

func TestHandler_Confirm(t *testing.T) {
	rec := serve(&fakeService{}, "abc")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "abc", resp.ID)
	assert.True(t, resp.Confirmed)
}

func TestHandler_NotFound(t *testing.T) {
	rec := serve(&fakeService{err: bookings.ErrBookingNotFound}, "missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
