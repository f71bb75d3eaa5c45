package set_date_limit

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VenueCalendar/internal/service/schedule"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/schedule/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	calls int
}

func (f *fakeService) SetLimit(_ context.Context, date string, limit int) (*models.DayLimitResponse, error) {
	f.calls++
	if limit < 0 || limit > 7 {
		return nil, fmt.Errorf("%w: out of range", schedule.ErrInvalidLimit)
	}
	return &models.DayLimitResponse{Date: date, Limit: limit}, nil
}

func serve(svc ScheduleService, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/days/{date}/limit", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPut)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/admin/days/2024-03-12/limit", strings.NewReader(body)))
	return rec
}

func TestHandler_SetLimit(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCalls  int
	}{
		{name: "zero closes the day", body: `{"limit":0}`, wantStatus: http.StatusOK, wantCalls: 1},
		{name: "max", body: `{"limit":7}`, wantStatus: http.StatusOK, wantCalls: 1},
		{name: "above max", body: `{"limit":8}`, wantStatus: http.StatusBadRequest, wantCalls: 1},
		{name: "missing limit", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "not a number", body: `{"limit":"five"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			rec := serve(svc, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, svc.calls)
		})
	}
}
