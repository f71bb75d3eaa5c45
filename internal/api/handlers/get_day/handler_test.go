package get_day

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueCalendar/internal/service/schedule"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/schedule/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err error
}

func (f *fakeService) GetDay(_ context.Context, date string) (*models.DayResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.DayResponse{Date: date, Limit: 7, Count: 2, Remaining: 5, Status: "available"}, nil
}

func serve(svc ScheduleService, date string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/days/{date}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/days/"+date, nil))
	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "ok", wantStatus: http.StatusOK},
		{name: "invalid date", err: fmt.Errorf("%w: bad", schedule.ErrInvalidDate), wantStatus: http.StatusBadRequest},
		{name: "store failure", err: schedule.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, "2024-03-05")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Body(t *testing.T) {
	rec := serve(&fakeService{}, "2024-03-05")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2024-03-05", resp.Date)
	assert.Equal(t, 5, resp.Remaining)
}
