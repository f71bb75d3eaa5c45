package get_calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	getCalendar "github.com/m04kA/SMC-VenueCalendar/internal/usecase/get_calendar"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *getCalendar.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getCalendar.Request) (*getCalendar.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &getCalendar.Response{
		Year:  2024,
		Month: 3,
		Prev:  getCalendar.MonthRef{Year: 2024, Month: 2},
		Next:  getCalendar.MonthRef{Year: 2024, Month: 4},
		Cells: []getCalendar.Cell{
			{Placeholder: true},
			{Date: "2024-03-01", Day: 1, Occupancy: domain.DayOccupancy{Date: "2024-03-01", Count: 7, Limit: 7, Status: domain.DayFull}},
		},
	}, nil
}

func TestHandler_HidesCounts(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar?year=2024&month=3", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, &getCalendar.Request{Year: 2024, Month: 3}, uc.got)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	cells := raw["cells"].([]interface{})
	require.Len(t, cells, 2)

	placeholder := cells[0].(map[string]interface{})
	assert.Equal(t, true, placeholder["placeholder"])

	day := cells[1].(map[string]interface{})
	assert.Equal(t, "full", day["status"])
	assert.NotContains(t, day, "count")
	assert.NotContains(t, day, "limit")

	assert.Equal(t, map[string]interface{}{"year": float64(2024), "month": float64(2)}, raw["prev"])
}

func TestHandler_BadParams(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeUseCase{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar?month=march", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(&fakeUseCase{err: getCalendar.ErrInvalidMonth}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar?month=13", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseMonthQuery_Defaults(t *testing.T) {
	req, err := ParseMonthQuery(nil)
	require.NoError(t, err)
	assert.Equal(t, &getCalendar.Request{}, req)
}
