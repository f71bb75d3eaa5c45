package stream_events

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VenueCalendar/internal/infra/mirror"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeFeed struct {
	ch        chan mirror.Change
	cancelled bool
}

func (f *fakeFeed) Watch(int) (<-chan mirror.Change, func()) {
	return f.ch, func() { f.cancelled = true }
}

func TestHandler_StreamsChanges(t *testing.T) {
	feed := &fakeFeed{ch: make(chan mirror.Change, 2)}
	at := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	feed.ch <- mirror.Change{Collection: "reservations", At: at}
	feed.ch <- mirror.Change{Collection: "nonWorkingDays", At: at}
	close(feed.ch)

	rec := httptest.NewRecorder()
	NewHandler(feed, time.Hour, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/events", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.True(t, feed.cancelled)

	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, "event: change\n"))
	assert.Contains(t, body, `data: {"collection":"reservations","at":"2024-03-10T12:00:00Z"}`)
	assert.Contains(t, body, `"collection":"nonWorkingDays"`)
}
