package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	today := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	tests := []struct {
		name         string
		date         time.Time
		count        int
		limit        int
		nonWorking   bool
		restrictPast bool
		want         DayStatus
	}{
		{"empty day", tomorrow, 0, 7, false, true, DayAvailable},
		{"below limit", tomorrow, 6, 7, false, true, DayAvailable},
		{"at limit", tomorrow, 7, 7, false, true, DayFull},
		{"over limit", tomorrow, 9, 7, false, true, DayFull},
		{"zero limit", tomorrow, 0, 0, false, true, DayFull},
		{"non-working empty", tomorrow, 0, 7, true, true, DayNonWorking},
		{"non-working beats full", tomorrow, 7, 7, true, true, DayNonWorking},
		{"today is not past", today, 0, 7, false, true, DayAvailable},
		{"today late in the day", today.Add(23 * time.Hour), 0, 7, false, true, DayAvailable},
		{"past beats non-working", yesterday, 0, 7, true, true, DayPast},
		{"past beats full", yesterday, 7, 7, false, true, DayPast},
		{"admin ignores past", yesterday, 0, 7, false, false, DayAvailable},
		{"admin past full", yesterday, 7, 7, false, false, DayFull},
		{"admin past non-working", yesterday, 7, 7, true, false, DayNonWorking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.date, tt.count, tt.limit, tt.nonWorking, today, tt.restrictPast)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_FullIffCountReachesLimit(t *testing.T) {
	today := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	date := today.AddDate(0, 0, 3)

	for limit := 0; limit <= 7; limit++ {
		for count := 0; count <= 9; count++ {
			got := Classify(date, count, limit, false, today, true)
			assert.Equal(t, count >= limit, got == DayFull, "count=%d limit=%d", count, limit)

			got = Classify(date, count, limit, true, today, true)
			assert.Equal(t, DayNonWorking, got, "count=%d limit=%d", count, limit)
		}
	}
}

func TestScheduleSnapshot_OccupancyFor(t *testing.T) {
	today := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	snapshot := NewScheduleSnapshot()
	snapshot.Limits["2024-03-05"] = 2
	snapshot.NonWorkingDays["2024-03-08"] = struct{}{}
	snapshot.Bookings = []Booking{
		{ID: "a", Date: "2024-03-05", Name: "one"},
		{ID: "b", Date: "2024-03-05", Name: "two"},
		{ID: "c", Date: "2024-03-06", Name: "three"},
	}

	full := snapshot.OccupancyFor(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), today, true)
	assert.Equal(t, DayOccupancy{Date: "2024-03-05", Count: 2, Limit: 2, Status: DayFull}, full)
	assert.Equal(t, 0, full.Remaining())

	open := snapshot.OccupancyFor(time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC), today, true)
	assert.Equal(t, DefaultDateLimit, open.Limit)
	assert.Equal(t, DayAvailable, open.Status)
	assert.Equal(t, 6, open.Remaining())

	closed := snapshot.OccupancyFor(time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC), today, true)
	assert.True(t, closed.NonWorking)
	assert.Equal(t, DayNonWorking, closed.Status)
	assert.Equal(t, 0, closed.Remaining())
}
