package domain

import "time"

// DayStatus is the admission state of a calendar day
type DayStatus string

const (
	DayAvailable  DayStatus = "available"
	DayFull       DayStatus = "full"
	DayNonWorking DayStatus = "nonWorking"
	DayPast       DayStatus = "past"
)

// IsBookable returns true if a visitor may submit for the day
func (s DayStatus) IsBookable() bool {
	return s == DayAvailable
}

// Classify derives the admission state of date.
//
// Precedence: past (only when restrictPast) > nonWorking > full > available.
// today must already be truncated to midnight; date is compared by calendar day.
func Classify(date time.Time, count, limit int, nonWorking bool, today time.Time, restrictPast bool) DayStatus {
	if restrictPast && StartOfDay(date).Before(StartOfDay(today)) {
		return DayPast
	}
	if nonWorking {
		return DayNonWorking
	}
	if count >= limit {
		return DayFull
	}
	return DayAvailable
}

// DayOccupancy describes a date against its capacity
type DayOccupancy struct {
	Date       string
	Count      int
	Limit      int
	NonWorking bool
	Status     DayStatus
}

// Remaining returns the number of bookings the date can still take
func (o DayOccupancy) Remaining() int {
	if o.NonWorking || o.Count >= o.Limit {
		return 0
	}
	return o.Limit - o.Count
}

// OccupancyFor classifies date against the snapshot
func (s *ScheduleSnapshot) OccupancyFor(date time.Time, today time.Time, restrictPast bool) DayOccupancy {
	key := DateKey(date)
	count := len(s.BookingsOn(key))
	limit := s.LimitFor(key)
	nonWorking := s.IsNonWorking(key)

	return DayOccupancy{
		Date:       key,
		Count:      count,
		Limit:      limit,
		NonWorking: nonWorking,
		Status:     Classify(date, count, limit, nonWorking, today, restrictPast),
	}
}
