package domain

// DateLimit is the capacity configured for one date
type DateLimit struct {
	Date  string
	Limit int
}

// NonWorkingDay marks a date that accepts no bookings
type NonWorkingDay struct {
	Date string
}

// ScheduleSnapshot is a consistent in-memory view of the three collections
type ScheduleSnapshot struct {
	Bookings       []Booking
	Limits         map[string]int      // date -> limit
	NonWorkingDays map[string]struct{} // presence only
}

// NewScheduleSnapshot creates an empty snapshot with initialized maps
func NewScheduleSnapshot() *ScheduleSnapshot {
	return &ScheduleSnapshot{
		Limits:         make(map[string]int),
		NonWorkingDays: make(map[string]struct{}),
	}
}

// LimitFor returns the capacity of date, falling back to DefaultDateLimit
func (s *ScheduleSnapshot) LimitFor(date string) int {
	if limit, ok := s.Limits[date]; ok {
		return limit
	}
	return DefaultDateLimit
}

// HasCustomLimit returns true if an explicit limit is stored for date
func (s *ScheduleSnapshot) HasCustomLimit(date string) bool {
	_, ok := s.Limits[date]
	return ok
}

// IsNonWorking returns true if date is marked as a non-working day
func (s *ScheduleSnapshot) IsNonWorking(date string) bool {
	_, ok := s.NonWorkingDays[date]
	return ok
}

// BookingsOn returns bookings whose date equals date
func (s *ScheduleSnapshot) BookingsOn(date string) []Booking {
	result := make([]Booking, 0)
	for _, b := range s.Bookings {
		if b.Date == date {
			result = append(result, b)
		}
	}
	return result
}

// CountsByDate returns the number of bookings per date
func (s *ScheduleSnapshot) CountsByDate() map[string]int {
	counts := make(map[string]int)
	for _, b := range s.Bookings {
		counts[b.Date]++
	}
	return counts
}
