package domain

// Stats aggregates the booking set
type Stats struct {
	Total          int
	Confirmed      int
	Pending        int
	NonWorkingDays int
}

// ComputeStats counts bookings by confirmation status
func ComputeStats(bookings []Booking, nonWorkingDays int) Stats {
	stats := Stats{
		Total:          len(bookings),
		NonWorkingDays: nonWorkingDays,
	}
	for _, b := range bookings {
		if b.Confirmed {
			stats.Confirmed++
		}
	}
	stats.Pending = stats.Total - stats.Confirmed
	return stats
}

// ConfirmationRate returns the share of confirmed bookings as a percentage (0-100)
func (s Stats) ConfirmationRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Confirmed) / float64(s.Total) * 100
}
