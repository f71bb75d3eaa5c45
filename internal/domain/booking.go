package domain

import "time"

// ReadingMode is how the reading part of the event is held
type ReadingMode string

const (
	ReadingGroup      ReadingMode = "group"
	ReadingIndividual ReadingMode = "individual"
)

// IsValid returns true for the known reading modes. Empty means "not chosen".
func (m ReadingMode) IsValid() bool {
	return m == "" || m == ReadingGroup || m == ReadingIndividual
}

// Booking represents a single reservation request for a date
type Booking struct {
	ID   string
	Date string // YYYY-MM-DD, partition key for occupancy

	Name            string
	SecondaryName   string // father and grandfather names
	Affiliation     string // tribe
	Venue           string // where the event takes place
	ReadingMode     ReadingMode
	IncludedService *bool // nil = not answered

	Phone  string
	Phone2 string
	Email  string

	Confirmed bool
	CreatedAt time.Time
}

// IsPending returns true if the booking still waits for an administrator
func (b *Booking) IsPending() bool {
	return !b.Confirmed
}

// CanBeDeleted returns true if the booking can be removed.
// Confirmed bookings are kept forever.
func (b *Booking) CanBeDeleted() bool {
	return !b.Confirmed
}

// CanBeConfirmed returns true if a confirm action would change the booking
func (b *Booking) CanBeConfirmed() bool {
	return !b.Confirmed
}

// GroupByDate groups bookings by their date key
func GroupByDate(bookings []Booking) map[string][]Booking {
	grouped := make(map[string][]Booking)
	for _, b := range bookings {
		grouped[b.Date] = append(grouped[b.Date], b)
	}
	return grouped
}
