package domain

// Default configuration values
const (
	DefaultDateLimit = 7 // capacity of a date without an explicit limit
	MaxDateLimit     = 7
	MinDateLimit     = 0
)

// Store collections
const (
	CollectionReservations   = "reservations"
	CollectionDateLimits     = "dateLimits"
	CollectionNonWorkingDays = "nonWorkingDays"
)

// Collections lists every collection the service reads and writes
var Collections = []string{
	CollectionReservations,
	CollectionDateLimits,
	CollectionNonWorkingDays,
}

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNameLength  = 200
	MaxFieldLength = 500
)
