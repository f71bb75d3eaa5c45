package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date            string // YYYY-MM-DD
	Name            string
	SecondaryName   string // имена отца и деда
	Affiliation     string // племя
	Venue           string // место проведения
	ReadingMode     domain.ReadingMode
	IncludedService *bool
	Phone           string
	Phone2          string
	Email           string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string
	Date            string
	Name            string
	SecondaryName   string
	Affiliation     string
	Venue           string
	ReadingMode     domain.ReadingMode
	IncludedService *bool
	Phone           string
	Phone2          string
	Email           string
	Confirmed       bool
	CreatedAt       time.Time

	// Занятость даты сразу после записи
	Count int
	Limit int
}
