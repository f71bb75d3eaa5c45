package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	createBooking "github.com/m04kA/SMC-VenueCalendar/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date            string `json:"date"` // "2024-03-12"
	Name            string `json:"name"`
	SecondaryName   string `json:"secondaryName,omitempty"`
	Affiliation     string `json:"affiliation,omitempty"`
	Venue           string `json:"venue,omitempty"`
	ReadingMode     string `json:"readingMode,omitempty"` // "group" | "individual"
	IncludedService *bool  `json:"includedService,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Phone2          string `json:"phone2,omitempty"`
	Email           string `json:"email,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Name            string `json:"name"`
	SecondaryName   string `json:"secondaryName,omitempty"`
	Affiliation     string `json:"affiliation,omitempty"`
	Venue           string `json:"venue,omitempty"`
	ReadingMode     string `json:"readingMode,omitempty"`
	IncludedService *bool  `json:"includedService,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Phone2          string `json:"phone2,omitempty"`
	Email           string `json:"email,omitempty"`
	Confirmed       bool   `json:"confirmed"`
	CreatedAt       string `json:"createdAt"`
	Count           int    `json:"count"`
	Limit           int    `json:"limit"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Date:            r.Date,
		Name:            r.Name,
		SecondaryName:   r.SecondaryName,
		Affiliation:     r.Affiliation,
		Venue:           r.Venue,
		ReadingMode:     domain.ReadingMode(r.ReadingMode),
		IncludedService: r.IncludedService,
		Phone:           r.Phone,
		Phone2:          r.Phone2,
		Email:           r.Email,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Date:            resp.Date,
		Name:            resp.Name,
		SecondaryName:   resp.SecondaryName,
		Affiliation:     resp.Affiliation,
		Venue:           resp.Venue,
		ReadingMode:     string(resp.ReadingMode),
		IncludedService: resp.IncludedService,
		Phone:           resp.Phone,
		Phone2:          resp.Phone2,
		Email:           resp.Email,
		Confirmed:       resp.Confirmed,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		Count:           resp.Count,
		Limit:           resp.Limit,
	}
}
