package models

import (
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// BookingResponse данные бронирования
type BookingResponse struct {
	ID              string `json:"id"`
	Date            string `json:"date"` // "2024-03-05"
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

	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// StatsResponse агрегированная статистика
type StatsResponse struct {
	Total            int     `json:"total"`
	Confirmed        int     `json:"confirmed"`
	Pending          int     `json:"pending"`
	NonWorkingDays   int     `json:"nonWorkingDays"`
	ConfirmationRate float64 `json:"confirmationRate"`
}

// FromDomainBooking конвертирует доменную модель в ответ
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:              b.ID,
		Date:            b.Date,
		Name:            b.Name,
		SecondaryName:   b.SecondaryName,
		Affiliation:     b.Affiliation,
		Venue:           b.Venue,
		ReadingMode:     string(b.ReadingMode),
		IncludedService: b.IncludedService,
		Phone:           b.Phone,
		Phone2:          b.Phone2,
		Email:           b.Email,
		Confirmed:       b.Confirmed,
	}
	if !b.CreatedAt.IsZero() {
		createdAt := b.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for i := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(&bookings[i]))
	}
	return resp
}

// FromDomainStats конвертирует статистику
func FromDomainStats(stats domain.Stats) *StatsResponse {
	return &StatsResponse{
		Total:            stats.Total,
		Confirmed:        stats.Confirmed,
		Pending:          stats.Pending,
		NonWorkingDays:   stats.NonWorkingDays,
		ConfirmationRate: stats.ConfirmationRate(),
	}
}
