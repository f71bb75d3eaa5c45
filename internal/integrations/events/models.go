package events

import (
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// Ключи маршрутизации событий
const (
	RoutingBookingSubmitted = "booking.submitted"
	RoutingBookingConfirmed = "booking.confirmed"
)

// BookingEvent тело события о бронировании
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"bookingId"`
	Date       string    `json:"date"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Confirmed  bool      `json:"confirmed"`
	CreatedAt  time.Time `json:"createdAt"`
	OccurredAt time.Time `json:"occurredAt"`
}

// newBookingEvent собирает событие из доменной модели
func newBookingEvent(routingKey string, b *domain.Booking, now time.Time) BookingEvent {
	return BookingEvent{
		Type:       routingKey,
		BookingID:  b.ID,
		Date:       b.Date,
		Name:       b.Name,
		Phone:      b.Phone,
		Email:      b.Email,
		Confirmed:  b.Confirmed,
		CreatedAt:  b.CreatedAt,
		OccurredAt: now.UTC(),
	}
}
