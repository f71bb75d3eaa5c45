package export_bookings

import (
	"context"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// BookingSource источник всех бронирований
type BookingSource interface {
	Bookings(ctx context.Context) ([]domain.Booking, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncExport(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
