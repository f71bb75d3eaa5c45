package get_stats

import (
	"context"

	"github.com/m04kA/SMC-VenueCalendar/internal/service/bookings/models"
)

type BookingService interface {
	GetStats(ctx context.Context) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
