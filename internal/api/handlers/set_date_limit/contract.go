package set_date_limit

import (
	"context"

	"github.com/m04kA/SMC-VenueCalendar/internal/service/schedule/models"
)

type ScheduleService interface {
	SetLimit(ctx context.Context, date string, limit int) (*models.DayLimitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
