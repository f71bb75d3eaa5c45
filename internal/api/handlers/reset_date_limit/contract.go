package reset_date_limit

import (
	"context"

	"github.com/m04kA/SMC-VenueCalendar/internal/service/schedule/models"
)

type ScheduleService interface {
	ResetLimit(ctx context.Context, date string) (*models.DayLimitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
