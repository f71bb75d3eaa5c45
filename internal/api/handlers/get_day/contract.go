package get_day

import (
	"context"

	"github.com/m04kA/SMC-VenueCalendar/internal/service/schedule/models"
)

type ScheduleService interface {
	GetDay(ctx context.Context, date string) (*models.DayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
