package toggle_non_working_day

import (
	"context"

	"github.com/m04kA/SMC-VenueCalendar/internal/service/schedule/models"
)

type ScheduleService interface {
	ToggleNonWorkingDay(ctx context.Context, date string) (*models.NonWorkingDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
