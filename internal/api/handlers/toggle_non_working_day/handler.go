package toggle_non_working_day

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/schedule"
)

const msgInvalidDate = "تاريخ غير صالح، الصيغة المطلوبة YYYY-MM-DD"

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/days/{date}/non-working/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	result, err := h.service.ToggleNonWorkingDay(r.Context(), date)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidDate) {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("POST /admin/days/{date}/non-working/toggle - Failed to toggle: date=%s, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/days/{date}/non-working/toggle - date=%s, nonWorking=%t", result.Date, result.NonWorking)
	handlers.RespondJSON(w, http.StatusOK, result)
}
