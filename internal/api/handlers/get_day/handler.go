package get_day

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

// Handle GET /api/v1/admin/days/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	result, err := h.service.GetDay(r.Context(), date)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidDate) {
			h.logger.Warn("GET /admin/days/{date} - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /admin/days/{date} - Failed to get day: date=%s, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
