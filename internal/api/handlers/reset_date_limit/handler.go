package reset_date_limit

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

// Handle DELETE /api/v1/admin/days/{date}/limit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	result, err := h.service.ResetLimit(r.Context(), date)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidDate) {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("DELETE /admin/days/{date}/limit - Failed to reset limit: date=%s, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/days/{date}/limit - Limit reset: date=%s", result.Date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
