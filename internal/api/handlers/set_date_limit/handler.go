package set_date_limit

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "طلب غير صالح"
	msgMissingLimit       = "الرجاء تحديد عدد الحجوزات"
	msgInvalidDate        = "تاريخ غير صالح، الصيغة المطلوبة YYYY-MM-DD"
	msgInvalidLimit       = "عدد الحجوزات يجب أن يكون بين 0 و 7"
)

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

// Handle PUT /api/v1/admin/days/{date}/limit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	var req SetDateLimitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/days/{date}/limit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Limit == nil {
		handlers.RespondBadRequest(w, msgMissingLimit)
		return
	}

	result, err := h.service.SetLimit(r.Context(), date, *req.Limit)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, schedule.ErrInvalidLimit):
			handlers.RespondBadRequest(w, msgInvalidLimit)
		default:
			h.logger.Error("PUT /admin/days/{date}/limit - Failed to set limit: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/days/{date}/limit - Limit set: date=%s, limit=%d", result.Date, result.Limit)
	handlers.RespondJSON(w, http.StatusOK, result)
}
