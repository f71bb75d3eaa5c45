package get_admin_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueCalendar/internal/api/handlers"
	visitorCalendar "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/get_calendar"
	getCalendar "github.com/m04kA/SMC-VenueCalendar/internal/usecase/get_calendar"
)

const (
	msgInvalidParams = "معاملات الطلب غير صالحة"
	msgInvalidMonth  = "الشهر يجب أن يكون بين 1 و 12"
	msgInvalidYear   = "السنة غير صالحة"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/calendar?year=&month=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := visitorCalendar.ParseMonthQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/calendar - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidMonth):
			handlers.RespondBadRequest(w, msgInvalidMonth)
		case errors.Is(err, getCalendar.ErrInvalidYear):
			handlers.RespondBadRequest(w, msgInvalidYear)
		default:
			h.logger.Error("GET /admin/calendar - Failed to build calendar: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/calendar - Calendar built: %04d-%02d", result.Year, result.Month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
