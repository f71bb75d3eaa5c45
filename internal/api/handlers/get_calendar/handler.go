package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueCalendar/internal/api/handlers"
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

// Handle GET /api/v1/calendar?year=&month=
// Публичный endpoint, количество бронирований не раскрывается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseMonthQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid parameters: %v", err)
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
			h.logger.Error("GET /calendar - Failed to build calendar: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
