package search_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-VenueCalendar/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings/search?q=
// Пустой запрос возвращает пустой список
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	result, err := h.service.Search(r.Context(), query)
	if err != nil {
		h.logger.Error("GET /admin/bookings/search - Failed to search bookings: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings/search - Found %d bookings", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
