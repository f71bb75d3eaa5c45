package export_bookings

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-VenueCalendar/internal/api/handlers"
	exportBookings "github.com/m04kA/SMC-VenueCalendar/internal/usecase/export_bookings"
)

const (
	msgMissingRange    = "الرجاء تحديد تاريخي البداية والنهاية"
	msgInvalidDate     = "تاريخ غير صالح، الصيغة المطلوبة YYYY-MM-DD"
	msgInvalidRange    = "يجب أن يكون تاريخ البداية قبل تاريخ النهاية"
	msgNothingToExport = "لا توجد حجوزات مؤكدة في النطاق الزمني المحدد"
)

type Handler struct {
	useCase ExportBookingsUseCase
	logger  Logger
}

func NewHandler(useCase ExportBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/export?startDate=&endDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &exportBookings.Request{
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, exportBookings.ErrMissingRange):
			handlers.RespondBadRequest(w, msgMissingRange)
		case errors.Is(err, exportBookings.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, exportBookings.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)
		case errors.Is(err, exportBookings.ErrNothingToExport):
			handlers.RespondBadRequest(w, msgNothingToExport)
		default:
			h.logger.Error("GET /admin/export - Failed to export bookings: start=%s, end=%s, error=%v",
				req.StartDate, req.EndDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", exportBookings.ContentType)
	w.Header().Set("Content-Disposition", ContentDisposition(result.ASCIIFileName, result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Content); err != nil {
		h.logger.Warn("GET /admin/export - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /admin/export - Exported %d rows: file=%s", result.Rows, result.FileName)
}

// ContentDisposition заголовок вложения с ASCII именем и UTF-8 именем по RFC 5987
func ContentDisposition(asciiName, fileName string) string {
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`,
		asciiName, url.PathEscape(fileName))
}
