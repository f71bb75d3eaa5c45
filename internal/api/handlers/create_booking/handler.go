package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueCalendar/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-VenueCalendar/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "طلب غير صالح"
	msgMissingDate        = "الرجاء اختيار تاريخ"
	msgInvalidDate        = "تاريخ غير صالح، الصيغة المطلوبة YYYY-MM-DD"
	msgMissingName        = "الاسم مطلوب"
	msgInvalidReadingMode = "نوع القراءة غير صالح"
	msgInvalidEmail       = "البريد الإلكتروني غير صالح"
	msgFieldTooLong       = "أحد الحقول أطول من المسموح"
	msgDateInPast         = "لا يمكن الحجز في تاريخ سابق"
	msgNonWorkingDay      = "هذا اليوم غير متاح للحجوزات"
	msgDayFull            = "هذا اليوم ممتلئ بالكامل"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrMissingDate):
			handlers.RespondBadRequest(w, msgMissingDate)
		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, createBooking.ErrMissingName):
			handlers.RespondBadRequest(w, msgMissingName)
		case errors.Is(err, createBooking.ErrInvalidReadingMode):
			handlers.RespondBadRequest(w, msgInvalidReadingMode)
		case errors.Is(err, createBooking.ErrInvalidEmail):
			handlers.RespondBadRequest(w, msgInvalidEmail)
		case errors.Is(err, createBooking.ErrFieldTooLong):
			handlers.RespondBadRequest(w, msgFieldTooLong)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: date=%s", req.Date)
			handlers.RespondConflict(w, msgDateInPast)
		case errors.Is(err, createBooking.ErrNonWorkingDay):
			h.logger.Warn("POST /bookings - Non-working day: date=%s", req.Date)
			handlers.RespondConflict(w, msgNonWorkingDay)
		case errors.Is(err, createBooking.ErrDayFull):
			h.logger.Warn("POST /bookings - Day is full: date=%s", req.Date)
			handlers.RespondConflict(w, msgDayFull)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, date=%s", result.ID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
