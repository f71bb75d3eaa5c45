package export_bookings

import "errors"

var (
	// ErrMissingRange возвращается, когда не указана одна из границ диапазона
	ErrMissingRange = errors.New("export_bookings: start and end dates are required")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("export_bookings: invalid date")

	// ErrInvalidRange возвращается, когда начало диапазона позже конца
	ErrInvalidRange = errors.New("export_bookings: start date is after end date")

	// ErrNothingToExport возвращается, когда в диапазоне нет подтвержденных бронирований
	ErrNothingToExport = errors.New("export_bookings: no confirmed bookings in range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("export_bookings: internal error")
)

// Результаты выгрузки для метрик
const (
	resultSuccess  = "success"
	resultEmpty    = "empty"
	resultRejected = "rejected"
	resultError    = "error"
)
