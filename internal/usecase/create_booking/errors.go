package create_booking

import "errors"

var (
	// ErrMissingDate возвращается, когда дата не выбрана
	ErrMissingDate = errors.New("create_booking: date is not selected")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrMissingName возвращается, когда не заполнено имя
	ErrMissingName = errors.New("create_booking: name is required")

	// ErrInvalidReadingMode возвращается при неизвестном режиме чтения
	ErrInvalidReadingMode = errors.New("create_booking: invalid reading mode")

	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("create_booking: invalid email")

	// ErrFieldTooLong возвращается, когда поле превышает допустимую длину
	ErrFieldTooLong = errors.New("create_booking: field is too long")

	// ErrDateInPast возвращается при попытке забронировать прошедшую дату
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrNonWorkingDay возвращается, когда дата отмечена как нерабочая
	ErrNonWorkingDay = errors.New("create_booking: date is a non-working day")

	// ErrDayFull возвращается, когда лимит бронирований на дату исчерпан
	ErrDayFull = errors.New("create_booking: date is fully booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// Причины отказа для метрик
const (
	reasonValidation = "validation"
	reasonPast       = "past"
	reasonNonWorking = "non_working"
	reasonFull       = "full"
)
