package get_calendar

import "errors"

var (
	// ErrInvalidMonth возвращается, когда месяц вне диапазона 1..12
	ErrInvalidMonth = errors.New("get_calendar: invalid month")

	// ErrInvalidYear возвращается при некорректном годе
	ErrInvalidYear = errors.New("get_calendar: invalid year")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)
