package schedule

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("schedule: invalid date")

	// ErrInvalidLimit возвращается, когда лимит вне допустимого диапазона
	ErrInvalidLimit = errors.New("schedule: invalid date limit")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
