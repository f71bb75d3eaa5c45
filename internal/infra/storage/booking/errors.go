package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDecode возвращается, когда документ не удалось разобрать
	ErrDecode = errors.New("booking.repository: failed to decode document")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("booking.repository: store error")
)
