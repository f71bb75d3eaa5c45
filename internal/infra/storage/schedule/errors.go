package schedule

import "errors"

var (
	// ErrLimitNotFound возвращается, когда для даты не задан лимит
	ErrLimitNotFound = errors.New("schedule.repository: date limit not found")

	// ErrDecode возвращается, когда документ не удалось разобрать
	ErrDecode = errors.New("schedule.repository: failed to decode document")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("schedule.repository: store error")
)
