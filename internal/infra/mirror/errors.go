package mirror

import "errors"

var (
	// ErrClosed возвращается после Close
	ErrClosed = errors.New("mirror: closed")

	// ErrNotStarted возвращается при чтении до Start
	ErrNotStarted = errors.New("mirror: not started")

	// ErrSubscribe возвращается, когда не удалось подписаться на коллекцию
	ErrSubscribe = errors.New("mirror: failed to subscribe")

	// ErrLoad возвращается при ошибке разового чтения
	ErrLoad = errors.New("mirror: failed to load collection")
)
