package events

import "errors"

var (
	// ErrConnect возвращается, когда не удалось подключиться к брокеру
	ErrConnect = errors.New("events: failed to connect to broker")

	// ErrPublish возвращается при ошибке публикации события
	ErrPublish = errors.New("events: failed to publish event")

	// ErrNotConnected возвращается, пока соединение с брокером восстанавливается
	ErrNotConnected = errors.New("events: broker connection is being restored")

	// ErrClosed возвращается при публикации после Close
	ErrClosed = errors.New("events: publisher is closed")
)
