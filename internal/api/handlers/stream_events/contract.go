package stream_events

import "github.com/m04kA/SMC-VenueCalendar/internal/infra/mirror"

// ChangeFeed источник уведомлений об изменении коллекций
type ChangeFeed interface {
	Watch(buffer int) (<-chan mirror.Change, func())
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
