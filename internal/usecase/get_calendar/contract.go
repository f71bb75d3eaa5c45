package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// ScheduleSource источник бронирований, лимитов и нерабочих дней
type ScheduleSource interface {
	Snapshot(ctx context.Context) (*domain.ScheduleSnapshot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
