package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// ScheduleRepository интерфейс репозитория лимитов и нерабочих дней
type ScheduleRepository interface {
	SetLimit(ctx context.Context, date string, limit int) error
	DeleteLimit(ctx context.Context, date string) error
	IsNonWorkingDay(ctx context.Context, date string) (bool, error)
	SetNonWorkingDay(ctx context.Context, date string) error
	RemoveNonWorkingDay(ctx context.Context, date string) error
}

// ScheduleSource источник текущего состояния трёх коллекций
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
