package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListByDate(ctx context.Context, date string) ([]domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория лимитов и нерабочих дней
type ScheduleRepository interface {
	GetLimit(ctx context.Context, date string) (int, error)
	IsNonWorkingDay(ctx context.Context, date string) (bool, error)
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	PublishBookingSubmitted(ctx context.Context, b *domain.Booking) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncBookingSubmitted()
	IncBookingRejected(reason string)
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
