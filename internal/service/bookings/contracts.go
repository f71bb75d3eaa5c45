package bookings

import (
	"context"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Confirm(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// ScheduleSource источник текущего состояния трёх коллекций
type ScheduleSource interface {
	Snapshot(ctx context.Context) (*domain.ScheduleSnapshot, error)
}

// EventPublisher публикация событий о бронированиях
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, b *domain.Booking) error
}

// Metrics бизнес-метрики
type Metrics interface {
	IncBookingConfirmed()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
