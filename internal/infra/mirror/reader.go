package mirror

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VenueCalendar/internal/infra/storage/schedule"
)

// Reader читает три коллекции разово, без подписок.
// Используется посетительской частью: каждое обращение видит свежие данные.
type Reader struct {
	store  CollectionReader
	logger Logger
}

// NewReader создает разовый читатель
func NewReader(store CollectionReader, logger Logger) *Reader {
	return &Reader{store: store, logger: logger}
}

// Snapshot читает reservations, dateLimits и nonWorkingDays
func (r *Reader) Snapshot(ctx context.Context) (*domain.ScheduleSnapshot, error) {
	snapshot := domain.NewScheduleSnapshot()

	reservations, err := r.store.GetCollection(ctx, domain.CollectionReservations)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, domain.CollectionReservations, err)
	}
	bookings, errs := booking.DecodeSnapshot(reservations)
	for _, err := range errs {
		r.logger.Warn("Reader: skipping reservation: %v", err)
	}
	snapshot.Bookings = bookings

	limits, err := r.store.GetCollection(ctx, domain.CollectionDateLimits)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, domain.CollectionDateLimits, err)
	}
	decoded, errs := schedule.DecodeLimits(limits)
	for _, err := range errs {
		r.logger.Warn("Reader: skipping date limit: %v", err)
	}
	snapshot.Limits = decoded

	days, err := r.store.GetCollection(ctx, domain.CollectionNonWorkingDays)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, domain.CollectionNonWorkingDays, err)
	}
	snapshot.NonWorkingDays = schedule.DecodeNonWorkingDays(days)

	return snapshot, nil
}
