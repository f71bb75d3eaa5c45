package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/infra/docstore"
)

// Repository репозиторий бронирований поверх коллекции reservations
type Repository struct {
	store  DocumentStore
	logger Logger
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(store DocumentStore, logger Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger,
	}
}

// Create сохраняет бронирование под новым ключом хранилища.
// Возвращает бронирование с заполненным ID.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	id, err := r.store.Push(ctx, domain.CollectionReservations, toRecord(booking))
	if err != nil {
		return nil, fmt.Errorf("%w: Create - push: %v", ErrStore, err)
	}

	created := *booking
	created.ID = id
	return &created, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	raw, err := r.store.Get(ctx, docstore.Path(domain.CollectionReservations, id))
	if errors.Is(err, docstore.ErrNotFound) || errors.Is(err, docstore.ErrInvalidPath) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - get: %v", ErrStore, err)
	}

	return decodeBooking(id, raw)
}

// ListAll читает все бронирования одним запросом.
// Документы без корректной даты пропускаются с предупреждением в логе.
func (r *Repository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	snapshot, err := r.store.GetCollection(ctx, domain.CollectionReservations)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - get collection: %v", ErrStore, err)
	}

	bookings, errs := DecodeSnapshot(snapshot)
	for _, err := range errs {
		r.logger.Warn("BookingRepository.ListAll: skipping reservation: %v", err)
	}
	return bookings, nil
}

// ListByDate читает бронирования на одну дату
func (r *Repository) ListByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Booking, 0)
	for _, b := range all {
		if b.Date == date {
			result = append(result, b)
		}
	}
	return result, nil
}

// Confirm выставляет confirmed=true. Других полей не трогает.
func (r *Repository) Confirm(ctx context.Context, id string) error {
	err := r.store.Update(ctx, docstore.Path(domain.CollectionReservations, id), map[string]interface{}{
		"confirmed": true,
	})
	if errors.Is(err, docstore.ErrNotFound) || errors.Is(err, docstore.ErrInvalidPath) {
		return ErrBookingNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Confirm - update: %v", ErrStore, err)
	}
	return nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id string) error {
	err := r.store.Delete(ctx, docstore.Path(domain.CollectionReservations, id))
	if errors.Is(err, docstore.ErrInvalidPath) {
		return ErrBookingNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Delete - delete: %v", ErrStore, err)
	}
	return nil
}

// DecodeSnapshot разбирает снапшот коллекции reservations.
// Документы, которые нельзя отнести к дате, пропускаются и возвращаются списком ошибок.
func DecodeSnapshot(snapshot docstore.Snapshot) ([]domain.Booking, []error) {
	bookings := make([]domain.Booking, 0, len(snapshot))
	var errs []error

	for id, raw := range snapshot {
		b, err := decodeBooking(id, raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		bookings = append(bookings, *b)
	}

	domain.SortBookings(bookings)
	return bookings, errs
}
