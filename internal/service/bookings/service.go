package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueCalendar/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/bookings/models"
)

// Service административные операции над бронированиями
type Service struct {
	bookingRepo BookingRepository
	schedule    ScheduleSource
	publisher   EventPublisher
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	schedule ScheduleSource,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		schedule:    schedule,
		publisher:   publisher,
		metrics:     metrics,
		logger:      logger,
	}
}

// Confirm подтверждает бронирование.
// Повторное подтверждение ничего не меняет и событие не публикует.
func (s *Service) Confirm(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%s", id)

	booking, err := s.getBooking(ctx, "Confirm", id)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeConfirmed() {
		s.logger.Info("Confirm: booking id=%s is already confirmed", id)
		return models.FromDomainBooking(booking), nil
	}

	if err := s.bookingRepo.Confirm(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Confirm: booking id=%s disappeared before update", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}
	booking.Confirmed = true
	s.metrics.IncBookingConfirmed()

	// Событие best-effort: ошибка брокера не отменяет подтверждение
	if err := s.publisher.PublishBookingConfirmed(ctx, booking); err != nil {
		s.logger.Warn("Confirm: failed to publish event for booking id=%s: %v", id, err)
	}

	s.logger.Info("Confirm: successfully confirmed booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// Delete удаляет бронирование, пока оно не подтверждено
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting booking id=%s", id)

	booking, err := s.getBooking(ctx, "Delete", id)
	if err != nil {
		return err
	}

	if !booking.CanBeDeleted() {
		s.logger.Warn("Delete: booking id=%s is confirmed and cannot be deleted", id)
		return ErrCannotDelete
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}

// Search ищет бронирования по имени (без учёта регистра) или телефону
func (s *Service) Search(ctx context.Context, query string) (*models.BookingListResponse, error) {
	s.logger.Info("Search: query=%q", query)

	if strings.TrimSpace(query) == "" {
		return models.FromDomainBookingList(nil), nil
	}

	snapshot, err := s.loadSnapshot(ctx, "Search")
	if err != nil {
		return nil, err
	}

	found := domain.SearchBookings(snapshot.Bookings, query)
	s.logger.Info("Search: found %d bookings", len(found))
	return models.FromDomainBookingList(found), nil
}

// ListPending возвращает неподтверждённые бронирования по дате
func (s *Service) ListPending(ctx context.Context) (*models.BookingListResponse, error) {
	snapshot, err := s.loadSnapshot(ctx, "ListPending")
	if err != nil {
		return nil, err
	}

	pending := domain.PendingBookings(snapshot.Bookings)
	s.logger.Info("ListPending: %d pending bookings", len(pending))
	return models.FromDomainBookingList(pending), nil
}

// GetStats считает агрегированную статистику
func (s *Service) GetStats(ctx context.Context) (*models.StatsResponse, error) {
	snapshot, err := s.loadSnapshot(ctx, "GetStats")
	if err != nil {
		return nil, err
	}

	stats := domain.ComputeStats(snapshot.Bookings, len(snapshot.NonWorkingDays))
	s.logger.Info("GetStats: total=%d, confirmed=%d, pending=%d, nonWorkingDays=%d",
		stats.Total, stats.Confirmed, stats.Pending, stats.NonWorkingDays)
	return models.FromDomainStats(stats), nil
}

func (s *Service) getBooking(ctx context.Context, op, id string) (*domain.Booking, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) loadSnapshot(ctx context.Context, op string) (*domain.ScheduleSnapshot, error) {
	snapshot, err := s.schedule.Snapshot(ctx)
	if err != nil {
		s.logger.Error("%s: failed to load schedule: %v", op, err)
		return nil, fmt.Errorf("%w: %s - load schedule: %v", ErrInternal, op, err)
	}
	return snapshot, nil
}
