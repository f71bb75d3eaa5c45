package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-VenueCalendar/internal/infra/storage/schedule"
)

// UseCase use case для подачи заявки на бронирование
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	publisher    EventPublisher
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	publisher EventPublisher,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		publisher:    publisher,
		metrics:      metrics,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case подачи заявки.
// Занятость даты перечитывается из хранилища непосредственно перед записью.
// Проверка и запись не атомарны: параллельные заявки могут превысить лимит.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)
	uc.logger.Info("CreateBooking: date=%s", req.Date)

	// 1. Валидация входных данных
	date, err := validateRequest(req, uc.location)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.IncBookingRejected(reasonValidation)
		return nil, err
	}
	dateKey := domain.DateKey(date)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now().In(uc.location)
	today := domain.StartOfDay(now)

	// 3. Свежие данные по дате
	bookings, err := uc.bookingRepo.ListByDate(ctx, dateKey)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get bookings for %s: %v", dateKey, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	limit, err := uc.scheduleRepo.GetLimit(ctx, dateKey)
	if errors.Is(err, scheduleRepo.ErrLimitNotFound) {
		limit = domain.DefaultDateLimit
	} else if err != nil {
		uc.logger.Error("CreateBooking: failed to get limit for %s: %v", dateKey, err)
		return nil, fmt.Errorf("%w: failed to get limit: %v", ErrInternal, err)
	}

	nonWorking, err := uc.scheduleRepo.IsNonWorkingDay(ctx, dateKey)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check non-working day %s: %v", dateKey, err)
		return nil, fmt.Errorf("%w: failed to check non-working day: %v", ErrInternal, err)
	}

	// 4. Допуск по правилу доступности
	switch domain.Classify(date, len(bookings), limit, nonWorking, today, true) {
	case domain.DayPast:
		uc.logger.Warn("CreateBooking: date %s is in the past", dateKey)
		uc.metrics.IncBookingRejected(reasonPast)
		return nil, ErrDateInPast
	case domain.DayNonWorking:
		uc.logger.Warn("CreateBooking: date %s is a non-working day", dateKey)
		uc.metrics.IncBookingRejected(reasonNonWorking)
		return nil, ErrNonWorkingDay
	case domain.DayFull:
		uc.logger.Warn("CreateBooking: date %s is full, %d/%d", dateKey, len(bookings), limit)
		uc.metrics.IncBookingRejected(reasonFull)
		return nil, ErrDayFull
	}

	// 5. Сохраняем заявку
	booking := &domain.Booking{
		Date:            dateKey,
		Name:            req.Name,
		SecondaryName:   req.SecondaryName,
		Affiliation:     req.Affiliation,
		Venue:           req.Venue,
		ReadingMode:     req.ReadingMode,
		IncludedService: req.IncludedService,
		Phone:           req.Phone,
		Phone2:          req.Phone2,
		Email:           req.Email,
		Confirmed:       false,
		CreatedAt:       now,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.metrics.IncBookingSubmitted()
	uc.logger.Info("CreateBooking: successfully created booking id=%s, %d/%d", created.ID, len(bookings)+1, limit)

	// 6. Событие публикуется без влияния на результат
	if err := uc.publisher.PublishBookingSubmitted(ctx, created); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%s: %v", created.ID, err)
	}

	return &Response{
		ID:              created.ID,
		Date:            created.Date,
		Name:            created.Name,
		SecondaryName:   created.SecondaryName,
		Affiliation:     created.Affiliation,
		Venue:           created.Venue,
		ReadingMode:     created.ReadingMode,
		IncludedService: created.IncludedService,
		Phone:           created.Phone,
		Phone2:          created.Phone2,
		Email:           created.Email,
		Confirmed:       created.Confirmed,
		CreatedAt:       created.CreatedAt,
		Count:           len(bookings) + 1,
		Limit:           limit,
	}, nil
}
