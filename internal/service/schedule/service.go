package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	bookingModels "github.com/m04kA/SMC-VenueCalendar/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/schedule/models"
)

// Service управление вместимостью дат и нерабочими днями
type Service struct {
	repo         ScheduleRepository
	source       ScheduleSource
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	repo ScheduleRepository,
	source ScheduleSource,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repo:         repo,
		source:       source,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SetLimit задаёт вместимость даты (0..7)
func (s *Service) SetLimit(ctx context.Context, date string, limit int) (*models.DayLimitResponse, error) {
	s.logger.Info("SetLimit: date=%s, limit=%d", date, limit)

	key, err := normalizeDate(date)
	if err != nil {
		s.logger.Warn("SetLimit: %v", err)
		return nil, err
	}

	if limit < domain.MinDateLimit || limit > domain.MaxDateLimit {
		s.logger.Warn("SetLimit: limit=%d out of range for date=%s", limit, key)
		return nil, fmt.Errorf("%w: must be between %d and %d", ErrInvalidLimit, domain.MinDateLimit, domain.MaxDateLimit)
	}

	if err := s.repo.SetLimit(ctx, key, limit); err != nil {
		s.logger.Error("SetLimit: repository error for date=%s: %v", key, err)
		return nil, fmt.Errorf("%w: SetLimit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetLimit: date=%s limit set to %d", key, limit)
	return &models.DayLimitResponse{Date: key, Limit: limit, IsDefault: false}, nil
}

// ResetLimit удаляет явный лимит, дата возвращается к лимиту по умолчанию
func (s *Service) ResetLimit(ctx context.Context, date string) (*models.DayLimitResponse, error) {
	s.logger.Info("ResetLimit: date=%s", date)

	key, err := normalizeDate(date)
	if err != nil {
		s.logger.Warn("ResetLimit: %v", err)
		return nil, err
	}

	if err := s.repo.DeleteLimit(ctx, key); err != nil {
		s.logger.Error("ResetLimit: repository error for date=%s: %v", key, err)
		return nil, fmt.Errorf("%w: ResetLimit - repository error: %v", ErrInternal, err)
	}

	return &models.DayLimitResponse{Date: key, Limit: domain.DefaultDateLimit, IsDefault: true}, nil
}

// ToggleNonWorkingDay переключает отметку нерабочего дня.
// Текущее состояние читается из хранилища, а не из кэша.
func (s *Service) ToggleNonWorkingDay(ctx context.Context, date string) (*models.NonWorkingDayResponse, error) {
	s.logger.Info("ToggleNonWorkingDay: date=%s", date)

	key, err := normalizeDate(date)
	if err != nil {
		s.logger.Warn("ToggleNonWorkingDay: %v", err)
		return nil, err
	}

	marked, err := s.repo.IsNonWorkingDay(ctx, key)
	if err != nil {
		s.logger.Error("ToggleNonWorkingDay: repository error for date=%s: %v", key, err)
		return nil, fmt.Errorf("%w: ToggleNonWorkingDay - read: %v", ErrInternal, err)
	}

	if marked {
		err = s.repo.RemoveNonWorkingDay(ctx, key)
	} else {
		err = s.repo.SetNonWorkingDay(ctx, key)
	}
	if err != nil {
		s.logger.Error("ToggleNonWorkingDay: repository error for date=%s: %v", key, err)
		return nil, fmt.Errorf("%w: ToggleNonWorkingDay - write: %v", ErrInternal, err)
	}

	s.logger.Info("ToggleNonWorkingDay: date=%s nonWorking=%t", key, !marked)
	return &models.NonWorkingDayResponse{Date: key, NonWorking: !marked}, nil
}

// GetDay возвращает детали даты для администратора
func (s *Service) GetDay(ctx context.Context, date string) (*models.DayResponse, error) {
	key, err := normalizeDate(date)
	if err != nil {
		s.logger.Warn("GetDay: %v", err)
		return nil, err
	}

	snapshot, err := s.source.Snapshot(ctx)
	if err != nil {
		s.logger.Error("GetDay: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: GetDay - load schedule: %v", ErrInternal, err)
	}

	day, _ := domain.ParseDateKey(key, s.location)
	today := domain.StartOfDay(s.timeProvider.Now().In(s.location))
	occupancy := snapshot.OccupancyFor(day, today, false)

	bookings := snapshot.BookingsOn(key)
	domain.SortBookings(bookings)

	return &models.DayResponse{
		Date:           key,
		Limit:          occupancy.Limit,
		HasCustomLimit: snapshot.HasCustomLimit(key),
		Count:          occupancy.Count,
		Remaining:      occupancy.Remaining(),
		NonWorking:     occupancy.NonWorking,
		Status:         string(occupancy.Status),
		Bookings:       bookingModels.FromDomainBookingList(bookings).Bookings,
	}, nil
}

func normalizeDate(date string) (string, error) {
	key, err := domain.NormalizeDateKey(date)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return key, nil
}
