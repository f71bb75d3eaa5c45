package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// UseCase use case построения месячной сетки с занятостью дат
type UseCase struct {
	source       ScheduleSource
	options      Options
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(source ScheduleSource, options Options, logger Logger) *UseCase {
	if options.Location == nil {
		options.Location = time.UTC
	}
	return &UseCase{
		source:       source,
		options:      options,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит сетку месяца
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now().In(uc.options.Location)
	today := domain.StartOfDay(now)

	year, month := req.Year, req.Month
	if year == 0 {
		year = today.Year()
	}
	if month == 0 {
		month = int(today.Month())
	}

	// 1. Валидация
	if err := validateRequest(year, month); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Состояние коллекций
	snapshot, err := uc.source.Snapshot(ctx)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	// 3. Сетка и классификация каждой даты
	grid := domain.BuildMonthGrid(year, time.Month(month), uc.options.WeekStart, uc.options.Location)
	todayKey := domain.DateKey(today)

	cells := make([]Cell, 0, len(grid))
	for _, c := range grid {
		if c.IsPlaceholder() {
			cells = append(cells, Cell{Placeholder: true})
			continue
		}
		occupancy := snapshot.OccupancyFor(c.Date, today, uc.options.RestrictPast)
		cells = append(cells, Cell{
			Date:      occupancy.Date,
			Day:       c.Day(),
			IsToday:   occupancy.Date == todayKey,
			Occupancy: occupancy,
		})
	}

	prevYear, prevMonth := domain.ShiftMonth(year, time.Month(month), -1)
	nextYear, nextMonth := domain.ShiftMonth(year, time.Month(month), 1)

	uc.logger.Info("GetCalendar: built %04d-%02d with %d cells", year, month, len(cells))

	return &Response{
		Year:     year,
		Month:    month,
		Today:    todayKey,
		Prev:     MonthRef{Year: prevYear, Month: int(prevMonth)},
		Next:     MonthRef{Year: nextYear, Month: int(nextMonth)},
		WeekDays: domain.WeekDayLabels(uc.options.WeekStart),
		Cells:    cells,
	}, nil
}
