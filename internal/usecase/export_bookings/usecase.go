package export_bookings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// UseCase use case выгрузки подтвержденных бронирований в xlsx
type UseCase struct {
	source  BookingSource
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(source BookingSource, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		source:  source,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выгружает подтвержденные бронирования с start <= date <= end
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExportBookings: start=%s, end=%s", req.StartDate, req.EndDate)

	// 1. Валидация диапазона
	start, end, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ExportBookings: validation failed: %v", err)
		uc.metrics.IncExport(resultRejected)
		return nil, err
	}

	// 2. Получаем бронирования
	bookings, err := uc.source.Bookings(ctx)
	if err != nil {
		uc.logger.Error("ExportBookings: failed to get bookings: %v", err)
		uc.metrics.IncExport(resultError)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Отбор и проекция строк
	rows := selectRows(bookings, start, end)
	if len(rows) == 0 {
		uc.logger.Warn("ExportBookings: no confirmed bookings in %s..%s", start, end)
		uc.metrics.IncExport(resultEmpty)
		return nil, ErrNothingToExport
	}

	// 4. Книга
	content, err := buildWorkbook(rows)
	if err != nil {
		uc.logger.Error("ExportBookings: failed to build workbook: %v", err)
		uc.metrics.IncExport(resultError)
		return nil, fmt.Errorf("%w: failed to build workbook: %v", ErrInternal, err)
	}

	uc.metrics.IncExport(resultSuccess)
	uc.logger.Info("ExportBookings: exported %d rows", len(rows))

	return &Response{
		FileName:      FileName(start, end),
		ASCIIFileName: ASCIIFileName(start, end),
		Content:       content,
		Rows:          len(rows),
	}, nil
}

// selectRows отбирает подтвержденные бронирования диапазона в порядке даты и времени создания
func selectRows(bookings []domain.Booking, start, end string) []Row {
	selected := make([]domain.Booking, 0)
	for _, b := range bookings {
		if b.Confirmed && domain.DateKeyInRange(b.Date, start, end) {
			selected = append(selected, b)
		}
	}
	domain.SortBookings(selected)

	rows := make([]Row, 0, len(selected))
	for _, b := range selected {
		phone := b.Phone
		if phone == "" {
			phone = phonePlaceholder
		}
		rows = append(rows, Row{
			Date:   b.Date,
			Name:   b.Name,
			Phone:  phone,
			Status: statusConfirmed,
		})
	}
	return rows
}
