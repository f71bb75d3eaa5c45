package export_bookings

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// validateRequest проверяет диапазон и возвращает нормализованные границы
func validateRequest(req *Request) (string, string, error) {
	start := strings.TrimSpace(req.StartDate)
	end := strings.TrimSpace(req.EndDate)
	if start == "" || end == "" {
		return "", "", ErrMissingRange
	}

	start, err := domain.NormalizeDateKey(start)
	if err != nil {
		return "", "", fmt.Errorf("%w: startDate: %v", ErrInvalidDate, err)
	}
	end, err = domain.NormalizeDateKey(end)
	if err != nil {
		return "", "", fmt.Errorf("%w: endDate: %v", ErrInvalidDate, err)
	}

	if domain.CompareDateKeys(start, end) > 0 {
		return "", "", fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}
	return start, end, nil
}
