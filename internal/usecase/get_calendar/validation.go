package get_calendar

import "fmt"

const (
	minYear = 1970
	maxYear = 9999
)

// validateRequest проверяет год и месяц после подстановки значений по умолчанию
func validateRequest(year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	if year < minYear || year > maxYear {
		return fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	return nil
}
