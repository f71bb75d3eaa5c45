package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// normalizeRequest обрезает пробелы во всех текстовых полях
func normalizeRequest(req *Request) {
	req.Date = strings.TrimSpace(req.Date)
	req.Name = strings.TrimSpace(req.Name)
	req.SecondaryName = strings.TrimSpace(req.SecondaryName)
	req.Affiliation = strings.TrimSpace(req.Affiliation)
	req.Venue = strings.TrimSpace(req.Venue)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Phone2 = strings.TrimSpace(req.Phone2)
	req.Email = strings.TrimSpace(req.Email)
}

// validateRequest валидирует входные данные запроса и возвращает дату бронирования
func validateRequest(req *Request, loc *time.Location) (time.Time, error) {
	if req.Date == "" {
		return time.Time{}, ErrMissingDate
	}

	date, err := domain.ParseDateKey(req.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	if req.Name == "" {
		return time.Time{}, ErrMissingName
	}
	if utf8.RuneCountInString(req.Name) > domain.MaxNameLength {
		return time.Time{}, fmt.Errorf("%w: name", ErrFieldTooLong)
	}

	// Порядок полей совпадает с порядком в форме
	fields := []struct {
		name  string
		value string
	}{
		{"secondaryName", req.SecondaryName},
		{"affiliation", req.Affiliation},
		{"venue", req.Venue},
		{"phone", req.Phone},
		{"phone2", req.Phone2},
		{"email", req.Email},
	}
	for _, field := range fields {
		if utf8.RuneCountInString(field.value) > domain.MaxFieldLength {
			return time.Time{}, fmt.Errorf("%w: %s", ErrFieldTooLong, field.name)
		}
	}

	if !req.ReadingMode.IsValid() {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidReadingMode, req.ReadingMode)
	}

	// Email необязателен, но если указан - должен быть корректным
	if req.Email != "" {
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidEmail, err)
		}
	}

	return date, nil
}
