package get_calendar

import (
	"fmt"
	"net/url"
	"strconv"

	getCalendar "github.com/m04kA/SMC-VenueCalendar/internal/usecase/get_calendar"
)

// MonthRef ссылка на соседний месяц
type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Year     int      `json:"year"`
	Month    int      `json:"month"`
	Today    string   `json:"today"`
	Prev     MonthRef `json:"prev"`
	Next     MonthRef `json:"next"`
	WeekDays []string `json:"weekDays"`
	Cells    []Cell   `json:"cells"`
}

// Cell ячейка сетки посетителя, без количества бронирований
type Cell struct {
	Placeholder bool   `json:"placeholder,omitempty"`
	Date        string `json:"date,omitempty"`
	Day         int    `json:"day,omitempty"`
	Status      string `json:"status,omitempty"`
	IsToday     bool   `json:"isToday,omitempty"`
}

// ParseMonthQuery разбирает year и month из query. Отсутствующие значения возвращаются как 0.
func ParseMonthQuery(query url.Values) (*getCalendar.Request, error) {
	req := &getCalendar.Request{}

	if s := query.Get("year"); s != "" {
		year, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q: %w", s, err)
		}
		req.Year = year
	}
	if s := query.Get("month"); s != "" {
		month, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid month %q: %w", s, err)
		}
		req.Month = month
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	cells := make([]Cell, 0, len(resp.Cells))
	for _, c := range resp.Cells {
		if c.Placeholder {
			cells = append(cells, Cell{Placeholder: true})
			continue
		}
		cells = append(cells, Cell{
			Date:    c.Date,
			Day:     c.Day,
			Status:  string(c.Occupancy.Status),
			IsToday: c.IsToday,
		})
	}

	return &CalendarResponse{
		Year:     resp.Year,
		Month:    resp.Month,
		Today:    resp.Today,
		Prev:     MonthRef{Year: resp.Prev.Year, Month: resp.Prev.Month},
		Next:     MonthRef{Year: resp.Next.Year, Month: resp.Next.Month},
		WeekDays: resp.WeekDays,
		Cells:    cells,
	}
}
