package get_admin_calendar

import (
	visitorCalendar "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/get_calendar"
	getCalendar "github.com/m04kA/SMC-VenueCalendar/internal/usecase/get_calendar"
)

// AdminCalendarResponse HTTP response model
type AdminCalendarResponse struct {
	Year     int                      `json:"year"`
	Month    int                      `json:"month"`
	Today    string                     `json:"today"`
	Prev     visitorCalendar.MonthRef   `json:"prev"`
	Next     visitorCalendar.MonthRef   `json:"next"`
	WeekDays []string                   `json:"weekDays"`
	Cells    []Cell                     `json:"cells"`
}

// Cell ячейка сетки администратора с занятостью даты
type Cell struct {
	Placeholder bool   `json:"placeholder,omitempty"`
	Date        string `json:"date,omitempty"`
	Day         int    `json:"day,omitempty"`
	Status      string `json:"status,omitempty"`
	IsToday     bool   `json:"isToday,omitempty"`
	Count       int    `json:"count"`
	Limit       int    `json:"limit"`
	Remaining   int    `json:"remaining"`
	NonWorking  bool   `json:"nonWorking"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *AdminCalendarResponse {
	cells := make([]Cell, 0, len(resp.Cells))
	for _, c := range resp.Cells {
		if c.Placeholder {
			cells = append(cells, Cell{Placeholder: true})
			continue
		}
		cells = append(cells, Cell{
			Date:       c.Date,
			Day:        c.Day,
			Status:     string(c.Occupancy.Status),
			IsToday:    c.IsToday,
			Count:      c.Occupancy.Count,
			Limit:      c.Occupancy.Limit,
			Remaining:  c.Occupancy.Remaining(),
			NonWorking: c.Occupancy.NonWorking,
		})
	}

	return &AdminCalendarResponse{
		Year:     resp.Year,
		Month:    resp.Month,
		Today:    resp.Today,
		Prev:     visitorCalendar.MonthRef{Year: resp.Prev.Year, Month: resp.Prev.Month},
		Next:     visitorCalendar.MonthRef{Year: resp.Next.Year, Month: resp.Next.Month},
		WeekDays: resp.WeekDays,
		Cells:    cells,
	}
}
