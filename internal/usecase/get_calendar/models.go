package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// Options настройки сетки
type Options struct {
	Location     *time.Location // часовой пояс "сегодня" и ключей дат
	WeekStart    time.Weekday   // первый столбец сетки
	RestrictPast bool           // прошедшие даты получают статус past (режим посетителя)
}

// Request модель запроса месяца. Нулевые Year/Month означают текущий месяц.
type Request struct {
	Year  int
	Month int // 1..12
}

// MonthRef ссылка на соседний месяц
type MonthRef struct {
	Year  int
	Month int
}

// Response сетка месяца
type Response struct {
	Year     int
	Month    int
	Today    string
	Prev     MonthRef
	Next     MonthRef
	WeekDays []string
	Cells    []Cell
}

// Cell ячейка сетки. Для выравнивающих ячеек Placeholder=true и остальные поля пустые.
type Cell struct {
	Placeholder bool
	Date        string
	Day         int
	IsToday     bool
	Occupancy   domain.DayOccupancy
}
