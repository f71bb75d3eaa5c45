package domain

import (
	"fmt"
	"strings"
	"time"
)

// CalendarCell is one cell of a month grid.
// Leading placeholder cells have a zero Date.
type CalendarCell struct {
	Date time.Time
}

// IsPlaceholder returns true for alignment cells before day 1
func (c CalendarCell) IsPlaceholder() bool {
	return c.Date.IsZero()
}

// Day returns the day of month, 0 for placeholders
func (c CalendarCell) Day() int {
	if c.IsPlaceholder() {
		return 0
	}
	return c.Date.Day()
}

// DaysInMonth returns the length of month using day 0 of the next month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekdayOffset returns the column of weekday in a week that starts on weekStart
func WeekdayOffset(weekday, weekStart time.Weekday) int {
	return (int(weekday) - int(weekStart) + 7) % 7
}

// BuildMonthGrid builds the cells of a month: leading placeholders so that day 1
// lands under its weekday column, then one cell per day. No trailing padding.
func BuildMonthGrid(year int, month time.Month, weekStart time.Weekday, loc *time.Location) []CalendarCell {
	if loc == nil {
		loc = time.UTC
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	// Нормализуем на случай month вне диапазона 1..12
	year, month = first.Year(), first.Month()

	offset := WeekdayOffset(first.Weekday(), weekStart)
	days := DaysInMonth(year, month)

	cells := make([]CalendarCell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, CalendarCell{})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, CalendarCell{Date: time.Date(year, month, d, 0, 0, 0, 0, loc)})
	}

	return cells
}

// ShiftMonth returns the year and month delta months away from (year, month)
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// WeekDayLabels returns the seven column labels starting at weekStart
func WeekDayLabels(weekStart time.Weekday) []string {
	labels := make([]string, 7)
	for i := 0; i < 7; i++ {
		labels[i] = weekdayNames[(int(weekStart)+i)%7]
	}
	return labels
}

var weekdayNames = [7]string{
	"الأحد",
	"الاثنين",
	"الثلاثاء",
	"الأربعاء",
	"الخميس",
	"الجمعة",
	"السبت",
}

// ParseWeekday parses an English weekday name ("sunday", "Mon", ...)
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
