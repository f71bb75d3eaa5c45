package models

import bookingModels "github.com/m04kA/SMC-VenueCalendar/internal/service/bookings/models"

// DayLimitResponse лимит даты после изменения
type DayLimitResponse struct {
	Date      string `json:"date"`
	Limit     int    `json:"limit"`
	IsDefault bool   `json:"isDefault"`
}

// NonWorkingDayResponse состояние отметки нерабочего дня после переключения
type NonWorkingDayResponse struct {
	Date       string `json:"date"`
	NonWorking bool   `json:"nonWorking"`
}

// DayResponse детали даты для администратора
type DayResponse struct {
	Date           string                          `json:"date"`
	Limit          int                             `json:"limit"`
	HasCustomLimit bool                            `json:"hasCustomLimit"`
	Count          int                             `json:"count"`
	Remaining      int                             `json:"remaining"`
	NonWorking     bool                            `json:"nonWorking"`
	Status         string                          `json:"status"`
	Bookings       []bookingModels.BookingResponse `json:"bookings"`
}
