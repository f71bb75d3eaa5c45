package domain

import (
	"sort"
	"strings"
)

// SearchBookings returns bookings whose name contains query case-insensitively
// or whose phone contains query as a raw substring. Empty query matches nothing.
func SearchBookings(bookings []Booking, query string) []Booking {
	result := make([]Booking, 0)
	if strings.TrimSpace(query) == "" {
		return result
	}

	lowered := strings.ToLower(query)
	for _, b := range bookings {
		if strings.Contains(strings.ToLower(b.Name), lowered) ||
			(b.Phone != "" && strings.Contains(b.Phone, query)) {
			result = append(result, b)
		}
	}

	SortBookings(result)
	return result
}

// PendingBookings returns unconfirmed bookings ordered by date
func PendingBookings(bookings []Booking) []Booking {
	result := make([]Booking, 0)
	for _, b := range bookings {
		if b.IsPending() {
			result = append(result, b)
		}
	}
	SortBookings(result)
	return result
}

// SortBookings orders bookings by date, then creation time, then id
func SortBookings(bookings []Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		if bookings[i].Date != bookings[j].Date {
			return bookings[i].Date < bookings[j].Date
		}
		if !bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].CreatedAt.Before(bookings[j].CreatedAt)
		}
		return bookings[i].ID < bookings[j].ID
	})
}
