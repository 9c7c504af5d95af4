package shop

import (
	"time"

	"github.com/barberbook/barberbook-web/internal/models"
)

const Closed = "closed"

var dayKeys = [...]string{
	"sunday", "monday", "tuesday", "wednesday",
	"thursday", "friday", "saturday",
}

// DayKey returns the lowercase weekday name used in the hours map.
func DayKey(t time.Time) string {
	return dayKeys[int(t.Weekday())]
}

// TodayHours evaluates the hours map for the given moment. A missing
// or "closed" entry reads as Closed.
func TodayHours(h models.Hours, now time.Time) string {
	if h == nil {
		return "Closed"
	}
	v, ok := h[DayKey(now)]
	if !ok || v == "" || v == Closed {
		return "Closed"
	}
	return v
}

// IsOpen reports whether the shop has any hours that day.
func IsOpen(h models.Hours, now time.Time) bool {
	return TodayHours(h, now) != "Closed"
}
