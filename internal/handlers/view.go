package handlers

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/barberbook/barberbook-web/internal/models"
)

// TemplateFuncs are the helpers every page template can use.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"statusClass": statusClass,
		"titleize":    titleize,
		"longDate":    longDate,
		"money":       money,
	}
}

func statusClass(status string) string {
	switch status {
	case "approved":
		return "badge badge-approved"
	case "rejected":
		return "badge badge-rejected"
	case "completed":
		return "badge badge-completed"
	default:
		return "badge badge-pending"
	}
}

func titleize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// longDate renders "2025-01-10" as "Friday, January 10, 2025"; inputs
// the backend sends in any other shape pass through untouched.
func longDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

func money(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("₦%d", int64(v))
	}
	return fmt.Sprintf("₦%.2f", v)
}

// sortByDateDesc orders appointments newest first, the way the
// customer list is presented.
func sortByDateDesc(appointments []models.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		ti, erri := time.Parse("2006-01-02", appointments[i].Date)
		tj, errj := time.Parse("2006-01-02", appointments[j].Date)
		if erri != nil || errj != nil {
			return appointments[i].Date > appointments[j].Date
		}
		return ti.After(tj)
	})
}

func filterByStatus(appointments []models.Appointment, status string) []models.Appointment {
	out := make([]models.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}
