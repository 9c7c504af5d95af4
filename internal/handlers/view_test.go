package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barberbook/barberbook-web/internal/models"
)

func TestStatusClass(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "badge badge-approved", statusClass("approved"))
	assert.Equal(t, "badge badge-rejected", statusClass("rejected"))
	assert.Equal(t, "badge badge-completed", statusClass("completed"))
	assert.Equal(t, "badge badge-pending", statusClass("pending"))
	assert.Equal(t, "badge badge-pending", statusClass("anything else"))
}

func TestTitleize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Pending", titleize("pending"))
	assert.Equal(t, "Monday", titleize("monday"))
	assert.Equal(t, "", titleize(""))
}

func TestLongDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Friday, January 10, 2025", longDate("2025-01-10"))
	assert.Equal(t, "10/01/2025", longDate("10/01/2025"), "unparseable dates pass through")
}

func TestMoney(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "₦3500", money(3500))
	assert.Equal(t, "₦3500.50", money(3500.5))
	assert.Equal(t, "₦0", money(0))
}

func TestSortByDateDesc(t *testing.T) {
	t.Parallel()

	appointments := []models.Appointment{
		{ID: "1", Date: "2025-01-01"},
		{ID: "2", Date: "2025-03-01"},
		{ID: "3", Date: "2025-02-01"},
	}
	sortByDateDesc(appointments)

	assert.Equal(t, "2", appointments[0].ID)
	assert.Equal(t, "3", appointments[1].ID)
	assert.Equal(t, "1", appointments[2].ID)
}

func TestFilterByStatus(t *testing.T) {
	t.Parallel()

	appointments := []models.Appointment{
		{ID: "1", Status: "pending"},
		{ID: "2", Status: "approved"},
		{ID: "3", Status: "pending"},
	}

	pending := filterByStatus(appointments, "pending")
	assert.Len(t, pending, 2)
	assert.Equal(t, "1", pending[0].ID)
	assert.Equal(t, "3", pending[1].ID)

	assert.Empty(t, filterByStatus(appointments, "rejected"))
}
