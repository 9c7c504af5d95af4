package models

// Hours maps lowercase weekday names to "HH:MM-HH:MM" or "closed".
// A missing key means the shop is unavailable that day.
type Hours map[string]string

type Shop struct {
	ID          string `json:"id"`
	OwnerID     string `json:"ownerId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Hours       Hours  `json:"hours,omitempty"`
	Image       string `json:"image,omitempty"`
}
