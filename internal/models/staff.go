package models

// Staff carries both specialty shapes the backend has shipped over
// time: the normalized Specialties list and the legacy singular
// Specialization. Readers must accept either.
type Staff struct {
	ID             string   `json:"id"`
	ShopID         string   `json:"shopId"`
	Name           string   `json:"name"`
	Specialties    []string `json:"specialties"`
	Specialization string   `json:"specialization,omitempty"`
	Image          string   `json:"image,omitempty"`
}
