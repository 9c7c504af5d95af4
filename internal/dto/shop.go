package dto

type ShopSetupRequest struct {
	ShopName       string            `json:"shop_name"`
	Description    string            `json:"description"`
	Address        string            `json:"address"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email"`
	OperatingHours map[string]string `json:"operating_hours"`
}

type ShopDTO struct {
	ID             int64             `json:"id"`
	ShopName       string            `json:"shop_name"`
	Description    string            `json:"description"`
	Address        string            `json:"address"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email"`
	OperatingHours map[string]string `json:"operating_hours,omitempty"`
}
