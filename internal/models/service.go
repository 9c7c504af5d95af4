package models

type Service struct {
	ID          string  `json:"id"`
	ShopID      string  `json:"shopId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
}
