package models

type Appointment struct {
	ID            string  `json:"id"`
	CustomerID    string  `json:"customerId"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	ShopID        string  `json:"shopId"`
	ShopName      string  `json:"shopName"`
	ServiceID     string  `json:"serviceId"`
	ServiceName   string  `json:"serviceName"`
	StaffID       string  `json:"staffId,omitempty"`
	StaffName     string  `json:"staffName,omitempty"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Status        string  `json:"status"`
	Price         float64 `json:"price"`
	Location      string  `json:"location"`
}
