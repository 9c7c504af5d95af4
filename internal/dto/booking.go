package dto

type CreateBookingRequest struct {
	BarberID  int64   `json:"barber_id"`
	ServiceID int64   `json:"service_id"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Price     float64 `json:"price"`
}

// CustomerBookingDTO is the /customer/bookings row: the backend sends
// display names, not ids, for the shop and service.
type CustomerBookingDTO struct {
	ID      int64   `json:"id"`
	Barber  string  `json:"barber"`
	Service string  `json:"service"`
	Date    string  `json:"date"`
	Time    string  `json:"time"`
	Status  string  `json:"status"`
	Price   float64 `json:"price"`
}

// ShopBookingDTO is the /barber/bookings row. Several fields arrive
// only on newer backend versions, hence the pointers.
type ShopBookingDTO struct {
	ID            int64   `json:"id"`
	CustomerID    *int64  `json:"customer_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	ServiceID     *int64  `json:"service_id"`
	Service       string  `json:"service"`
	StaffID       *int64  `json:"staff_id"`
	StaffName     string  `json:"staff_name"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Status        string  `json:"status"`
	Price         float64 `json:"price"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}
