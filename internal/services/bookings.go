package services

import (
	"context"
	"net/http"
	"strconv"

	"github.com/barberbook/barberbook-web/internal/apiclient"
	domain "github.com/barberbook/barberbook-web/internal/domain/appointment"
	"github.com/barberbook/barberbook-web/internal/dto"
	"github.com/barberbook/barberbook-web/internal/models"
)

// Bookings wraps the appointment lifecycle endpoints. Status rules
// live in the domain package; this adapter only translates shapes.
type Bookings struct {
	api *apiclient.Client
}

func NewBookings(api *apiclient.Client) *Bookings {
	return &Bookings{api: api}
}

type CreateBookingInput struct {
	BarberID  string
	ServiceID string
	Date      string
	Time      string
	Price     float64
}

func (s *Bookings) Create(ctx context.Context, token string, in CreateBookingInput) error {
	barberID, err := strconv.ParseInt(in.BarberID, 10, 64)
	if err != nil {
		return &apiclient.Error{Kind: apiclient.KindValidation, Message: "invalid shop id"}
	}
	serviceID, err := strconv.ParseInt(in.ServiceID, 10, 64)
	if err != nil {
		return &apiclient.Error{Kind: apiclient.KindValidation, Message: "invalid service id"}
	}

	return s.api.Do(ctx, http.MethodPost, "/book", token, dto.CreateBookingRequest{
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      in.Date,
		Time:      in.Time,
		Price:     in.Price,
	}, nil)
}

// ListForCustomer returns the caller's bookings. The endpoint does not
// echo the home/shop distinction, so location reads "shop" for every
// row regardless of how the booking was placed.
func (s *Bookings) ListForCustomer(ctx context.Context, token string) ([]models.Appointment, error) {
	var resp []dto.CustomerBookingDTO
	if err := s.api.Do(ctx, http.MethodGet, "/customer/bookings", token, nil, &resp); err != nil {
		return nil, err
	}

	appointments := make([]models.Appointment, 0, len(resp))
	for _, d := range resp {
		appointments = append(appointments, models.Appointment{
			ID:          strconv.FormatInt(d.ID, 10),
			ShopName:    d.Barber,
			ServiceName: d.Service,
			Date:        d.Date,
			Time:        d.Time,
			Status:      d.Status,
			Price:       d.Price,
			Location:    "shop",
		})
	}
	return appointments, nil
}

func (s *Bookings) ListForShop(ctx context.Context, token, shopID string) ([]models.Appointment, error) {
	var resp []dto.ShopBookingDTO
	if err := s.api.Do(ctx, http.MethodGet, "/barber/bookings", token, nil, &resp); err != nil {
		return nil, err
	}

	appointments := make([]models.Appointment, 0, len(resp))
	for _, d := range resp {
		appointments = append(appointments, models.Appointment{
			ID:            strconv.FormatInt(d.ID, 10),
			CustomerID:    formatOptionalID(d.CustomerID),
			CustomerName:  d.CustomerName,
			CustomerEmail: d.CustomerEmail,
			ShopID:        shopID,
			ServiceID:     formatOptionalID(d.ServiceID),
			ServiceName:   d.Service,
			StaffID:       formatOptionalID(d.StaffID),
			StaffName:     d.StaffName,
			Date:          d.Date,
			Time:          d.Time,
			Status:        d.Status,
			Price:         d.Price,
			Location:      "shop",
		})
	}
	return appointments, nil
}

// UpdateStatus requests a pending booking's decision. Anything other
// than the pending→approved / pending→rejected edges is refused
// locally before any request goes out.
func (s *Bookings) UpdateStatus(ctx context.Context, token, appointmentID string, status domain.Status) error {
	if err := domain.Decide(domain.StatusPending, status); err != nil {
		return &apiclient.Error{Kind: apiclient.KindValidation, Message: err.Error()}
	}

	return s.api.Do(ctx, http.MethodPatch, "/barber/bookings/"+appointmentID, token, dto.UpdateBookingStatusRequest{
		Status: string(status),
	}, nil)
}

func formatOptionalID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
