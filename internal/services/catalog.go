package services

import (
	"context"
	"net/http"
	"strconv"

	"github.com/barberbook/barberbook-web/internal/apiclient"
	"github.com/barberbook/barberbook-web/internal/dto"
	"github.com/barberbook/barberbook-web/internal/models"
)

// Catalog wraps the per-shop service (offering) endpoints.
type Catalog struct {
	api *apiclient.Client
}

func NewCatalog(api *apiclient.Client) *Catalog {
	return &Catalog{api: api}
}

type CreateServiceInput struct {
	Name        string
	Description string
	Price       float64
	Duration    int
}

func (s *Catalog) Create(ctx context.Context, token string, in CreateServiceInput) error {
	return s.api.Do(ctx, http.MethodPost, "/barber/services", token, dto.CreateServiceRequest{
		Name:        in.Name,
		Price:       in.Price,
		Duration:    in.Duration,
		Description: in.Description,
	}, nil)
}

func (s *Catalog) ListByShop(ctx context.Context, token, shopID string) ([]models.Service, error) {
	var resp []dto.ServiceDTO
	if err := s.api.Do(ctx, http.MethodGet, "/barbers/"+shopID+"/services", token, nil, &resp); err != nil {
		return nil, err
	}

	services := make([]models.Service, 0, len(resp))
	for _, d := range resp {
		services = append(services, models.Service{
			ID:          strconv.FormatInt(d.ID, 10),
			ShopID:      shopID,
			Name:        d.Name,
			Description: d.Description,
			Price:       d.Price,
			Duration:    d.Duration,
		})
	}
	return services, nil
}

func (s *Catalog) Delete(ctx context.Context, token, serviceID string) error {
	return s.api.Do(ctx, http.MethodDelete, "/barber/services/"+serviceID, token, nil, nil)
}
