package services

import (
	"context"
	"net/http"
	"strconv"

	"github.com/barberbook/barberbook-web/internal/apiclient"
	"github.com/barberbook/barberbook-web/internal/dto"
	"github.com/barberbook/barberbook-web/internal/models"
)

// Team wraps the per-shop staff endpoints.
type Team struct {
	api *apiclient.Client
}

func NewTeam(api *apiclient.Client) *Team {
	return &Team{api: api}
}

type CreateStaffInput struct {
	Name           string
	Specialization string
}

func (s *Team) Create(ctx context.Context, token string, in CreateStaffInput) error {
	return s.api.Do(ctx, http.MethodPost, "/barber/team", token, dto.CreateStaffRequest{
		Name:      in.Name,
		Specialty: in.Specialization,
	}, nil)
}

// ListByShop normalizes the backend's singular specialty field into a
// one-element Specialties list. Views still fall back to the legacy
// Specialization field when the list is empty, since older backend
// rows ship that shape instead.
func (s *Team) ListByShop(ctx context.Context, token, shopID string) ([]models.Staff, error) {
	var resp []dto.StaffDTO
	if err := s.api.Do(ctx, http.MethodGet, "/barbers/"+shopID+"/team", token, nil, &resp); err != nil {
		return nil, err
	}

	staff := make([]models.Staff, 0, len(resp))
	for _, d := range resp {
		staff = append(staff, models.Staff{
			ID:          strconv.FormatInt(d.ID, 10),
			ShopID:      shopID,
			Name:        d.Name,
			Specialties: []string{d.Specialty},
		})
	}
	return staff, nil
}

func (s *Team) Delete(ctx context.Context, token, staffID string) error {
	return s.api.Do(ctx, http.MethodDelete, "/barber/team/"+staffID, token, nil, nil)
}
