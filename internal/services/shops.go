package services

import (
	"context"
	"net/http"
	"strconv"

	"github.com/barberbook/barberbook-web/internal/apiclient"
	"github.com/barberbook/barberbook-web/internal/dto"
	"github.com/barberbook/barberbook-web/internal/models"
)

type Shops struct {
	api *apiclient.Client
}

func NewShops(api *apiclient.Client) *Shops {
	return &Shops{api: api}
}

type CreateShopInput struct {
	Name        string
	Description string
	Address     string
	Phone       string
	Email       string
	Hours       models.Hours
}

func (s *Shops) Create(ctx context.Context, token string, in CreateShopInput) error {
	return s.api.Do(ctx, http.MethodPost, "/barber/setup", token, dto.ShopSetupRequest{
		ShopName:       in.Name,
		Description:    in.Description,
		Address:        in.Address,
		Phone:          in.Phone,
		Email:          in.Email,
		OperatingHours: in.Hours,
	}, nil)
}

func (s *Shops) List(ctx context.Context, token string) ([]models.Shop, error) {
	var resp []dto.ShopDTO
	if err := s.api.Do(ctx, http.MethodGet, "/barbers", token, nil, &resp); err != nil {
		return nil, err
	}

	shops := make([]models.Shop, 0, len(resp))
	for _, d := range resp {
		shops = append(shops, shopFromDTO(d, false))
	}
	return shops, nil
}

func (s *Shops) GetByID(ctx context.Context, token, shopID string) (models.Shop, error) {
	var resp dto.ShopDTO
	if err := s.api.Do(ctx, http.MethodGet, "/barbers/"+shopID, token, nil, &resp); err != nil {
		return models.Shop{}, err
	}
	return shopFromDTO(resp, true), nil
}

// OwnerShop finds the shop belonging to the given barber user. The
// backend has no direct lookup, so this scans the full shop list and
// matches on owner id or email.
func (s *Shops) OwnerShop(ctx context.Context, token string, user models.User) (*models.Shop, error) {
	shops, err := s.List(ctx, token)
	if err != nil {
		return nil, err
	}
	for i := range shops {
		if shops[i].OwnerID == user.ID || shops[i].Email == user.Email {
			return &shops[i], nil
		}
	}
	return nil, nil
}

// The list endpoint does not expose a separate owner id; the shop id
// doubles as one, matching how the backend keys both.
func shopFromDTO(d dto.ShopDTO, withHours bool) models.Shop {
	id := strconv.FormatInt(d.ID, 10)
	shop := models.Shop{
		ID:          id,
		OwnerID:     id,
		Name:        d.ShopName,
		Description: d.Description,
		Address:     d.Address,
		Phone:       d.Phone,
		Email:       d.Email,
	}
	if withHours {
		shop.Hours = models.Hours(d.OperatingHours)
	}
	return shop
}
