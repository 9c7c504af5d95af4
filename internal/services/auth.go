package services

import (
	"context"
	"net/http"
	"strconv"

	"github.com/barberbook/barberbook-web/internal/apiclient"
	"github.com/barberbook/barberbook-web/internal/dto"
	"github.com/barberbook/barberbook-web/internal/models"
)

type Auth struct {
	api *apiclient.Client
}

func NewAuth(api *apiclient.Client) *Auth {
	return &Auth{api: api}
}

type SignUpInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Role     models.Role
}

// SignUp registers a new account and returns the bearer token together
// with the profile to cache in the session.
func (s *Auth) SignUp(ctx context.Context, in SignUpInput) (string, models.User, error) {
	var resp dto.AuthResponse
	err := s.api.Do(ctx, http.MethodPost, "/register", "", dto.RegisterRequest{
		Name:     in.Name,
		Phone:    in.Phone,
		Email:    in.Email,
		Password: in.Password,
		Role:     string(in.Role),
	}, &resp)
	if err != nil {
		return "", models.User{}, err
	}

	user := models.User{
		ID:    strconv.FormatInt(resp.UserID, 10),
		Email: in.Email,
		Name:  in.Name,
		Phone: in.Phone,
		Role:  models.Role(resp.Role),
	}
	return resp.Token, user, nil
}

// SignIn exchanges credentials for a token. The backend does not echo
// name or phone here, so the cached profile carries them empty until a
// richer lookup exists.
func (s *Auth) SignIn(ctx context.Context, email, password string) (string, models.User, error) {
	var resp dto.AuthResponse
	err := s.api.Do(ctx, http.MethodPost, "/login", "", dto.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return "", models.User{}, err
	}

	user := models.User{
		ID:    strconv.FormatInt(resp.UserID, 10),
		Email: email,
		Role:  models.Role(resp.Role),
	}
	return resp.Token, user, nil
}

func (s *Auth) Me(ctx context.Context, token string) (models.Identity, error) {
	var resp dto.MeResponse
	if err := s.api.Do(ctx, http.MethodGet, "/me", token, nil, &resp); err != nil {
		return models.Identity{}, err
	}
	return models.Identity{
		ID:         strconv.FormatInt(resp.ID, 10),
		Role:       models.Role(resp.Role),
		HasProfile: resp.HasProfile,
	}, nil
}

func (s *Auth) SignOut(ctx context.Context, token string) error {
	return s.api.Do(ctx, http.MethodPost, "/logout", token, nil, nil)
}
