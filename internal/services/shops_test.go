package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/barberbook-web/internal/apiclient"
	"github.com/barberbook/barberbook-web/internal/models"
)

const shopListJSON = `[
	{"id": 1, "shop_name": "Fade Masters", "description": "Classic cuts", "address": "1 Main St", "phone": "0801", "email": "fade@example.com"},
	{"id": 2, "shop_name": "Sharp Edge", "address": "2 High St", "phone": "0802", "email": "sharp@example.com"}
]`

func newShopBackend(t *testing.T) (*Shops, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/barbers":
			w.Write([]byte(shopListJSON))
		case r.URL.Path == "/barbers/1":
			w.Write([]byte(`{"id": 1, "shop_name": "Fade Masters", "email": "fade@example.com", "operating_hours": {"monday": "09:00-18:00", "sunday": "closed"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "not found"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return NewShops(apiclient.New(srv.URL)), srv
}

func TestShopsList(t *testing.T) {
	t.Parallel()

	shops, _ := newShopBackend(t)
	got, err := shops.List(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "1", got[0].OwnerID)
	assert.Equal(t, "Fade Masters", got[0].Name)
	assert.Nil(t, got[0].Hours, "the list endpoint carries no hours")
}

func TestShopsListIsIdempotent(t *testing.T) {
	t.Parallel()

	shops, _ := newShopBackend(t)
	ctx := context.Background()

	first, err := shops.List(ctx, "tok")
	require.NoError(t, err)
	second, err := shops.List(ctx, "tok")
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestShopsGetByID(t *testing.T) {
	t.Parallel()

	shops, _ := newShopBackend(t)
	shop, err := shops.GetByID(context.Background(), "tok", "1")
	require.NoError(t, err)

	assert.Equal(t, "Fade Masters", shop.Name)
	require.NotNil(t, shop.Hours)
	assert.Equal(t, "09:00-18:00", shop.Hours["monday"])
	assert.Equal(t, "closed", shop.Hours["sunday"])

	_, err = shops.GetByID(context.Background(), "tok", "99")
	assert.Equal(t, apiclient.KindNotFound, apiclient.KindOf(err))
}

func TestOwnerShop(t *testing.T) {
	t.Parallel()

	shops, _ := newShopBackend(t)
	ctx := context.Background()

	t.Run("matches by owner id", func(t *testing.T) {
		t.Parallel()
		shop, err := shops.OwnerShop(ctx, "tok", models.User{ID: "2", Email: "nobody@example.com"})
		require.NoError(t, err)
		require.NotNil(t, shop)
		assert.Equal(t, "Sharp Edge", shop.Name)
	})

	t.Run("matches by email", func(t *testing.T) {
		t.Parallel()
		shop, err := shops.OwnerShop(ctx, "tok", models.User{ID: "77", Email: "fade@example.com"})
		require.NoError(t, err)
		require.NotNil(t, shop)
		assert.Equal(t, "Fade Masters", shop.Name)
	})

	t.Run("no shop yet", func(t *testing.T) {
		t.Parallel()
		shop, err := shops.OwnerShop(ctx, "tok", models.User{ID: "77", Email: "new@example.com"})
		require.NoError(t, err)
		assert.Nil(t, shop)
	})
}

func TestShopsCreate(t *testing.T) {
	t.Parallel()

	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"msg": "created"}`))
	}))
	defer srv.Close()

	shops := NewShops(apiclient.New(srv.URL))
	err := shops.Create(context.Background(), "tok", CreateShopInput{
		Name:    "Fade Masters",
		Address: "1 Main St",
		Phone:   "0801",
		Email:   "fade@example.com",
		Hours:   models.Hours{"monday": "09:00-18:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/barber/setup", gotPath)
	assert.Equal(t, "Bearer tok", gotAuth)
}
