package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/barberbook-web/internal/apiclient"
)

func TestTeamListByShopNormalizesSpecialty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/barbers/1/team", r.URL.Path)
		w.Write([]byte(`[
			{"id": 10, "name": "Mike", "specialty": "Fades"},
			{"id": 11, "name": "Tunde", "specialty": "Beard Trim"}
		]`))
	}))
	defer srv.Close()

	team := NewTeam(apiclient.New(srv.URL))
	staff, err := team.ListByShop(context.Background(), "tok", "1")
	require.NoError(t, err)
	require.Len(t, staff, 2)

	assert.Equal(t, "10", staff[0].ID)
	assert.Equal(t, "1", staff[0].ShopID)
	assert.Equal(t, []string{"Fades"}, staff[0].Specialties)
	assert.Equal(t, []string{"Beard Trim"}, staff[1].Specialties)
}

func TestTeamCreate(t *testing.T) {
	t.Parallel()

	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/barber/team", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"msg": "added"}`))
	}))
	defer srv.Close()

	team := NewTeam(apiclient.New(srv.URL))
	err := team.Create(context.Background(), "tok", CreateStaffInput{
		Name:           "Mike",
		Specialization: "Fades",
	})
	require.NoError(t, err)

	// The wire field is singular.
	assert.Equal(t, "Fades", body["specialty"])
}

func TestTeamDelete(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"msg": "removed"}`))
	}))
	defer srv.Close()

	team := NewTeam(apiclient.New(srv.URL))
	require.NoError(t, team.Delete(context.Background(), "tok", "10"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/barber/team/10", gotPath)
}
