package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/barberbook-web/internal/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	s := &Session{
		ID:    "s1",
		Token: "tok",
		User:  models.User{ID: "9", Email: "a@b.com", Role: models.RoleCustomer},
	}
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)
	assert.Equal(t, models.RoleCustomer, got.User.Role)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCodec(t *testing.T) {
	t.Parallel()

	codec := NewCodec("test-secret")

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		signed, err := codec.Issue("session-42")
		require.NoError(t, err)

		id, err := codec.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, "session-42", id)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()
		signed, err := NewCodec("other-secret").Issue("session-42")
		require.NoError(t, err)

		_, err = codec.Verify(signed)
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()
		_, err := codec.Verify("not.a.token")
		require.Error(t, err)
	})
}

func newTestContext(t *testing.T, cookie string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		c.Request.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	return c, w
}

func TestManagerLifecycle(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	codec := NewCodec("test-secret")
	manager := NewManager(store, codec, false)

	user := models.User{ID: "3", Email: "c@d.com", Role: models.RoleBarber}

	c, w := newTestContext(t, "")
	created, err := manager.Create(c, "bearer-token", user)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	c2, _ := newTestContext(t, cookies[0].Value)
	current, ok := manager.Current(c2)
	require.True(t, ok)
	assert.Equal(t, "bearer-token", current.Token)
	assert.Equal(t, user, current.User)

	c3, w3 := newTestContext(t, cookies[0].Value)
	manager.Clear(c3)

	_, err = store.Get(context.Background(), created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	cleared := w3.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Less(t, cleared[0].MaxAge, 0)
}

func TestManagerCurrentRejectsTamperedCookie(t *testing.T) {
	t.Parallel()

	manager := NewManager(NewMemoryStore(), NewCodec("test-secret"), false)

	forged, err := NewCodec("attacker-secret").Issue("whatever")
	require.NoError(t, err)

	c, _ := newTestContext(t, forged)
	_, ok := manager.Current(c)
	assert.False(t, ok)
}
