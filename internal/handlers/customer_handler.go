package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/barberbook/barberbook-web/internal/middleware"
	"github.com/barberbook/barberbook-web/internal/models"
	"github.com/barberbook/barberbook-web/internal/services"
)

type CustomerHandler struct {
	shops    *services.Shops
	bookings *services.Bookings
	log      *zap.Logger
}

func NewCustomerHandler(shops *services.Shops, bookings *services.Bookings, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{shops: shops, bookings: bookings, log: log}
}

// Dashboard loads the shop list and the caller's bookings in parallel.
// The join is all-or-nothing: if either fetch fails the page shows the
// error instead of a half-rendered view.
func (h *CustomerHandler) Dashboard(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var (
		shops        []models.Shop
		appointments []models.Appointment
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		shops, err = h.shops.List(ctx, sess.Token)
		return err
	})
	g.Go(func() error {
		var err error
		appointments, err = h.bookings.ListForCustomer(ctx, sess.Token)
		return err
	})

	if err := g.Wait(); err != nil {
		h.log.Error("failed to load customer dashboard", zap.Error(err))
		c.HTML(http.StatusBadGateway, "dashboard.html", gin.H{
			"User":  sess.User,
			"Error": err.Error(),
			"Tab":   "shops",
		})
		return
	}

	sortByDateDesc(appointments)

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":         sess.User,
		"Shops":        shops,
		"Appointments": appointments,
		"Tab":          c.DefaultQuery("tab", "shops"),
		"Booked":       c.Query("booked") == "1",
	})
}
