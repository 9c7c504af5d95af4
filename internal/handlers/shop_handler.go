package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/barberbook/barberbook-web/internal/activity"
	"github.com/barberbook/barberbook-web/internal/apiclient"
	shopdomain "github.com/barberbook/barberbook-web/internal/domain/shop"
	"github.com/barberbook/barberbook-web/internal/middleware"
	"github.com/barberbook/barberbook-web/internal/models"
	"github.com/barberbook/barberbook-web/internal/services"
)

// ShopHandler drives the customer-facing shop detail page and the
// booking action on it.
type ShopHandler struct {
	shops    *services.Shops
	catalog  *services.Catalog
	team     *services.Team
	bookings *services.Bookings
	activity *activity.Dispatcher
	log      *zap.Logger
}

func NewShopHandler(
	shops *services.Shops,
	catalog *services.Catalog,
	team *services.Team,
	bookings *services.Bookings,
	dispatcher *activity.Dispatcher,
	log *zap.Logger,
) *ShopHandler {
	return &ShopHandler{
		shops:    shops,
		catalog:  catalog,
		team:     team,
		bookings: bookings,
		activity: dispatcher,
		log:      log,
	}
}

type bookingForm struct {
	ServiceID string `form:"service_id" binding:"required"`
	StaffID   string `form:"staff_id"`
	Date      string `form:"date" binding:"required"`
	Time      string `form:"time" binding:"required"`
}

// Detail shows one shop with its services and staff. Services and
// staff are fetched concurrently after the shop itself resolves.
func (h *ShopHandler) Detail(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	shopID := c.Param("id")

	shop, err := h.shops.GetByID(c.Request.Context(), sess.Token, shopID)
	if err != nil {
		if apiclient.KindOf(err) == apiclient.KindNotFound {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		c.HTML(http.StatusBadGateway, "shop_detail.html", gin.H{
			"User":  sess.User,
			"Error": err.Error(),
		})
		return
	}

	var (
		catalog []models.Service
		staff   []models.Staff
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		catalog, err = h.catalog.ListByShop(ctx, sess.Token, shopID)
		return err
	})
	g.Go(func() error {
		var err error
		staff, err = h.team.ListByShop(ctx, sess.Token, shopID)
		return err
	})

	if err := g.Wait(); err != nil {
		h.log.Error("failed to load shop detail", zap.Error(err), zap.String("shop_id", shopID))
		c.HTML(http.StatusBadGateway, "shop_detail.html", gin.H{
			"User":  sess.User,
			"Shop":  shop,
			"Error": err.Error(),
		})
		return
	}

	c.HTML(http.StatusOK, "shop_detail.html", gin.H{
		"User":       sess.User,
		"Shop":       shop,
		"Services":   catalog,
		"Staff":      staff,
		"TodayHours": shopdomain.TodayHours(shop.Hours, time.Now()),
		"Error":      c.Query("error"),
		"MinDate":    time.Now().Format("2006-01-02"),
	})
}

// Book creates a pending appointment for the selected service. The
// price comes from the shop's own catalog, never from the form. Staff
// selection is a preference only and is not sent to the backend.
func (h *ShopHandler) Book(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	shopID := c.Param("id")

	var form bookingForm
	if err := c.ShouldBind(&form); err != nil {
		h.bookingFailed(c, shopID, "Please choose a service, date and time.")
		return
	}

	day, err := time.Parse("2006-01-02", form.Date)
	if err != nil {
		h.bookingFailed(c, shopID, "Invalid booking date.")
		return
	}
	today, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))
	if day.Before(today) {
		h.bookingFailed(c, shopID, "Booking date cannot be in the past.")
		return
	}

	ctx := c.Request.Context()
	catalog, err := h.catalog.ListByShop(ctx, sess.Token, shopID)
	if err != nil {
		h.bookingFailed(c, shopID, err.Error())
		return
	}

	var selected *models.Service
	for i := range catalog {
		if catalog[i].ID == form.ServiceID {
			selected = &catalog[i]
			break
		}
	}
	if selected == nil {
		h.bookingFailed(c, shopID, "Selected service is no longer available.")
		return
	}

	err = h.bookings.Create(ctx, sess.Token, services.CreateBookingInput{
		BarberID:  shopID,
		ServiceID: selected.ID,
		Date:      form.Date,
		Time:      form.Time,
		Price:     selected.Price,
	})
	if err != nil {
		h.bookingFailed(c, shopID, err.Error())
		return
	}

	h.activity.Dispatch(activity.Event{
		UserID:   sess.User.ID,
		Role:     string(sess.User.Role),
		Action:   "booking_created",
		Entity:   "appointment",
		EntityID: selected.ID,
	})

	c.Redirect(http.StatusFound, "/dashboard?tab=appointments&booked=1")
}

func (h *ShopHandler) bookingFailed(c *gin.Context, shopID, message string) {
	c.Redirect(http.StatusFound, "/shop/"+shopID+"?error="+url.QueryEscape(message))
}
