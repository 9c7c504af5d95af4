package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/barberbook/barberbook-web/internal/activity"
	"github.com/barberbook/barberbook-web/internal/apiclient"
	domain "github.com/barberbook/barberbook-web/internal/domain/appointment"
	"github.com/barberbook/barberbook-web/internal/middleware"
	"github.com/barberbook/barberbook-web/internal/models"
	"github.com/barberbook/barberbook-web/internal/services"
	"github.com/barberbook/barberbook-web/internal/session"
)

// OwnerHandler drives the shop owner dashboard: resource management
// and the booking request queue.
type OwnerHandler struct {
	auth     *services.Auth
	shops    *services.Shops
	catalog  *services.Catalog
	team     *services.Team
	bookings *services.Bookings
	sessions *session.Manager
	activity *activity.Dispatcher
	log      *zap.Logger
}

func NewOwnerHandler(
	auth *services.Auth,
	shops *services.Shops,
	catalog *services.Catalog,
	team *services.Team,
	bookings *services.Bookings,
	sessions *session.Manager,
	dispatcher *activity.Dispatcher,
	log *zap.Logger,
) *OwnerHandler {
	return &OwnerHandler{
		auth:     auth,
		shops:    shops,
		catalog:  catalog,
		team:     team,
		bookings: bookings,
		sessions: sessions,
		activity: dispatcher,
		log:      log,
	}
}

type serviceForm struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description"`
	Price       float64 `form:"price" binding:"required"`
	Duration    int     `form:"duration" binding:"required"`
}

type staffForm struct {
	Name           string `form:"name" binding:"required"`
	Specialization string `form:"specialization" binding:"required"`
}

type decisionForm struct {
	Status string `form:"status" binding:"required"`
}

// Dashboard resolves the owner's shop, then loads services, staff and
// bookings concurrently. A failed secondary fetch downgrades to an
// empty list with a visible notice instead of failing the page, so
// the reader always learns the list may be incomplete.
func (h *OwnerHandler) Dashboard(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	ctx := c.Request.Context()

	me, err := h.auth.Me(ctx, sess.Token)
	if err != nil {
		if apiclient.IsAuth(err) {
			h.sessions.Clear(c)
			c.Redirect(http.StatusFound, "/login?expired=1")
			return
		}
		c.HTML(http.StatusBadGateway, "shop_dashboard.html", gin.H{
			"User":  sess.User,
			"Error": err.Error(),
		})
		return
	}
	if !me.HasProfile {
		c.Redirect(http.StatusFound, "/shop/setup")
		return
	}

	shop, err := h.shops.OwnerShop(ctx, sess.Token, sess.User)
	if err != nil {
		c.HTML(http.StatusBadGateway, "shop_dashboard.html", gin.H{
			"User":  sess.User,
			"Error": err.Error(),
		})
		return
	}
	if shop == nil {
		h.log.Warn("barber has profile but no shop in listing", zap.String("user_id", sess.User.ID))
		c.Redirect(http.StatusFound, "/shop/setup")
		return
	}

	var (
		catalog    []models.Service
		staff      []models.Staff
		bookings   []models.Appointment
		catalogErr error
		staffErr   error
		bookingErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		catalog, catalogErr = h.catalog.ListByShop(gctx, sess.Token, shop.ID)
		return nil
	})
	g.Go(func() error {
		staff, staffErr = h.team.ListByShop(gctx, sess.Token, shop.ID)
		return nil
	})
	g.Go(func() error {
		bookings, bookingErr = h.bookings.ListForShop(gctx, sess.Token, shop.ID)
		return nil
	})
	_ = g.Wait()

	var notices []string
	if catalogErr != nil {
		h.log.Warn("failed to load services", zap.Error(catalogErr))
		notices = append(notices, "Services could not be loaded and may be out of date.")
	}
	if staffErr != nil {
		h.log.Warn("failed to load staff", zap.Error(staffErr))
		notices = append(notices, "Team members could not be loaded and may be out of date.")
	}
	if bookingErr != nil {
		h.log.Warn("failed to load bookings", zap.Error(bookingErr))
		notices = append(notices, "Booking requests could not be loaded and may be out of date.")
	}

	pending := filterByStatus(bookings, string(domain.StatusPending))
	upcoming := filterByStatus(bookings, string(domain.StatusApproved))

	c.HTML(http.StatusOK, "shop_dashboard.html", gin.H{
		"User":         sess.User,
		"Shop":         shop,
		"Services":     catalog,
		"Staff":        staff,
		"Appointments": bookings,
		"Pending":      pending,
		"Upcoming":     upcoming,
		"Notices":      notices,
		"Error":        c.Query("error"),
	})
}

// --------- Service management ---------

func (h *OwnerHandler) AddService(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var form serviceForm
	if err := c.ShouldBind(&form); err != nil {
		h.actionFailed(c, "Name, price and duration are required.")
		return
	}

	err := h.catalog.Create(c.Request.Context(), sess.Token, services.CreateServiceInput{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Duration:    form.Duration,
	})
	if err != nil {
		h.actionFailed(c, err.Error())
		return
	}

	h.activity.Dispatch(activity.Event{
		UserID: sess.User.ID,
		Role:   string(sess.User.Role),
		Action: "service_added",
		Entity: "service",
	})
	c.Redirect(http.StatusFound, "/shop/dashboard")
}

func (h *OwnerHandler) DeleteService(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	serviceID := c.Param("id")

	if err := h.catalog.Delete(c.Request.Context(), sess.Token, serviceID); err != nil {
		h.actionFailed(c, err.Error())
		return
	}

	h.activity.Dispatch(activity.Event{
		UserID:   sess.User.ID,
		Role:     string(sess.User.Role),
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: serviceID,
	})
	c.Redirect(http.StatusFound, "/shop/dashboard")
}

// --------- Team management ---------

func (h *OwnerHandler) AddStaff(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var form staffForm
	if err := c.ShouldBind(&form); err != nil {
		h.actionFailed(c, "Name and specialization are required.")
		return
	}

	err := h.team.Create(c.Request.Context(), sess.Token, services.CreateStaffInput{
		Name:           form.Name,
		Specialization: form.Specialization,
	})
	if err != nil {
		h.actionFailed(c, err.Error())
		return
	}

	h.activity.Dispatch(activity.Event{
		UserID: sess.User.ID,
		Role:   string(sess.User.Role),
		Action: "staff_added",
		Entity: "staff",
	})
	c.Redirect(http.StatusFound, "/shop/dashboard")
}

func (h *OwnerHandler) DeleteStaff(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	staffID := c.Param("id")

	if err := h.team.Delete(c.Request.Context(), sess.Token, staffID); err != nil {
		h.actionFailed(c, err.Error())
		return
	}

	h.activity.Dispatch(activity.Event{
		UserID:   sess.User.ID,
		Role:     string(sess.User.Role),
		Action:   "staff_deleted",
		Entity:   "staff",
		EntityID: staffID,
	})
	c.Redirect(http.StatusFound, "/shop/dashboard")
}

// --------- Booking decisions ---------

// DecideAppointment approves or rejects a pending booking request.
// The redirect back to the dashboard re-fetches the list; if that
// re-fetch fails the dashboard shows its stale-list notice rather
// than silently keeping old rows.
func (h *OwnerHandler) DecideAppointment(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	appointmentID := c.Param("id")

	var form decisionForm
	if err := c.ShouldBind(&form); err != nil {
		h.actionFailed(c, "A decision is required.")
		return
	}

	status := domain.Status(form.Status)
	err := h.bookings.UpdateStatus(c.Request.Context(), sess.Token, appointmentID, status)
	if err != nil {
		h.actionFailed(c, err.Error())
		return
	}

	h.activity.Dispatch(activity.Event{
		UserID:   sess.User.ID,
		Role:     string(sess.User.Role),
		Action:   "booking_" + form.Status,
		Entity:   "appointment",
		EntityID: appointmentID,
	})
	c.Redirect(http.StatusFound, "/shop/dashboard")
}

func (h *OwnerHandler) actionFailed(c *gin.Context, message string) {
	c.Redirect(http.StatusFound, "/shop/dashboard?error="+url.QueryEscape(message))
}
