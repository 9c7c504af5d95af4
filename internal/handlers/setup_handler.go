package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barberbook/barberbook-web/internal/apiclient"
	shopdomain "github.com/barberbook/barberbook-web/internal/domain/shop"
	"github.com/barberbook/barberbook-web/internal/middleware"
	"github.com/barberbook/barberbook-web/internal/models"
	"github.com/barberbook/barberbook-web/internal/services"
	"github.com/barberbook/barberbook-web/internal/session"
)

var weekDays = []string{
	"monday", "tuesday", "wednesday", "thursday",
	"friday", "saturday", "sunday",
}

// SetupHandler walks a barber through creating the shop profile.
type SetupHandler struct {
	shops    *services.Shops
	sessions *session.Manager
	log      *zap.Logger
}

func NewSetupHandler(shops *services.Shops, sessions *session.Manager, log *zap.Logger) *SetupHandler {
	return &SetupHandler{shops: shops, sessions: sessions, log: log}
}

type setupForm struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
	Address     string `form:"address" binding:"required"`
	Phone       string `form:"phone" binding:"required"`
	Email       string `form:"email" binding:"required"`
}

// Page shows the setup form, unless the barber already owns a shop,
// in which case the dashboard is the right place. A failed existence
// check is logged and the form still renders.
func (h *SetupHandler) Page(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	shop, err := h.shops.OwnerShop(c.Request.Context(), sess.Token, sess.User)
	if err != nil {
		h.log.Warn("could not check for existing shop", zap.Error(err))
	} else if shop != nil {
		c.Redirect(http.StatusFound, "/shop/dashboard")
		return
	}

	c.HTML(http.StatusOK, "shop_setup.html", gin.H{
		"User": sess.User,
		"Days": weekDays,
	})
}

// Submit creates the shop profile. Auth failures send the user back
// to login; the error kind decides, not the message text.
func (h *SetupHandler) Submit(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var form setupForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "shop_setup.html", gin.H{
			"User":  sess.User,
			"Days":  weekDays,
			"Error": "Please fill in all required fields",
		})
		return
	}

	hours := make(models.Hours, len(weekDays))
	for _, day := range weekDays {
		if c.PostForm(day+"_closed") == "on" {
			hours[day] = shopdomain.Closed
			continue
		}
		open := c.DefaultPostForm(day+"_open", "09:00")
		closeAt := c.DefaultPostForm(day+"_close", "18:00")
		hours[day] = open + "-" + closeAt
	}

	err := h.shops.Create(c.Request.Context(), sess.Token, services.CreateShopInput{
		Name:        form.Name,
		Description: form.Description,
		Address:     form.Address,
		Phone:       form.Phone,
		Email:       form.Email,
		Hours:       hours,
	})
	if err != nil {
		if apiclient.IsAuth(err) {
			h.sessions.Clear(c)
			c.Redirect(http.StatusFound, "/login?expired=1")
			return
		}
		c.HTML(http.StatusBadGateway, "shop_setup.html", gin.H{
			"User":  sess.User,
			"Days":  weekDays,
			"Error": err.Error(),
		})
		return
	}

	c.Redirect(http.StatusFound, "/shop/dashboard")
}
