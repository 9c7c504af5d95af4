package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barberbook/barberbook-web/internal/activity"
	"github.com/barberbook/barberbook-web/internal/models"
	"github.com/barberbook/barberbook-web/internal/services"
	"github.com/barberbook/barberbook-web/internal/session"
	"github.com/barberbook/barberbook-web/internal/validators"
)

type AuthHandler struct {
	auth     *services.Auth
	sessions *session.Manager
	activity *activity.Dispatcher
	log      *zap.Logger
}

func NewAuthHandler(auth *services.Auth, sessions *session.Manager, dispatcher *activity.Dispatcher, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, activity: dispatcher, log: log}
}

// --------- Forms ---------

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type signupForm struct {
	Name            string `form:"name" binding:"required"`
	Email           string `form:"email" binding:"required"`
	Phone           string `form:"phone"`
	Password        string `form:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" binding:"required"`
	Role            string `form:"role" binding:"required"`
}

// --------- Pages ---------

func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Registered": c.Query("registered") == "1",
		"Expired":    c.Query("expired") == "1",
	})
}

func (h *AuthHandler) SignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

// --------- Actions ---------

// Login signs in, then asks /me where to land: barbers go to their
// dashboard or, without a shop profile yet, to setup; customers go to
// the customer dashboard.
func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"Error": "Email and password are required."})
		return
	}

	ctx := c.Request.Context()
	email := strings.ToLower(strings.TrimSpace(form.Email))

	token, user, err := h.auth.SignIn(ctx, email, form.Password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": err.Error()})
		return
	}

	me, err := h.auth.Me(ctx, token)
	if err != nil {
		c.HTML(http.StatusBadGateway, "login.html", gin.H{"Error": err.Error()})
		return
	}
	user.Role = me.Role

	if _, err := h.sessions.Create(c, token, user); err != nil {
		h.log.Error("failed to create session", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Error": "Failed to start session. Please try again."})
		return
	}

	h.activity.Dispatch(activity.Event{
		UserID: user.ID,
		Role:   string(user.Role),
		Action: "signed_in",
		Entity: "user",
	})

	if me.Role == models.RoleBarber {
		if me.HasProfile {
			c.Redirect(http.StatusFound, "/shop/dashboard")
		} else {
			c.Redirect(http.StatusFound, "/shop/setup")
		}
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

// Signup registers the account and sends the user to the login page;
// there is no auto-login after registration.
func (h *AuthHandler) Signup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{"Error": "Please fill in all required fields.", "Form": form})
		return
	}

	if form.Password != form.ConfirmPassword {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{"Error": "Passwords do not match", "Form": form})
		return
	}
	if len(form.Password) < 6 {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{"Error": "Password must be at least 6 characters", "Form": form})
		return
	}
	if form.Phone == "" {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{"Error": "Phone number is required", "Form": form})
		return
	}

	email := strings.ToLower(strings.TrimSpace(form.Email))
	if !validators.HasEmailShape(email) {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{"Error": "Please enter a valid email address", "Form": form})
		return
	}

	role := models.Role(form.Role)
	if role != models.RoleCustomer && role != models.RoleBarber {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{"Error": "Invalid account type", "Form": form})
		return
	}

	_, user, err := h.auth.SignUp(c.Request.Context(), services.SignUpInput{
		Email:    email,
		Password: form.Password,
		Name:     form.Name,
		Phone:    form.Phone,
		Role:     role,
	})
	if err != nil {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{"Error": err.Error(), "Form": form})
		return
	}

	h.activity.Dispatch(activity.Event{
		UserID: user.ID,
		Role:   string(user.Role),
		Action: "registered",
		Entity: "user",
	})

	c.Redirect(http.StatusFound, "/login?registered=1")
}

// Logout invalidates the remote session, then clears local state no
// matter what the remote call returned.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sess, ok := h.sessions.Current(c); ok {
		if err := h.auth.SignOut(c.Request.Context(), sess.Token); err != nil {
			h.log.Warn("remote logout failed", zap.Error(err))
		}
		h.activity.Dispatch(activity.Event{
			UserID: sess.User.ID,
			Role:   string(sess.User.Role),
			Action: "signed_out",
			Entity: "user",
		})
	}
	h.sessions.Clear(c)
	c.Redirect(http.StatusFound, "/")
}
