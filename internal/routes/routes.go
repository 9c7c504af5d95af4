package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barberbook/barberbook-web/internal/activity"
	"github.com/barberbook/barberbook-web/internal/apiclient"
	"github.com/barberbook/barberbook-web/internal/handlers"
	"github.com/barberbook/barberbook-web/internal/middleware"
	"github.com/barberbook/barberbook-web/internal/models"
	"github.com/barberbook/barberbook-web/internal/services"
	"github.com/barberbook/barberbook-web/internal/session"
)

func RegisterRoutes(r *gin.Engine, api *apiclient.Client, sessions *session.Manager, log *zap.Logger) {

	// ------------------------------
	// Domain services
	// ------------------------------
	authSvc := services.NewAuth(api)
	shopSvc := services.NewShops(api)
	catalogSvc := services.NewCatalog(api)
	teamSvc := services.NewTeam(api)
	bookingSvc := services.NewBookings(api)

	dispatcher := activity.NewDispatcher(log)

	// ------------------------------
	// Page handlers
	// ------------------------------
	homeHandler := handlers.NewHomeHandler(sessions)
	authHandler := handlers.NewAuthHandler(authSvc, sessions, dispatcher, log)
	customerHandler := handlers.NewCustomerHandler(shopSvc, bookingSvc, log)
	shopHandler := handlers.NewShopHandler(shopSvc, catalogSvc, teamSvc, bookingSvc, dispatcher, log)
	ownerHandler := handlers.NewOwnerHandler(authSvc, shopSvc, catalogSvc, teamSvc, bookingSvc, sessions, dispatcher, log)
	setupHandler := handlers.NewSetupHandler(shopSvc, sessions, log)

	// ------------------------------
	// Public pages
	// ------------------------------
	r.GET("/", homeHandler.Index)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/signup", authHandler.SignupPage)
	r.POST("/signup", authHandler.Signup)
	r.POST("/logout", authHandler.Logout)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ------------------------------
	// Customer pages
	// ------------------------------
	customer := r.Group("/")
	customer.Use(middleware.RequireRole(sessions, models.RoleCustomer))
	{
		customer.GET("/dashboard", customerHandler.Dashboard)
		customer.GET("/shop/:id", shopHandler.Detail)
		customer.POST("/shop/:id/book", shopHandler.Book)
	}

	// ------------------------------
	// Shop owner pages
	// ------------------------------
	owner := r.Group("/shop")
	owner.Use(middleware.RequireRole(sessions, models.RoleBarber))
	{
		owner.GET("/dashboard", ownerHandler.Dashboard)
		owner.GET("/setup", setupHandler.Page)
		owner.POST("/setup", setupHandler.Submit)

		owner.POST("/services", ownerHandler.AddService)
		owner.POST("/services/:id/delete", ownerHandler.DeleteService)
		owner.POST("/team", ownerHandler.AddStaff)
		owner.POST("/team/:id/delete", ownerHandler.DeleteStaff)
		owner.POST("/appointments/:id/status", ownerHandler.DecideAppointment)
	}
}
