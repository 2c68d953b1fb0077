package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig carries the handlers and settings the router needs
type RouterConfig struct {
	Bookings      *BookingHandler
	Notifications *NotificationHandler
	Auth          *AuthHandler
	Payments      *PaymentHandler
	Events        *EventsHandler
	JWTSecret     string
}

// NewRouter builds the gin engine with all routes registered
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/generate-otp", cfg.Auth.GenerateOTP)
		api.POST("/verify-otp", cfg.Auth.VerifyOTP)
		api.GET("/user-profile/:email", cfg.Auth.Profile)
		api.POST("/update-profile", cfg.Auth.UpdateProfile)

		api.POST("/bookings", cfg.Bookings.Create)
		api.GET("/bookings/customer/:email", cfg.Bookings.ListByEmail)
		api.PUT("/bookings/:id/status", cfg.Bookings.SetStatus)
		api.PUT("/bookings/:id/payment-status", cfg.Bookings.SetPaymentStatus)
		api.POST("/bookings/:id/schedule-removal", cfg.Bookings.ScheduleRemoval)
		api.POST("/bookings/:id/cancel", cfg.Bookings.Cancel)

		api.POST("/payment/create-order", cfg.Payments.CreateOrder)
		api.POST("/payment/verify", cfg.Payments.VerifyPayment)

		api.GET("/events", cfg.Events.Stream)

		admin := api.Group("/admin", AuthMiddleware(cfg.JWTSecret), AdminOnly())
		{
			admin.GET("/bookings", cfg.Bookings.ListAll)
			admin.POST("/bookings/:id/reply", cfg.Bookings.Reply)
			admin.GET("/notifications", cfg.Notifications.List)
			admin.PUT("/notifications/:id", cfg.Notifications.MarkRead)
		}
	}

	return r
}
