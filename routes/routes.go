package routes

import (
	"net/http"
	"time"

	"sctclinic/handlers"
	"sctclinic/middleware"
	"sctclinic/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the endpoints used by the booking site.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/appointments", hb.Appointments.BookAppointment)
		api.GET("/slots/simple", hb.Slots.GetSimpleSlots)
		api.GET("/ticker/notifications", hb.Ticker.GetActiveNotifications)
	}
}

// RegisterAdminRoutes sets up endpoints for dashboard operations. Everything
// except login sits behind the session check.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.Auth.Login)

		protected := adminGroup.Group("")
		protected.Use(middleware.AdminAuthMiddleware(hb.AdminRepo))
		protected.POST("/logout", hb.Auth.Logout)

		protected.GET("/blocked-dates", hb.BlockedDates.ListBlockedDates)
		protected.POST("/blocked-dates", hb.BlockedDates.CreateBlockedDate)
		protected.PATCH("/blocked-dates", hb.BlockedDates.UpdateBlockedDate)
		protected.DELETE("/blocked-dates", hb.BlockedDates.DeleteBlockedDate)

		protected.GET("/appointments", hb.Appointments.ListAppointments)
		protected.PATCH("/appointments", hb.Appointments.UpdateAppointmentStatus)
		protected.DELETE("/appointments", hb.Appointments.DeleteAppointment)

		protected.GET("/dashboard/stats", hb.Appointments.GetDashboardStats)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
