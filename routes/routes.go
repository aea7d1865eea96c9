package routes

import (
	"net/http"
	"time"

	"gatherly/handlers"
	"gatherly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the admin sign-in endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)
	}
}

// RegisterEventRoutes registers the event management endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events")
	{
		api.Use(middleware.JWTAuthAdminMiddleware(hb.AdminRepo))
		api.POST("", hb.CreateEventHandler)
		api.POST("/recurrence/preview", hb.PreviewRecurrenceHandler)
		api.GET("/id/:id", hb.GetEventHandler)
		api.GET("/id/:id/series", hb.GetSeriesHandler)
		api.GET("/community/:communityID", hb.ListCommunityEventsHandler)
		api.PUT("/id/:id", hb.UpdateEventHandler)
		api.DELETE("/id/:id", hb.DeleteSeriesHandler)
	}
}

// RegisterAuditRoutes registers the read-only audit log endpoints.
func RegisterAuditRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/audit")
	{
		api.Use(middleware.JWTAuthAdminMiddleware(hb.AdminRepo))
		api.GET("/recent", hb.ListRecentAuditHandler)
		api.GET("/entity/:entityType/:entityID", hb.ListEntityAuditHandler)
	}
}

// RegisterStorageRoutes registers the banner upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthAdminMiddleware(hb.AdminRepo))
		api.POST("/banners", hb.UploadBannerHandler)
		api.GET("/banners/:filename", hb.GetBannerURLHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Gatherly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterAuditRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
