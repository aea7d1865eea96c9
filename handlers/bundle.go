package handlers

import (
	adminRepoPkg "gatherly/database/repository/admin"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	AdminRepo adminRepoPkg.AdminRepository

	// Auth endpoints
	LoginHandler gin.HandlerFunc

	// Event endpoints
	CreateEventHandler         gin.HandlerFunc
	PreviewRecurrenceHandler   gin.HandlerFunc
	GetEventHandler            gin.HandlerFunc
	ListCommunityEventsHandler gin.HandlerFunc
	GetSeriesHandler           gin.HandlerFunc
	UpdateEventHandler         gin.HandlerFunc
	DeleteSeriesHandler        gin.HandlerFunc

	// Audit endpoints
	ListRecentAuditHandler gin.HandlerFunc
	ListEntityAuditHandler gin.HandlerFunc

	// Storage endpoints
	UploadBannerHandler gin.HandlerFunc
	GetBannerURLHandler gin.HandlerFunc
}
