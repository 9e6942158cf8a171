package routes

import (
	"net/http"
	"time"

	"dialvet/handlers"
	"dialvet/middleware"
	"dialvet/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterVoiceRoutes registers the telephony webhook. It stays public:
// Twilio fetches instructions here on every conversation turn.
func RegisterVoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/voice")
	{
		api.POST("/turn", hb.VoiceTurnHandler)
	}
}

// RegisterBusinessRoutes registers the record CRUD endpoints.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/businesses")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.GET("", hb.ListBusinessesHandler)
		api.GET("/export", hb.ExportBusinessesHandler)
		api.GET("/:id", hb.GetBusinessHandler)
		api.POST("/import", hb.ImportBusinessesHandler)
		api.PATCH("/:id", hb.UpdateBusinessHandler)
		api.DELETE("", hb.ClearBusinessesHandler)
	}
}

// RegisterCallRoutes registers the outbound-call trigger endpoints.
func RegisterCallRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calls")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.POST("", hb.StartBulkCallsHandler)
		api.POST("/:id", hb.CallBusinessHandler)
	}
}

// RegisterAssetRoutes registers the greeting-audio endpoints.
func RegisterAssetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assets")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.POST("/greeting", hb.UploadGreetingHandler)
		api.GET("/greeting", hb.GetGreetingHandler)
	}
}

// RegisterAdminRoutes registers the admin login endpoint.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.AdminLoginHandler)
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
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterVoiceRoutes(r, hb)
	RegisterBusinessRoutes(r, hb)
	RegisterCallRoutes(r, hb)
	RegisterAssetRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
