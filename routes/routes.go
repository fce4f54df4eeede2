package routes

import (
	"net/http"
	"time"

	"servicedirectory/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDirectoryRoutes registers the read-only directory pages.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.HomeHandler)

	providers := r.Group("/service-providers")
	{
		providers.GET("", hb.ListProvidersHandler)
		providers.GET("/:id", hb.GetProviderHandler)
	}
}

// RegisterSubmissionRoutes registers the add-service-provider flow. Posting
// is rate limited separately from browsing.
func RegisterSubmissionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/add-service-provider", hb.NewProviderFormHandler)

	submit := []gin.HandlerFunc{}
	if hb.SubmitLimiter != nil {
		submit = append(submit, hb.SubmitLimiter)
	}
	submit = append(submit, hb.CreateProviderHandler)
	r.POST("/add-service-provider", submit...)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.HealthHandler != nil {
		r.GET("/health", hb.HealthHandler)
		return
	}
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm ServiceHub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDirectoryRoutes(r, hb)
	RegisterSubmissionRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
