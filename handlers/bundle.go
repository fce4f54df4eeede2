// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Directory pages
	HomeHandler          gin.HandlerFunc
	ListProvidersHandler gin.HandlerFunc
	GetProviderHandler   gin.HandlerFunc

	// Add-service-provider flow
	NewProviderFormHandler gin.HandlerFunc
	CreateProviderHandler  gin.HandlerFunc
	SubmitLimiter          gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}
