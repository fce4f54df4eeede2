// File: handlers/directory.go
package handlers

import (
	"net/http"
	"strings"

	"servicedirectory/services/directory"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DirectoryHandler renders the read-only directory pages.
type DirectoryHandler struct {
	Service directory.DirectoryService
}

func NewDirectoryHandler(svc directory.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Service: svc}
}

// HomeHandler handles GET /.
func (h *DirectoryHandler) HomeHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "home.tmpl", gin.H{"Title": "Home"})
}

// ListProvidersHandler handles GET /service-providers?q=&serviceType=.
// Each request mounts a fresh ListingView and fetches exactly once.
func (h *DirectoryHandler) ListProvidersHandler(c *gin.Context) {
	logger := getLogger(c)
	criteria := directory.Criteria{
		Search:      strings.TrimSpace(c.Query("q")),
		ServiceType: c.Query("serviceType"),
	}

	view := directory.NewListingView(h.Service, logger)
	defer view.Close()

	if view.Load(c.Request.Context()) == directory.StateLoading {
		// The visitor went away before the fetch finished.
		logger.Debug("Listing request cancelled before load completed")
		c.Status(http.StatusServiceUnavailable)
		return
	}

	snap := view.Snapshot(criteria)
	logger.Debug("Rendering provider listing",
		zap.String("state", snap.State.String()),
		zap.String("outcome", string(snap.Outcome)),
		zap.Int("total", snap.Total),
		zap.Int("shown", len(snap.Providers)),
	)
	c.HTML(http.StatusOK, "providers.tmpl", gin.H{
		"Title":   "Service Providers",
		"Listing": snap,
	})
}

// GetProviderHandler handles GET /service-providers/:id. Any failure sends
// the visitor back to the listing.
func (h *DirectoryHandler) GetProviderHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	view := directory.NewDetailView(h.Service, id, logger)
	defer view.Close()

	switch view.Load(c.Request.Context()) {
	case directory.StateRedirected:
		logger.Info("Provider unavailable, redirecting",
			zap.String("id", id),
			zap.String("outcome", string(view.Outcome())),
		)
		c.Redirect(http.StatusFound, view.RedirectTo())
	case directory.StateReady:
		provider := view.Provider()
		c.HTML(http.StatusOK, "provider_detail.tmpl", gin.H{
			"Title":    provider.Name,
			"Provider": provider,
		})
	default:
		logger.Debug("Detail request cancelled before load completed", zap.String("id", id))
		c.Status(http.StatusServiceUnavailable)
	}
}
