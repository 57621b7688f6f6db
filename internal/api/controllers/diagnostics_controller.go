package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dinefind/internal/config"
	"dinefind/pkg/cache"
)

type DiagnosticsController struct {
	cfg   *config.Config
	store cache.Store
}

func NewDiagnosticsController(cfg *config.Config, store cache.Store) *DiagnosticsController {
	return &DiagnosticsController{
		cfg:   cfg,
		store: store,
	}
}

// Test is a liveness probe that also reveals a masked view of the
// provider credential, handy when debugging deployments.
func (dc *DiagnosticsController) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"time":          time.Now().UTC().Format(time.RFC3339),
		"places_key":    dc.cfg.MaskedAPIKey(),
		"cache_backend": dc.store.Name(),
	})
}
