package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dinefind/internal/services"
	"dinefind/pkg/utils"
)

type GeocodeController struct {
	geocodeService services.GeocodeServiceInterface
}

func NewGeocodeController(geocodeService services.GeocodeServiceInterface) *GeocodeController {
	return &GeocodeController{
		geocodeService: geocodeService,
	}
}

// Geocode proxies the provider's geocoding response verbatim. Failures
// keep the provider's envelope shape so clients can parse one format.
func (gc *GeocodeController) Geocode(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		utils.RespondError(c, http.StatusBadRequest, "address parameter is required")
		return
	}

	body, err := gc.geocodeService.Geocode(c.Request.Context(), address)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "geocoding unavailable",
			"results": []interface{}{},
		})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
