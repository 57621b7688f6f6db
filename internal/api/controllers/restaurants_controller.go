package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dinefind/internal/services"
	"dinefind/pkg/utils"
)

const (
	defaultRadiusMeters = 1000
	minRadiusMeters     = 500
	maxRadiusMeters     = 100000
)

type RestaurantsController struct {
	restaurantService services.RestaurantServiceInterface
}

func NewRestaurantsController(restaurantService services.RestaurantServiceInterface) *RestaurantsController {
	return &RestaurantsController{
		restaurantService: restaurantService,
	}
}

func parseRating(c *gin.Context) (float64, bool) {
	ratingStr := c.Query("rating")
	if ratingStr == "" {
		return 0, true
	}
	rating, err := strconv.ParseFloat(ratingStr, 64)
	if err != nil || rating < 1 || rating > 5 {
		utils.RespondError(c, http.StatusBadRequest, "Rating must be a number between 1 and 5")
		return 0, false
	}
	return rating, true
}

func (rc *RestaurantsController) Search(c *gin.Context) {
	term := c.Query("search")
	cuisine := c.Query("cuisine")

	rating, ok := parseRating(c)
	if !ok {
		return
	}

	restaurants, err := rc.restaurantService.SearchByTerm(c.Request.Context(), term, cuisine, rating)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, restaurants, "Restaurants fetched successfully")
}

func (rc *RestaurantsController) Nearby(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		utils.RespondError(c, http.StatusBadRequest, "lat and lng are required numeric parameters")
		return
	}

	radius := defaultRadiusMeters
	if radiusStr := c.Query("radius"); radiusStr != "" {
		parsed, err := strconv.Atoi(radiusStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid radius")
			return
		}
		radius = parsed
	}
	if radius < minRadiusMeters {
		radius = minRadiusMeters
	}
	if radius > maxRadiusMeters {
		radius = maxRadiusMeters
	}

	rating, ok := parseRating(c)
	if !ok {
		return
	}

	restaurants, err := rc.restaurantService.SearchNearby(
		c.Request.Context(), lat, lng, radius,
		c.Query("cuisine"), rating, c.Query("term"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, restaurants, "Nearby restaurants fetched successfully")
}

func (rc *RestaurantsController) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Restaurant ID is required")
		return
	}

	restaurant, err := rc.restaurantService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, restaurant, "Restaurant fetched successfully")
}

func (rc *RestaurantsController) Cuisines(c *gin.Context) {
	utils.RespondSuccess(c, rc.restaurantService.ListCuisines(), "Cuisines fetched successfully")
}
