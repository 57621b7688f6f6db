package services

import (
	"fmt"
	"strconv"
	"strings"

	"dinefind/internal/models/provider_models"
	"dinefind/internal/models/response_models"
	"dinefind/pkg/utils"
)

const placeholderImage = "/images/placeholder-restaurant.jpg"

// Tags that count as a cuisine when inferring one from a place's type
// list. The first matching tag in provider array order wins.
var cuisineTags = map[string]bool{
	"bakery":              true,
	"cafe":                true,
	"bar":                 true,
	"meal_takeaway":       true,
	"meal_delivery":       true,
	"restaurant":          true,
	"food":                true,
	"italian_restaurant":  true,
	"japanese_restaurant": true,
	"chinese_restaurant":  true,
	"thai_restaurant":     true,
	"indian_restaurant":   true,
}

type placeNormalizer struct {
	apiKey string
}

func newPlaceNormalizer(apiKey string) *placeNormalizer {
	return &placeNormalizer{apiKey: apiKey}
}

func (n *placeNormalizer) photoURL(place provider_models.Place) string {
	if len(place.Photos) == 0 || place.Photos[0].PhotoReference == "" {
		return placeholderImage
	}
	return fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/place/photo?maxwidth=400&photoreference=%s&key=%s",
		place.Photos[0].PhotoReference, n.apiKey)
}

func inferCuisine(types []string) string {
	for _, t := range types {
		if !cuisineTags[t] {
			continue
		}
		name := strings.TrimSuffix(t, "_restaurant")
		name = strings.ReplaceAll(name, "_", " ")
		if name == "" {
			continue
		}
		return strings.ToUpper(name[:1]) + name[1:]
	}
	return "Restaurant"
}

func openingHoursText(hours *provider_models.OpeningHours) string {
	if hours == nil {
		return "Hours not available"
	}
	if len(hours.WeekdayText) > 0 {
		return strings.Join(hours.WeekdayText, ", ")
	}
	if hours.OpenNow != nil {
		if *hours.OpenNow {
			return "Open now"
		}
		return "Closed"
	}
	return "Hours not available"
}

// normalizePlace maps one keyword-search result into the Restaurant
// shape. Batch results get 1-based sequential ids.
func (n *placeNormalizer) normalizePlace(place provider_models.Place, index int) response_models.Restaurant {
	return response_models.Restaurant{
		ID:               strconv.Itoa(index + 1),
		PlaceID:          place.PlaceID,
		Name:             place.Name,
		Address:          place.FormattedAddress,
		Description:      place.Vicinity,
		Cuisine:          inferCuisine(place.Types),
		Rating:           place.Rating,
		Image:            n.photoURL(place),
		OpeningHours:     openingHoursText(place.OpeningHours),
		Location:         response_models.Location(place.Geometry.Location),
		PriceLevel:       place.PriceLevel,
		UserRatingsTotal: place.UserRatingsTotal,
	}
}

// normalizeNearby adds distance from the search origin; nearby
// results carry the short vicinity string as both address and
// description.
func (n *placeNormalizer) normalizeNearby(place provider_models.Place, index int, originLat, originLng float64) response_models.Restaurant {
	restaurant := n.normalizePlace(place, index)
	restaurant.Address = place.Vicinity
	restaurant.Description = place.Vicinity

	km := utils.HaversineKm(originLat, originLng,
		place.Geometry.Location.Lat, place.Geometry.Location.Lng)
	restaurant.DistanceKm = &km
	restaurant.DistanceText = utils.FormatDistance(km)
	return restaurant
}

// normalizeDetails keeps the requested place id and captures the
// detail-only fields.
func (n *placeNormalizer) normalizeDetails(place provider_models.Place, placeID string) response_models.Restaurant {
	restaurant := n.normalizePlace(place, 0)
	restaurant.ID = placeID
	restaurant.PlaceID = placeID
	restaurant.PhoneNumber = place.FormattedPhoneNumber
	restaurant.Website = place.Website
	restaurant.URL = place.URL

	if len(place.Reviews) > 0 {
		reviews := make([]response_models.RestaurantReview, 0, len(place.Reviews))
		for _, review := range place.Reviews {
			reviews = append(reviews, response_models.RestaurantReview{
				Author: review.AuthorName,
				Rating: review.Rating,
				Text:   review.Text,
				When:   review.RelativeTimeDescription,
			})
		}
		restaurant.Reviews = reviews
	}
	return restaurant
}
