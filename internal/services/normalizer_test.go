package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinefind/internal/models/provider_models"
)

func boolPtr(b bool) *bool { return &b }

func TestInferCuisine(t *testing.T) {
	tests := []struct {
		name     string
		types    []string
		expected string
	}{
		{"first_matching_tag_wins", []string{"bakery", "restaurant"}, "Bakery"},
		{"source_order_not_whitelist_order", []string{"restaurant", "bakery"}, "Restaurant"},
		{"suffix_stripped", []string{"japanese_restaurant"}, "Japanese"},
		{"underscores_to_spaces", []string{"meal_takeaway"}, "Meal takeaway"},
		{"non_whitelisted_skipped", []string{"point_of_interest", "thai_restaurant"}, "Thai"},
		{"no_match_default", []string{"lodging", "spa"}, "Restaurant"},
		{"empty_default", nil, "Restaurant"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, inferCuisine(tc.types))
		})
	}
}

func TestOpeningHoursText(t *testing.T) {
	assert.Equal(t, "Hours not available", openingHoursText(nil))
	assert.Equal(t, "Hours not available", openingHoursText(&provider_models.OpeningHours{}))
	assert.Equal(t, "Open now", openingHoursText(&provider_models.OpeningHours{OpenNow: boolPtr(true)}))
	assert.Equal(t, "Closed", openingHoursText(&provider_models.OpeningHours{OpenNow: boolPtr(false)}))

	weekly := &provider_models.OpeningHours{
		OpenNow:     boolPtr(true),
		WeekdayText: []string{"Monday: 9-5", "Tuesday: 9-5"},
	}
	assert.Equal(t, "Monday: 9-5, Tuesday: 9-5", openingHoursText(weekly))
}

func TestNormalizePlace(t *testing.T) {
	n := newPlaceNormalizer("test-key")

	place := provider_models.Place{
		PlaceID:          "ChIJabc",
		Name:             "Som Tam Corner",
		FormattedAddress: "99 Rama IV Rd, Bangkok",
		Vicinity:         "Khlong Toei",
		Types:            []string{"thai_restaurant", "food"},
		Rating:           4.4,
		UserRatingsTotal: 120,
		PriceLevel:       2,
		Photos:           []provider_models.Photo{{PhotoReference: "ref123"}},
		OpeningHours:     &provider_models.OpeningHours{OpenNow: boolPtr(true)},
	}
	place.Geometry.Location = provider_models.LatLng{Lat: 13.72, Lng: 100.56}

	restaurant := n.normalizePlace(place, 0)

	assert.Equal(t, "1", restaurant.ID)
	assert.Equal(t, "ChIJabc", restaurant.PlaceID)
	assert.Equal(t, "99 Rama IV Rd, Bangkok", restaurant.Address)
	assert.Equal(t, "Khlong Toei", restaurant.Description)
	assert.Equal(t, "Thai", restaurant.Cuisine)
	assert.Equal(t, "Open now", restaurant.OpeningHours)
	assert.Equal(t, 13.72, restaurant.Location.Lat)
	assert.Equal(t, 2, restaurant.PriceLevel)
	assert.Equal(t, 120, restaurant.UserRatingsTotal)
	assert.Equal(t,
		"https://maps.googleapis.com/maps/api/place/photo?maxwidth=400&photoreference=ref123&key=test-key",
		restaurant.Image)
	assert.Nil(t, restaurant.DistanceKm)
}

func TestNormalizePlace_Defaults(t *testing.T) {
	n := newPlaceNormalizer("test-key")

	restaurant := n.normalizePlace(provider_models.Place{Name: "Bare"}, 4)

	assert.Equal(t, "5", restaurant.ID)
	assert.Equal(t, "Restaurant", restaurant.Cuisine)
	assert.Equal(t, "Hours not available", restaurant.OpeningHours)
	assert.Equal(t, placeholderImage, restaurant.Image)
	assert.Zero(t, restaurant.Rating)
	assert.Zero(t, restaurant.PriceLevel)
	assert.Zero(t, restaurant.UserRatingsTotal)
	assert.Empty(t, restaurant.Address)
}

func TestNormalizeNearby(t *testing.T) {
	n := newPlaceNormalizer("test-key")

	place := provider_models.Place{
		Name:             "Riverside Noodle House",
		FormattedAddress: "48 Krung Thon Buri Rd",
		Vicinity:         "Khlong San",
	}
	place.Geometry.Location = provider_models.LatLng{Lat: 13.7262, Lng: 100.5089}

	restaurant := n.normalizeNearby(place, 0, 13.7262, 100.5139)

	assert.Equal(t, "Khlong San", restaurant.Address)
	assert.Equal(t, "Khlong San", restaurant.Description)
	require.NotNil(t, restaurant.DistanceKm)
	assert.Greater(t, *restaurant.DistanceKm, 0.0)
	assert.Less(t, *restaurant.DistanceKm, 2.0)
	assert.Contains(t, restaurant.DistanceText, " m")
}

func TestNormalizeDetails(t *testing.T) {
	n := newPlaceNormalizer("test-key")

	place := provider_models.Place{
		Name:                 "Le Petit Bistro",
		FormattedAddress:     "29 Sathorn Soi 10",
		FormattedPhoneNumber: "+66 2 123 4567",
		Website:              "https://lepetit.example",
		URL:                  "https://maps.google.com/?cid=42",
		Reviews: []provider_models.Review{
			{AuthorName: "Ann", Rating: 5, Text: "Lovely", RelativeTimeDescription: "a week ago"},
		},
	}

	restaurant := n.normalizeDetails(place, "ChIJverylongopaqueplaceid")

	assert.Equal(t, "ChIJverylongopaqueplaceid", restaurant.ID)
	assert.Equal(t, "ChIJverylongopaqueplaceid", restaurant.PlaceID)
	assert.Equal(t, "+66 2 123 4567", restaurant.PhoneNumber)
	assert.Equal(t, "https://lepetit.example", restaurant.Website)
	assert.Equal(t, "https://maps.google.com/?cid=42", restaurant.URL)
	require.Len(t, restaurant.Reviews, 1)
	assert.Equal(t, "Ann", restaurant.Reviews[0].Author)
	assert.Equal(t, "a week ago", restaurant.Reviews[0].When)
}
