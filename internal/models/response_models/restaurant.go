package response_models

// Restaurant is the normalized record every data source maps into.
// Values are built once per request and never mutated afterwards;
// cached entries are the JSON serialization of these structs.
type Restaurant struct {
	ID           string   `json:"id"`
	PlaceID      string   `json:"placeId,omitempty"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Description  string   `json:"description"`
	Cuisine      string   `json:"cuisine"`
	Rating       float64  `json:"rating"`
	Image        string   `json:"image"`
	OpeningHours string   `json:"openingHours"`
	Location     Location `json:"location"`

	PriceLevel       int `json:"priceLevel"`
	UserRatingsTotal int `json:"userRatingsTotal"`

	// Present only on proximity-search results.
	DistanceKm   *float64 `json:"distanceKm,omitempty"`
	DistanceText string   `json:"distanceText,omitempty"`

	// Present only on detail lookups.
	PhoneNumber string             `json:"phoneNumber,omitempty"`
	Website     string             `json:"website,omitempty"`
	URL         string             `json:"url,omitempty"`
	Reviews     []RestaurantReview `json:"reviews,omitempty"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type RestaurantReview struct {
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
	When   string  `json:"when"`
}
