package utils

import "errors"

var (
	ErrRestaurantNotFound   = errors.New("restaurant not found")
	ErrMissingAPIKey        = errors.New("places api key not configured")
	ErrProviderUnavailable  = errors.New("places provider unavailable")
	ErrGeocodeFailed        = errors.New("geocoding failed")
	ErrLocalDataUnavailable = errors.New("local restaurant data unavailable")
)
