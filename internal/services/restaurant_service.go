package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"dinefind/internal/config"
	"dinefind/internal/models/response_models"
	"dinefind/internal/repositories"
	"dinefind/pkg/cache"
	"dinefind/pkg/utils"
)

const searchCacheTTL = 30 * time.Minute

// Names served by the cuisines endpoint. Fixed and independent of the
// tag whitelist used for inference.
var cuisineList = []string{
	"American", "Bakery", "Bar", "Barbecue", "Cafe",
	"Chinese", "Dessert", "Fast Food", "French", "Greek",
	"Indian", "Italian", "Japanese", "Korean", "Mediterranean",
	"Mexican", "Pizza", "Seafood", "Thai", "Vietnamese",
}

type RestaurantServiceInterface interface {
	SearchByTerm(ctx context.Context, term, cuisine string, minRating float64) ([]response_models.Restaurant, error)
	SearchNearby(ctx context.Context, lat, lng float64, radius int, cuisine string, minRating float64, term string) ([]response_models.Restaurant, error)
	GetByID(ctx context.Context, id string) (*response_models.Restaurant, error)
	GetDetails(ctx context.Context, placeID string) (*response_models.Restaurant, error)
	ListCuisines() []string
}

type RestaurantService struct {
	places     PlacesAPI
	local      repositories.RestaurantRepository
	store      cache.Store
	normalizer *placeNormalizer
}

func NewRestaurantService(places PlacesAPI, local repositories.RestaurantRepository, store cache.Store, cfg *config.Config) RestaurantServiceInterface {
	return &RestaurantService{
		places:     places,
		local:      local,
		store:      store,
		normalizer: newPlaceNormalizer(cfg.GoogleAPIKey),
	}
}

func orAll(v string) string {
	if v == "" || v == "all" {
		return "all"
	}
	return v
}

func ratingKey(minRating float64) string {
	if minRating <= 0 {
		return "all"
	}
	return strconv.FormatFloat(minRating, 'f', -1, 64)
}

func (s *RestaurantService) cached(ctx context.Context, key string) ([]response_models.Restaurant, bool) {
	data, ok := s.store.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var restaurants []response_models.Restaurant
	if err := json.Unmarshal(data, &restaurants); err != nil {
		log.Printf("Corrupt cache entry %q: %v", key, err)
		return nil, false
	}
	return restaurants, true
}

func (s *RestaurantService) putCached(ctx context.Context, key string, restaurants []response_models.Restaurant) {
	data, err := json.Marshal(restaurants)
	if err != nil {
		return
	}
	s.store.Put(ctx, key, data, searchCacheTTL)
}

func filterByRating(restaurants []response_models.Restaurant, minRating float64) []response_models.Restaurant {
	if minRating <= 0 {
		return restaurants
	}
	filtered := make([]response_models.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if r.Rating >= minRating {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// localFallback serves the static dataset when the provider cannot.
// The fallback list is deliberately unfiltered and never cached.
func (s *RestaurantService) localFallback(ctx context.Context) ([]response_models.Restaurant, error) {
	restaurants, err := s.local.All(ctx)
	if err != nil {
		log.Printf("Error reading local restaurant data: %v", err)
		return nil, utils.ErrLocalDataUnavailable
	}
	return restaurants, nil
}

func (s *RestaurantService) SearchByTerm(ctx context.Context, term, cuisine string, minRating float64) ([]response_models.Restaurant, error) {
	if term == "" {
		return []response_models.Restaurant{}, nil
	}

	key := fmt.Sprintf("restaurants:%s:%s:%s", term, orAll(cuisine), ratingKey(minRating))
	if restaurants, ok := s.cached(ctx, key); ok {
		return restaurants, nil
	}

	if !s.places.HasCredential() {
		return s.localFallback(ctx)
	}

	query := term + " restaurant"
	if cuisine != "" && cuisine != "all" {
		query = term + " " + cuisine + " restaurant"
	}

	places, err := s.places.TextSearch(ctx, query, SearchOptions{})
	if err != nil {
		log.Printf("Places search failed, serving local data: %v", err)
		return s.localFallback(ctx)
	}
	if len(places) == 0 {
		return s.localFallback(ctx)
	}

	restaurants := make([]response_models.Restaurant, 0, len(places))
	for i, place := range places {
		restaurants = append(restaurants, s.normalizer.normalizePlace(place, i))
	}
	restaurants = filterByRating(restaurants, minRating)

	s.putCached(ctx, key, restaurants)
	return restaurants, nil
}

func (s *RestaurantService) SearchNearby(ctx context.Context, lat, lng float64, radius int, cuisine string, minRating float64, term string) ([]response_models.Restaurant, error) {
	key := fmt.Sprintf("restaurants:nearby:%g:%g:%d:%s:%s:%s",
		lat, lng, radius, orAll(cuisine), ratingKey(minRating), orAll(term))
	if restaurants, ok := s.cached(ctx, key); ok {
		return restaurants, nil
	}

	// Proximity search has no local fallback: the dataset cannot
	// answer an arbitrary-location query.
	if !s.places.HasCredential() {
		return []response_models.Restaurant{}, nil
	}

	keyword := term
	if cuisine != "" && cuisine != "all" {
		keyword = cuisine
	}

	places, err := s.places.NearbySearch(ctx, lat, lng, radius, keyword)
	if err != nil {
		log.Printf("Nearby search failed: %v", err)
		return []response_models.Restaurant{}, nil
	}

	if len(places) == 0 && term != "" {
		places, err = s.places.TextSearch(ctx, term+" restaurant", SearchOptions{
			Lat:    lat,
			Lng:    lng,
			Radius: radius,
		})
		if err != nil {
			log.Printf("Nearby text-search retry failed: %v", err)
			return []response_models.Restaurant{}, nil
		}
	}
	if len(places) == 0 {
		return []response_models.Restaurant{}, nil
	}

	restaurants := make([]response_models.Restaurant, 0, len(places))
	for i, place := range places {
		restaurants = append(restaurants, s.normalizer.normalizeNearby(place, i, lat, lng))
	}
	restaurants = filterByRating(restaurants, minRating)

	sort.SliceStable(restaurants, func(i, j int) bool {
		return *restaurants[i].DistanceKm < *restaurants[j].DistanceKm
	})

	s.putCached(ctx, key, restaurants)
	return restaurants, nil
}

// GetByID resolves integer ids against the local dataset. Long opaque
// ids are assumed to be provider place ids and resolved remotely.
func (s *RestaurantService) GetByID(ctx context.Context, id string) (*response_models.Restaurant, error) {
	if numericID, err := strconv.Atoi(id); err == nil {
		restaurant, err := s.local.GetByID(ctx, numericID)
		if err != nil {
			log.Printf("Error reading local restaurant data: %v", err)
			return nil, utils.ErrLocalDataUnavailable
		}
		if restaurant != nil {
			return restaurant, nil
		}
	}

	if len(id) > 20 {
		return s.GetDetails(ctx, id)
	}
	return nil, utils.ErrRestaurantNotFound
}

func (s *RestaurantService) GetDetails(ctx context.Context, placeID string) (*response_models.Restaurant, error) {
	key := "restaurants:place:" + placeID
	if data, ok := s.store.Get(ctx, key); ok {
		var restaurant response_models.Restaurant
		if err := json.Unmarshal(data, &restaurant); err == nil {
			return &restaurant, nil
		}
	}

	if !s.places.HasCredential() {
		return nil, utils.ErrRestaurantNotFound
	}

	place, err := s.places.Details(ctx, placeID)
	if err != nil {
		log.Printf("Place details lookup failed for %q: %v", placeID, err)
		return nil, utils.ErrRestaurantNotFound
	}

	restaurant := s.normalizer.normalizeDetails(*place, placeID)
	if data, err := json.Marshal(restaurant); err == nil {
		s.store.Put(ctx, key, data, searchCacheTTL)
	}
	return &restaurant, nil
}

func (s *RestaurantService) ListCuisines() []string {
	cuisines := make([]string, len(cuisineList))
	copy(cuisines, cuisineList)
	return cuisines
}
