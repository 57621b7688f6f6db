package services

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"log"
	"time"

	"dinefind/pkg/cache"
	"dinefind/pkg/utils"
)

const geocodeCacheTTL = 24 * time.Hour

// GeocodeServiceInterface resolves an address through the provider's
// geocoder. Responses are passed through verbatim.
type GeocodeServiceInterface interface {
	Geocode(ctx context.Context, address string) ([]byte, error)
}

type GeocodeService struct {
	places PlacesAPI
	store  cache.Store
}

func NewGeocodeService(places PlacesAPI, store cache.Store) GeocodeServiceInterface {
	return &GeocodeService{
		places: places,
		store:  store,
	}
}

func geocodeKey(address string) string {
	sum := md5.Sum([]byte(address))
	return "geocode:" + hex.EncodeToString(sum[:])
}

func (s *GeocodeService) Geocode(ctx context.Context, address string) ([]byte, error) {
	key := geocodeKey(address)
	if body, ok := s.store.Get(ctx, key); ok {
		return body, nil
	}

	if !s.places.HasCredential() {
		return nil, utils.ErrGeocodeFailed
	}

	body, err := s.places.Geocode(ctx, address)
	if err != nil {
		log.Printf("Geocode failed for %q: %v", address, err)
		return nil, utils.ErrGeocodeFailed
	}

	s.store.Put(ctx, key, body, geocodeCacheTTL)
	return body, nil
}
