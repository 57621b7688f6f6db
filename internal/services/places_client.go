package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"dinefind/internal/config"
	"dinefind/internal/models/provider_models"
	"dinefind/pkg/utils"
)

// SearchOptions constrains a text search to a circle. Zero value
// means no location bias.
type SearchOptions struct {
	Lat    float64
	Lng    float64
	Radius int
}

type PlacesAPI interface {
	TextSearch(ctx context.Context, query string, opts SearchOptions) ([]provider_models.Place, error)
	NearbySearch(ctx context.Context, lat, lng float64, radius int, keyword string) ([]provider_models.Place, error)
	Details(ctx context.Context, placeID string) (*provider_models.Place, error)
	Geocode(ctx context.Context, address string) ([]byte, error)

	// HasCredential reports whether a provider key is configured;
	// callers pick their fallback path before issuing a request.
	HasCredential() bool
}

const placesBaseHost = "maps.googleapis.com"

var detailFields = "name,formatted_address,vicinity,geometry,rating," +
	"user_ratings_total,price_level,photos,types,opening_hours," +
	"formatted_phone_number,website,url,reviews"

type GooglePlacesClient struct {
	HTTP   *http.Client
	APIKey string
}

func NewGooglePlacesClient(cfg *config.Config) PlacesAPI {
	return &GooglePlacesClient{
		HTTP:   &http.Client{Timeout: cfg.HTTPTimeout},
		APIKey: cfg.GoogleAPIKey,
	}
}

func (c *GooglePlacesClient) HasCredential() bool {
	return c.APIKey != ""
}

func (c *GooglePlacesClient) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	if !c.HasCredential() {
		return nil, utils.ErrMissingAPIKey
	}

	q.Set("key", c.APIKey)
	u := url.URL{
		Scheme:   "https",
		Host:     placesBaseHost,
		Path:     path,
		RawQuery: q.Encode(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrProviderUnavailable, err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: bad status %s", utils.ErrProviderUnavailable, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrProviderUnavailable, err)
	}
	return body, nil
}

func (c *GooglePlacesClient) search(ctx context.Context, path string, q url.Values) ([]provider_models.Place, error) {
	body, err := c.get(ctx, path, q)
	if err != nil {
		return nil, err
	}

	var payload provider_models.PlacesSearchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", utils.ErrProviderUnavailable, err)
	}

	switch payload.Status {
	case "OK":
		return payload.Results, nil
	case "ZERO_RESULTS":
		return []provider_models.Place{}, nil
	default:
		return nil, fmt.Errorf("%w: status %s: %s",
			utils.ErrProviderUnavailable, payload.Status, payload.ErrorMessage)
	}
}

func (c *GooglePlacesClient) TextSearch(ctx context.Context, query string, opts SearchOptions) ([]provider_models.Place, error) {
	q := url.Values{}
	q.Set("query", query)
	if opts.Radius > 0 {
		q.Set("location", fmt.Sprintf("%f,%f", opts.Lat, opts.Lng))
		q.Set("radius", fmt.Sprintf("%d", opts.Radius))
	}
	return c.search(ctx, "/maps/api/place/textsearch/json", q)
}

func (c *GooglePlacesClient) NearbySearch(ctx context.Context, lat, lng float64, radius int, keyword string) ([]provider_models.Place, error) {
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("radius", fmt.Sprintf("%d", radius))
	q.Set("type", "restaurant")
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	return c.search(ctx, "/maps/api/place/nearbysearch/json", q)
}

func (c *GooglePlacesClient) Details(ctx context.Context, placeID string) (*provider_models.Place, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", detailFields)

	body, err := c.get(ctx, "/maps/api/place/details/json", q)
	if err != nil {
		return nil, err
	}

	var payload provider_models.PlaceDetailsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", utils.ErrProviderUnavailable, err)
	}

	if payload.Status != "OK" {
		return nil, fmt.Errorf("%w: status %s: %s",
			utils.ErrProviderUnavailable, payload.Status, payload.ErrorMessage)
	}
	return &payload.Result, nil
}

// Geocode returns the raw provider body; the geocode endpoint is a
// passthrough.
func (c *GooglePlacesClient) Geocode(ctx context.Context, address string) ([]byte, error) {
	q := url.Values{}
	q.Set("address", address)
	return c.get(ctx, "/maps/api/geocode/json", q)
}
