package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinefind/pkg/cache"
	"dinefind/pkg/utils"
)

type fakeGeocoder struct {
	fakePlacesAPI
	body  []byte
	err   error
	calls int
}

func (f *fakeGeocoder) Geocode(_ context.Context, _ string) ([]byte, error) {
	f.calls++
	return f.body, f.err
}

func TestGeocode_PassthroughAndCache(t *testing.T) {
	geocoder := &fakeGeocoder{
		fakePlacesAPI: fakePlacesAPI{hasKey: true},
		body:          []byte(`{"status":"OK","results":[{"formatted_address":"Bangkok"}]}`),
	}
	store := cache.NewMemoryStore()
	svc := NewGeocodeService(geocoder, store)
	ctx := context.Background()

	first, err := svc.Geocode(ctx, "Bang Sue, Bangkok")
	require.NoError(t, err)
	assert.Equal(t, geocoder.body, first)

	second, err := svc.Geocode(ctx, "Bang Sue, Bangkok")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, geocoder.calls)

	// A different address misses the cache.
	_, err = svc.Geocode(ctx, "Chiang Mai")
	require.NoError(t, err)
	assert.Equal(t, 2, geocoder.calls)
}

func TestGeocode_MissingCredential(t *testing.T) {
	geocoder := &fakeGeocoder{fakePlacesAPI: fakePlacesAPI{hasKey: false}}
	svc := NewGeocodeService(geocoder, cache.NewMemoryStore())

	_, err := svc.Geocode(context.Background(), "Bangkok")
	assert.ErrorIs(t, err, utils.ErrGeocodeFailed)
	assert.Zero(t, geocoder.calls)
}

func TestGeocode_ProviderFailure(t *testing.T) {
	geocoder := &fakeGeocoder{
		fakePlacesAPI: fakePlacesAPI{hasKey: true},
		err:           utils.ErrProviderUnavailable,
	}
	svc := NewGeocodeService(geocoder, cache.NewMemoryStore())

	_, err := svc.Geocode(context.Background(), "Bangkok")
	assert.ErrorIs(t, err, utils.ErrGeocodeFailed)
}
