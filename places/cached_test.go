package places_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmpl/league-api/places"
	"github.com/mmpl/league-api/types"
)

// memoryCache is a map-backed stand-in for the Redis cache.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.entries[key]
	return value, ok
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}

// countingClient records how often each live endpoint is hit.
type countingClient struct {
	results      []types.GooglePlaceResult
	details      *types.GooglePlaceDetails
	photo        []byte
	searchCalls  int
	detailsCalls int
	photoCalls   int
}

func (c *countingClient) Search(context.Context, string) ([]types.GooglePlaceResult, error) {
	c.searchCalls++
	return c.results, nil
}

func (c *countingClient) Details(context.Context, string) (*types.GooglePlaceDetails, error) {
	c.detailsCalls++
	return c.details, nil
}

func (c *countingClient) Photo(context.Context, string) ([]byte, error) {
	c.photoCalls++
	return c.photo, nil
}

func TestCachedSearchMissFallsThroughThenHits(t *testing.T) {
	inner := &countingClient{results: []types.GooglePlaceResult{{PlaceID: "ChIJcached", Name: "The Local"}}}
	client := places.NewCachedClient(inner, newMemoryCache(), time.Hour)
	ctx := context.Background()

	// First call misses and goes live.
	results, err := client.Search(ctx, "The Local")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, inner.searchCalls)

	// Second call is served from cache.
	results, err = client.Search(ctx, "The Local")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "ChIJcached", results[0].PlaceID)
	assert.Equal(t, 1, inner.searchCalls)
}

func TestCachedSearchDoesNotCacheEmptyResults(t *testing.T) {
	inner := &countingClient{}
	client := places.NewCachedClient(inner, newMemoryCache(), time.Hour)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		results, err := client.Search(ctx, "nowhere")
		require.NoError(t, err)
		assert.Empty(t, results)
	}
	assert.Equal(t, 2, inner.searchCalls)
}

func TestCachedDetailsKeyedByPlaceID(t *testing.T) {
	address := "1 Somewhere St"
	inner := &countingClient{details: &types.GooglePlaceDetails{PlaceID: "ChIJdetails", FormattedAddress: &address}}
	cache := newMemoryCache()
	client := places.NewCachedClient(inner, cache, time.Hour)
	ctx := context.Background()

	details, err := client.Details(ctx, "ChIJdetails")
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, 1, inner.detailsCalls)

	_, cached := cache.Get(ctx, "ChIJdetails")
	assert.True(t, cached)

	details, err = client.Details(ctx, "ChIJdetails")
	require.NoError(t, err)
	require.NotNil(t, details)
	require.NotNil(t, details.FormattedAddress)
	assert.Equal(t, address, *details.FormattedAddress)
	assert.Equal(t, 1, inner.detailsCalls)
}

func TestPhotosAreNeverCached(t *testing.T) {
	inner := &countingClient{photo: []byte{0xFF, 0xD8}}
	client := places.NewCachedClient(inner, newMemoryCache(), time.Hour)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		data, err := client.Photo(ctx, "ref-a")
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
	assert.Equal(t, 2, inner.photoCalls)
}

func TestCorruptCacheEntryFallsThrough(t *testing.T) {
	inner := &countingClient{results: []types.GooglePlaceResult{{PlaceID: "ChIJok"}}}
	cache := newMemoryCache()
	cache.Set(context.Background(), "The Local", []byte("not json"), time.Hour)

	client := places.NewCachedClient(inner, cache, time.Hour)

	results, err := client.Search(context.Background(), "The Local")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, inner.searchCalls)
}
