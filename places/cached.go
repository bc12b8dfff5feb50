package places

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mmpl/league-api/cache"
	"github.com/mmpl/league-api/types"
)

// CachedClient is a read-through decorator over a Client. Search results are
// keyed by the raw query string and details by the place id, each held for
// the configured TTL (a week by default). Photo bytes are never cached.
type CachedClient struct {
	inner Client
	cache cache.Cache
	ttl   time.Duration
	log   *logrus.Entry
}

func NewCachedClient(inner Client, c cache.Cache, ttl time.Duration) *CachedClient {
	return &CachedClient{
		inner: inner,
		cache: c,
		ttl:   ttl,
		log:   logrus.WithField("component", "places"),
	}
}

func (c *CachedClient) Search(ctx context.Context, query string) ([]types.GooglePlaceResult, error) {
	if payload, ok := c.cache.Get(ctx, query); ok {
		var results []types.GooglePlaceResult
		if err := json.Unmarshal(payload, &results); err == nil {
			return results, nil
		}
		c.log.WithField("key", query).Debug("discarding unreadable cached search payload")
	}

	results, err := c.inner.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(results) > 0 {
		if payload, err := json.Marshal(results); err == nil {
			c.cache.Set(ctx, query, payload, c.ttl)
		}
	}
	return results, nil
}

func (c *CachedClient) Details(ctx context.Context, placeID string) (*types.GooglePlaceDetails, error) {
	if payload, ok := c.cache.Get(ctx, placeID); ok {
		var details types.GooglePlaceDetails
		if err := json.Unmarshal(payload, &details); err == nil {
			return &details, nil
		}
		c.log.WithField("key", placeID).Debug("discarding unreadable cached details payload")
	}

	details, err := c.inner.Details(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if details != nil {
		if payload, err := json.Marshal(details); err == nil {
			c.cache.Set(ctx, placeID, payload, c.ttl)
		}
	}
	return details, nil
}

func (c *CachedClient) Photo(ctx context.Context, photoReference string) ([]byte, error) {
	return c.inner.Photo(ctx, photoReference)
}
