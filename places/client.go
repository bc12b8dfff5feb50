package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mmpl/league-api/config"
	"github.com/mmpl/league-api/types"
)

const statusOK = "OK"

// Client looks up venues against the Google Places Web Service. A non-OK
// upstream status is "no data", not an error: Search returns an empty slice
// and Details returns nil, letting callers skip enrichment for unmatched
// venues without special-casing failures.
type Client interface {
	// Search runs a text search for query within the configured service area.
	Search(ctx context.Context, query string) ([]types.GooglePlaceResult, error)

	// Details fetches the full place record for a place id.
	Details(ctx context.Context, placeID string) (*types.GooglePlaceDetails, error)

	// Photo fetches raw image bytes for a photo reference, bounded by the
	// configured maximum dimensions.
	Photo(ctx context.Context, photoReference string) ([]byte, error)
}

type HTTPClient struct {
	httpClient *http.Client
	cfg        *config.PlacesConfig
	log        *logrus.Entry
}

func NewClient(cfg *config.PlacesConfig) *HTTPClient {
	return &HTTPClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cfg:        cfg,
		log:        logrus.WithField("component", "places"),
	}
}

func (c *HTTPClient) Search(ctx context.Context, query string) ([]types.GooglePlaceResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("location", fmt.Sprintf("%f,%f", c.cfg.SearchLat, c.cfg.SearchLng))
	params.Set("radius", strconv.Itoa(c.cfg.RadiusMeters))
	params.Set("key", c.cfg.APIKey)

	body, err := c.get(ctx, c.cfg.BaseURL+"/textsearch/json?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("places search: %w", err)
	}

	var response types.GooglePlacesSearchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("places search: decoding response: %w", err)
	}

	if response.Status != statusOK {
		c.log.WithFields(logrus.Fields{"query": query, "status": response.Status}).
			Debug("search returned no results")
		return nil, nil
	}

	return response.Results, nil
}

func (c *HTTPClient) Details(ctx context.Context, placeID string) (*types.GooglePlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("key", c.cfg.APIKey)

	body, err := c.get(ctx, c.cfg.BaseURL+"/details/json?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("place details: %w", err)
	}

	var response types.GooglePlaceDetailsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("place details: decoding response: %w", err)
	}

	if response.Status != statusOK {
		c.log.WithFields(logrus.Fields{"place_id": placeID, "status": response.Status}).
			Debug("details returned no result")
		return nil, nil
	}

	return response.Result, nil
}

func (c *HTTPClient) Photo(ctx context.Context, photoReference string) ([]byte, error) {
	params := url.Values{}
	params.Set("photoreference", photoReference)
	params.Set("maxwidth", strconv.Itoa(c.cfg.PhotoMaxWidth))
	params.Set("maxheight", strconv.Itoa(c.cfg.PhotoMaxHeight))
	params.Set("key", c.cfg.APIKey)

	body, err := c.get(ctx, c.cfg.BaseURL+"/photo?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("place photo: %w", err)
	}
	return body, nil
}

func (c *HTTPClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
